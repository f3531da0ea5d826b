package models

// ===== Domain Models =====

// Company is one entry in the static issuer directory: display metadata
// keyed by a stable id. The directory is read-only; this core looks
// companies up and never creates or mutates them.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
}

// VehicleData identifies the vehicle bound into a payload. The photo, when
// present, is a data URI produced by the presentation layer. Immutable once
// embedded in a payload.
type VehicleData struct {
	VehicleNumber string `json:"vehicleNumber"`
	VehicleModel  string `json:"vehicleModel"`
	VehicleType   string `json:"vehicleType"`
	VehiclePhoto  string `json:"vehiclePhoto,omitempty"`
}

// DriverData identifies the driver bound into a payload.
type DriverData struct {
	DriverName  string `json:"driverName"`
	PhoneNumber string `json:"phoneNumber"`
	LicenseID   string `json:"licenseId"`
	DriverPhoto string `json:"driverPhoto,omitempty"`
}

// QRPayload is the signed unit carried inside a token. It is created once
// at issuance and never updated; any later byte-level change to the signed
// fields is exactly what the signature detects. ValidTill is an ISO date,
// CreatedAt an RFC3339 timestamp.
type QRPayload struct {
	CompanyID string      `json:"companyId"`
	Vehicle   VehicleData `json:"vehicle"`
	Driver    DriverData  `json:"driver"`
	ValidTill string      `json:"validTill,omitempty"`
	Purpose   string      `json:"purpose,omitempty"`
	CreatedAt string      `json:"createdAt"`
	Signature string      `json:"signature"`
}

// QRRecord is the issuer-side history entry for one issued payload,
// including the encoded token that went into the QR code. Records are
// append-only; they leave the store only through the size cap.
type QRRecord struct {
	ID          string      `json:"id"`
	CompanyID   string      `json:"companyId"`
	Vehicle     VehicleData `json:"vehicle"`
	Driver      DriverData  `json:"driver"`
	ValidTill   string      `json:"validTill,omitempty"`
	Purpose     string      `json:"purpose,omitempty"`
	CreatedAt   string      `json:"createdAt"`
	Signature   string      `json:"signature"`
	EncodedData string      `json:"encodedData"`
}

// Verification statuses. Every verification attempt classifies as exactly
// one of these.
const (
	StatusVerified = "verified"
	StatusInvalid  = "invalid"
	StatusTampered = "tampered"
	StatusExpired  = "expired"
)

// VerificationData is the payload content exposed to the viewer once
// signature integrity has been confirmed.
type VerificationData struct {
	Company   Company     `json:"company"`
	Vehicle   VehicleData `json:"vehicle"`
	Driver    DriverData  `json:"driver"`
	ValidTill string      `json:"validTill,omitempty"`
	Purpose   string      `json:"purpose,omitempty"`
	CreatedAt string      `json:"createdAt"`
}

// VerificationResult classifies one verification attempt. Data is populated
// for verified and expired only; invalid and tampered withhold it so that
// disputed field values are never surfaced as trustworthy.
type VerificationResult struct {
	IsValid bool              `json:"isValid"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    *VerificationData `json:"data,omitempty"`
}
