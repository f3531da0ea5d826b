package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"veriflow/internal/models"
	"veriflow/internal/qr"
	"veriflow/internal/utils"
)

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK\n"))
}

// GetTimeHandler returns the current server time in RFC3339 format
func GetTimeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"time": time.Now().Format(time.RFC3339)})
}

// CreateQRRequest is the issuance request body.
type CreateQRRequest struct {
	CompanyID string             `json:"companyId"`
	Vehicle   models.VehicleData `json:"vehicle"`
	Driver    models.DriverData  `json:"driver"`
	ValidTill string             `json:"validTill,omitempty"`
	Purpose   string             `json:"purpose,omitempty"`
}

// CreateQRResponse carries the stored record plus the URL a scanner lands
// on.
type CreateQRResponse struct {
	Record    models.QRRecord `json:"record"`
	VerifyURL string          `json:"verifyUrl"`
}

// CreateQRHandler issues a signed payload for a company and appends it to
// the history. Issuing for an unknown company is a caller error, not a
// verification outcome.
func (s *Server) CreateQRHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateQRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, utils.New(http.StatusBadRequest, "invalid request body"))
		return
	}
	if req.CompanyID == "" || req.Vehicle.VehicleNumber == "" || req.Driver.DriverName == "" {
		writeError(w, utils.New(http.StatusBadRequest, "companyId, vehicle.vehicleNumber and driver.driverName are required"))
		return
	}

	rec, err := s.Issuer.Issue(req.CompanyID, req.Vehicle, req.Driver, req.ValidTill, req.Purpose)
	if err != nil {
		if errors.Is(err, qr.ErrUnknownIssuer) {
			writeError(w, utils.New(http.StatusBadRequest, "unknown company id"))
			return
		}
		writeError(w, utils.New(http.StatusInternalServerError, "failed to issue QR payload"))
		return
	}

	writeJSON(w, http.StatusCreated, CreateQRResponse{
		Record:    rec,
		VerifyURL: s.verifyURL(rec.EncodedData),
	})
}

// VerifyHandler classifies the token in the data query parameter. The HTTP
// status is always 200; the classification lives in the body.
func (s *Server) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	result := s.Verifier.Verify(r.URL.Query().Get("data"))
	writeJSON(w, http.StatusOK, result)
}

// ListRecordsHandler returns a company's issued records, newest first.
func (s *Server) ListRecordsHandler(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["companyId"]
	writeJSON(w, http.StatusOK, s.Store.ListByCompany(companyID))
}

// ListCompaniesHandler returns the company directory.
func (s *Server) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Registry.All())
}

// GetCompanyHandler returns one company by id.
func (s *Server) GetCompanyHandler(w http.ResponseWriter, r *http.Request) {
	company, ok := s.Registry.Lookup(mux.Vars(r)["id"])
	if !ok {
		writeError(w, utils.New(http.StatusNotFound, "company not found"))
		return
	}
	writeJSON(w, http.StatusOK, company)
}

// QRImageHandler renders the scannable PNG for a stored record. The image
// encodes the verification URL, not the bare token.
func (s *Server) QRImageHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.Store.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, utils.New(http.StatusNotFound, "record not found"))
		return
	}
	png, err := qrcode.Encode(s.verifyURL(rec.EncodedData), qrcode.Medium, 256)
	if err != nil {
		writeError(w, utils.New(http.StatusInternalServerError, "failed to render QR image"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// verifyURL builds the landing URL carrying the token as the single data
// query parameter.
func (s *Server) verifyURL(token string) string {
	return s.BaseURL + "/api/verify?data=" + url.QueryEscape(token)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var ce *utils.CustomError
	if errors.As(err, &ce) {
		http.Error(w, ce.Message, ce.Code)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
