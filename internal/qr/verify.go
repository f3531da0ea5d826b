package qr

import (
	"time"

	"veriflow/internal/crypto"
	"veriflow/internal/models"
	"veriflow/internal/registry"
)

// Verifier classifies tokens into exactly one of the four terminal
// statuses. Verification is read-only: it consults the directory and the
// clock, never the record store.
type Verifier struct {
	signer   *crypto.Signer
	registry registry.Directory
	now      func() time.Time
}

// NewVerifier wires a Verifier reading the real clock once per call.
func NewVerifier(signer *crypto.Signer, dir registry.Directory) *Verifier {
	return &Verifier{signer: signer, registry: dir, now: time.Now}
}

// Verify runs the fixed pipeline: decode, resolve company, re-derive the
// signature, then (only on a matching signature) check expiry. The order
// must not change — an expired-but-tampered token reports tampered, never
// expired. Data is attached for verified and expired results only;
// invalid and tampered withhold it because none of the carried fields can
// be trusted.
func (v *Verifier) Verify(token string) models.VerificationResult {
	payload, err := Decode(token)
	if err != nil {
		return models.VerificationResult{
			Status:  models.StatusInvalid,
			Message: "Unable to decode verification data. The QR code may be corrupted.",
		}
	}

	company, ok := v.registry.Lookup(payload.CompanyID)
	if !ok {
		return models.VerificationResult{
			Status:  models.StatusInvalid,
			Message: "Unknown company identifier. This QR code is not valid.",
		}
	}

	expected := v.signer.Sign(crypto.Canonicalize(payload))
	if !crypto.SignaturesMatch(payload.Signature, expected) {
		return models.VerificationResult{
			Status:  models.StatusTampered,
			Message: "Signature verification failed. This QR code may have been tampered with.",
		}
	}

	data := &models.VerificationData{
		Company:   company,
		Vehicle:   payload.Vehicle,
		Driver:    payload.Driver,
		ValidTill: payload.ValidTill,
		Purpose:   payload.Purpose,
		CreatedAt: payload.CreatedAt,
	}

	if payload.ValidTill != "" {
		if expiry, ok := parseValidTill(payload.ValidTill); ok && expiry.Before(v.now()) {
			return models.VerificationResult{
				Status:  models.StatusExpired,
				Message: "This verification expired on " + expiry.Format("Jan 2, 2006") + ".",
				Data:    data,
			}
		}
	}

	return models.VerificationResult{
		IsValid: true,
		Status:  models.StatusVerified,
		Message: "This vehicle and driver are verified and authentic.",
		Data:    data,
	}
}

// parseValidTill accepts an RFC3339 timestamp or a bare ISO date (which
// reads as midnight UTC). An unparseable value on a correctly signed
// payload is treated as no expiry: the signature already proved the
// issuer wrote it, and timeliness cannot be judged from garbage.
func parseValidTill(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
