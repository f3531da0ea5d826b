package crypto

import (
	"encoding/json"

	"veriflow/internal/models"
)

// ===== Canonical Signing Form =====

// signingInput pins the member order of the canonical form. encoding/json
// emits struct fields in declaration order, so two logically equal field
// sets always marshal to identical bytes regardless of how the caller's
// data was assembled.
type signingInput struct {
	CompanyID string             `json:"companyId"`
	Vehicle   models.VehicleData `json:"vehicle"`
	Driver    models.DriverData  `json:"driver"`
	ValidTill string             `json:"validTill,omitempty"`
	Purpose   string             `json:"purpose,omitempty"`
	CreatedAt string             `json:"createdAt"`
}

// Canonicalize returns the deterministic byte form of the payload fields
// covered by the signature. The carried signature itself is excluded.
//
// Canonical form: one JSON object, no insignificant whitespace, member
// order companyId, vehicle, driver, validTill, purpose, createdAt; nested
// vehicle/driver objects keep their declared field order; absent optional
// fields (validTill, purpose, photos) are omitted entirely, never written
// as null or "". A verifier reconstructing these bytes must follow the
// same rules exactly.
func Canonicalize(p models.QRPayload) []byte {
	b, err := json.Marshal(signingInput{
		CompanyID: p.CompanyID,
		Vehicle:   p.Vehicle,
		Driver:    p.Driver,
		ValidTill: p.ValidTill,
		Purpose:   p.Purpose,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		// A struct of plain strings cannot fail to marshal; reaching this
		// is a bug in the issuing path, not bad external input.
		panic(err)
	}
	return b
}
