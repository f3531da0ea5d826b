package qr

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"veriflow/internal/crypto"
	"veriflow/internal/files"
	"veriflow/internal/models"
	"veriflow/internal/registry"
)

// ErrUnknownIssuer is returned when a payload names a company id absent
// from the directory. On the issuing side this is a caller bug, not
// untrusted input.
var ErrUnknownIssuer = errors.New("unknown issuer")

// Issuer mints signed payloads and appends them to the history store.
type Issuer struct {
	signer   *crypto.Signer
	registry registry.Directory
	store    *files.RecordStore
	now      func() time.Time
}

// NewIssuer wires an Issuer. store may be backed by unavailable storage;
// issuance still succeeds and the history append degrades to a no-op.
func NewIssuer(signer *crypto.Signer, dir registry.Directory, store *files.RecordStore) *Issuer {
	return &Issuer{signer: signer, registry: dir, store: store, now: time.Now}
}

// Issue builds, signs, encodes and records a payload for companyID.
// validTill (ISO date) and purpose are optional and may be empty. Either a
// fully signed, encoded, stored record comes back, or nothing is stored.
func (i *Issuer) Issue(companyID string, vehicle models.VehicleData, driver models.DriverData, validTill, purpose string) (models.QRRecord, error) {
	if _, ok := i.registry.Lookup(companyID); !ok {
		return models.QRRecord{}, fmt.Errorf("%w: %q", ErrUnknownIssuer, companyID)
	}

	now := i.now()
	payload := models.QRPayload{
		CompanyID: companyID,
		Vehicle:   vehicle,
		Driver:    driver,
		ValidTill: validTill,
		Purpose:   purpose,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	payload.Signature = i.signer.Sign(crypto.Canonicalize(payload))

	rec := models.QRRecord{
		ID:          NewRecordID(now),
		CompanyID:   payload.CompanyID,
		Vehicle:     payload.Vehicle,
		Driver:      payload.Driver,
		ValidTill:   payload.ValidTill,
		Purpose:     payload.Purpose,
		CreatedAt:   payload.CreatedAt,
		Signature:   payload.Signature,
		EncodedData: Encode(payload),
	}
	i.store.Append(rec)
	return rec, nil
}

// NewRecordID returns "qr_<unixmilli>_<8 hex chars>". The random suffix
// keeps records minted in the same millisecond distinct. Collisions are
// not formally prevented, only made astronomically unlikely; that is an
// accepted risk, not an invariant.
func NewRecordID(now time.Time) string {
	return fmt.Sprintf("qr_%d_%s", now.UnixMilli(), hex.EncodeToString(crypto.MustRandom(4)))
}
