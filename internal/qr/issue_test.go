package qr

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriflow/internal/crypto"
	"veriflow/internal/files"
	"veriflow/internal/models"
	"veriflow/internal/registry"
)

var testVehicle = models.VehicleData{
	VehicleNumber: "MH12AB1234",
	VehicleModel:  "Tata Prima",
	VehicleType:   "Truck",
}

var testDriver = models.DriverData{
	DriverName:  "Raj Kumar",
	PhoneNumber: "+911234567890",
	LicenseID:   "DL123",
}

func newTestIssuer(kv files.KV) (*Issuer, *files.RecordStore) {
	store := files.NewRecordStore(kv)
	issuer := NewIssuer(crypto.NewSigner([]byte("test-secret")), registry.Default(), store)
	return issuer, store
}

func TestIssueProducesStoredSignedRecord(t *testing.T) {
	issuer, store := newTestIssuer(files.NewMemKV())
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	rec, err := issuer.Issue("abc-logistics", testVehicle, testDriver, "", "Delivery")
	require.NoError(t, err)

	assert.Equal(t, "abc-logistics", rec.CompanyID)
	assert.Equal(t, testVehicle, rec.Vehicle)
	assert.Equal(t, testDriver, rec.Driver)
	assert.Equal(t, "Delivery", rec.Purpose)
	assert.Equal(t, "2024-05-01T10:00:00Z", rec.CreatedAt)
	assert.Len(t, rec.Signature, crypto.SignatureHexLen)

	// The encoded token carries exactly the signed payload.
	payload, err := Decode(rec.EncodedData)
	require.NoError(t, err)
	assert.Equal(t, rec.Signature, payload.Signature)
	assert.Equal(t, rec.Vehicle, payload.Vehicle)

	history := store.ListByCompany("abc-logistics")
	require.Len(t, history, 1)
	assert.Equal(t, rec.ID, history[0].ID)
}

func TestIssueUnknownCompany(t *testing.T) {
	issuer, store := newTestIssuer(files.NewMemKV())

	_, err := issuer.Issue("ghost-co", testVehicle, testDriver, "", "")
	require.ErrorIs(t, err, ErrUnknownIssuer)

	// Nothing may be stored when issuance fails.
	assert.Empty(t, store.ListByCompany("ghost-co"))
}

func TestIssueWithUnavailableStorage(t *testing.T) {
	issuer, store := newTestIssuer(nil)

	rec, err := issuer.Issue("abc-logistics", testVehicle, testDriver, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.EncodedData)
	assert.Empty(t, store.ListByCompany("abc-logistics"))
}

func TestNewRecordID(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewRecordID(now)
		assert.True(t, strings.HasPrefix(id, "qr_1714557600000_"), "id %q", id)
		assert.False(t, seen[id], "duplicate id %q in same tick", id)
		seen[id] = true
	}
}
