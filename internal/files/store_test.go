package files

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriflow/internal/crypto"
	"veriflow/internal/models"
)

func testRecord(id, companyID string) models.QRRecord {
	return models.QRRecord{
		ID:          id,
		CompanyID:   companyID,
		Vehicle:     models.VehicleData{VehicleNumber: "MH12AB1234"},
		Driver:      models.DriverData{DriverName: "Raj Kumar"},
		CreatedAt:   "2024-05-01T10:00:00Z",
		Signature:   "ab",
		EncodedData: "token-" + id,
	}
}

func TestRecordStoreNewestFirst(t *testing.T) {
	store := NewRecordStore(NewMemKV())
	for i := 0; i < 3; i++ {
		store.Append(testRecord(fmt.Sprintf("r%d", i), "abc-logistics"))
	}
	got := store.ListByCompany("abc-logistics")
	require.Len(t, got, 3)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)
	assert.Equal(t, "r0", got[2].ID)
}

func TestRecordStoreBounded(t *testing.T) {
	store := NewRecordStore(NewMemKV())
	for i := 0; i < 150; i++ {
		store.Append(testRecord(fmt.Sprintf("r%d", i), "abc-logistics"))
	}
	got := store.ListByCompany("abc-logistics")
	require.Len(t, got, MaxRecords)
	assert.Equal(t, "r149", got[0].ID)
	assert.Equal(t, "r50", got[len(got)-1].ID)
}

func TestRecordStoreFiltersByCompany(t *testing.T) {
	store := NewRecordStore(NewMemKV())
	store.Append(testRecord("a1", "abc-logistics"))
	store.Append(testRecord("x1", "xyz-transport"))
	store.Append(testRecord("a2", "abc-logistics"))

	abc := store.ListByCompany("abc-logistics")
	require.Len(t, abc, 2)
	assert.Equal(t, "a2", abc[0].ID)
	assert.Equal(t, "a1", abc[1].ID)

	assert.Len(t, store.ListByCompany("xyz-transport"), 1)
	assert.Empty(t, store.ListByCompany("swift-cargo"))
}

func TestRecordStoreEvictionSharedAcrossCompanies(t *testing.T) {
	// The cap applies to the one shared list, so a busy company can evict
	// another company's oldest entries.
	store := NewRecordStore(NewMemKV())
	store.Append(testRecord("old", "xyz-transport"))
	for i := 0; i < MaxRecords; i++ {
		store.Append(testRecord(fmt.Sprintf("r%d", i), "abc-logistics"))
	}
	assert.Empty(t, store.ListByCompany("xyz-transport"))
}

func TestRecordStoreGet(t *testing.T) {
	store := NewRecordStore(NewMemKV())
	store.Append(testRecord("a1", "abc-logistics"))

	rec, ok := store.Get("a1")
	require.True(t, ok)
	assert.Equal(t, "token-a1", rec.EncodedData)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestRecordStoreUnavailableStorage(t *testing.T) {
	store := NewRecordStore(nil)
	store.Append(testRecord("a1", "abc-logistics")) // must not panic
	assert.Empty(t, store.ListByCompany("abc-logistics"))
	_, ok := store.Get("a1")
	assert.False(t, ok)
}

func TestRecordStoreCorruptContent(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Put(recordsKey, "{definitely not json"))
	store := NewRecordStore(kv)
	assert.Empty(t, store.ListByCompany("abc-logistics"))

	// A corrupt list is replaced wholesale on the next append.
	store.Append(testRecord("a1", "abc-logistics"))
	assert.Len(t, store.ListByCompany("abc-logistics"), 1)
}

func TestFileKVRoundTrip(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put("k", `{"hello":"world"}`))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"hello":"world"}`, v)
}

func TestEncryptedFileKVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	key := crypto.DeriveStoreKey([]byte("test-secret"))
	kv := NewEncryptedFileKV(dir, key)

	require.NoError(t, kv.Put("k", "sensitive history"))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sensitive history", v)

	// Reading with the wrong key fails at the KV layer and degrades to an
	// empty history at the store layer.
	wrong := NewEncryptedFileKV(dir, crypto.DeriveStoreKey([]byte("other-secret")))
	_, _, err = wrong.Get("k")
	assert.Error(t, err)

	store := NewRecordStore(wrong)
	assert.Empty(t, store.ListByCompany("abc-logistics"))
}

func TestRecordStoreOnFileKV(t *testing.T) {
	store := NewRecordStore(NewFileKV(t.TempDir()))
	store.Append(testRecord("a1", "abc-logistics"))
	store.Append(testRecord("a2", "abc-logistics"))

	got := store.ListByCompany("abc-logistics")
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].ID)
}
