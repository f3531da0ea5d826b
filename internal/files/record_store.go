package files

import (
	"encoding/json"
	"sync"

	"veriflow/internal/models"
)

const recordsKey = "veriflow_qr_records"

// MaxRecords caps the shared history list. Oldest entries beyond the cap
// are dropped silently on append.
const MaxRecords = 100

// RecordStore keeps issued records newest-first in one global list shared
// by all companies, filtered per company at read time.
//
// All storage failures degrade: reads come back empty, writes become
// no-ops. The read-modify-write in Append has no transaction guard, which
// is fine for the single-writer session this serves; a multi-writer port
// needs a compare-and-swap or lock around load+truncate+save.
type RecordStore struct {
	kv KV
	mu sync.Mutex
}

// NewRecordStore wraps kv. A nil kv behaves as permanently unavailable
// storage: empty history, appends dropped.
func NewRecordStore(kv KV) *RecordStore {
	return &RecordStore{kv: kv}
}

// Append inserts rec at the front of the list and truncates to MaxRecords.
// Unavailable or failing storage makes this a no-op, not an error.
func (s *RecordStore) Append(rec models.QRRecord) {
	if s.kv == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := append([]models.QRRecord{rec}, s.load()...)
	if len(recs) > MaxRecords {
		recs = recs[:MaxRecords]
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return
	}
	_ = s.kv.Put(recordsKey, string(data))
}

// ListByCompany returns the records issued under companyID in stored
// order, newest first. Never fails; unavailable storage reads as empty.
func (s *RecordStore) ListByCompany(companyID string) []models.QRRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.QRRecord{}
	for _, rec := range s.load() {
		if rec.CompanyID == companyID {
			out = append(out, rec)
		}
	}
	return out
}

// Get returns the stored record with the given id.
func (s *RecordStore) Get(id string) (models.QRRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.load() {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.QRRecord{}, false
}

// load reads the whole list, treating any failure (unavailable store,
// unreadable or unparseable content) as an empty history.
func (s *RecordStore) load() []models.QRRecord {
	if s.kv == nil {
		return nil
	}
	data, ok, err := s.kv.Get(recordsKey)
	if err != nil || !ok {
		return nil
	}
	var recs []models.QRRecord
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		return nil
	}
	return recs
}
