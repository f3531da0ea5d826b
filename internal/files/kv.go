package files

import (
	"os"
	"path/filepath"
	"sync"

	"veriflow/internal/crypto"
)

// KV is the minimal key-value surface the record store needs. A missing
// key reads as ("", false, nil); real storage failures surface as errors
// and are degraded by the caller, never propagated to users.
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// FileKV stores each key as one file under a directory, optionally sealed
// with AES-GCM. This is the local equivalent of the browser's key-value
// store the history originally lived in.
type FileKV struct {
	dir string
	key []byte // nil means plaintext
	mu  sync.RWMutex
}

// NewFileKV returns a plaintext file-backed store rooted at dir.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// NewEncryptedFileKV returns a store whose values are AES-GCM sealed under
// key (32 bytes, see crypto.DeriveStoreKey).
func NewEncryptedFileKV(dir string, key []byte) *FileKV {
	return &FileKV{dir: dir, key: key}
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value stored under key. An absent file is not an error.
func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if s.key != nil {
		plain, err := crypto.DecryptAESGCM(s.key, blob)
		if err != nil {
			return "", false, err
		}
		blob = plain
	}
	return string(blob), true, nil
}

// Put writes value under key, creating the directory as needed.
func (s *FileKV) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	blob := []byte(value)
	if s.key != nil {
		enc, err := crypto.EncryptAESGCM(s.key, blob)
		if err != nil {
			return err
		}
		blob = enc
	}
	return os.WriteFile(s.path(key), blob, 0600)
}

// MemKV is an in-memory KV for tests and the CLI's dry runs.
type MemKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string]string)}
}

func (s *MemKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemKV) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
