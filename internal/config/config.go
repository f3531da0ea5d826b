package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSecret is the demo shared secret, identical on the issuing and
// verifying side. Shipping a fixed symmetric key in client-reachable code
// is a structural trust weakness of this scheme; it is preserved here as
// documented behavior rather than silently upgraded to asymmetric signing.
const DefaultSecret = "VERIFLOW_SECRET_2024"

const configFile = "config.json"

// Config holds the server and store settings. Missing config file or
// fields fall back to defaults; a config file is never required.
type Config struct {
	ListenAddr     string `json:"listenAddr"`
	BaseURL        string `json:"baseUrl"`
	DataDir        string `json:"dataDir"`
	EncryptRecords bool   `json:"encryptRecords"`
	LogFile        string `json:"logFile"`
}

// Load reads config.json from the working directory and fills defaults.
func Load() Config {
	cfg := Config{}
	if f, err := os.Open(configFile); err == nil {
		defer f.Close()
		_ = json.NewDecoder(f).Decode(&cfg)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "veriflow.log"
	}
	return cfg
}

// ReadSecret resolves the signing secret: VERIFLOW_SECRET env var, then a
// secret.key file next to the binary, then the built-in demo secret.
func ReadSecret() []byte {
	if v := os.Getenv("VERIFLOW_SECRET"); v != "" {
		return []byte(strings.TrimSpace(v))
	}
	if data, err := os.ReadFile("secret.key"); err == nil {
		if s := strings.TrimSpace(string(data)); s != "" {
			return []byte(s)
		}
	}
	return []byte(DefaultSecret)
}

// defaultDataDir places the record store under the user's home directory,
// falling back to the temp dir when no home is available.
func defaultDataDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, ".veriflow")
}
