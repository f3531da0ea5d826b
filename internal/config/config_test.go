package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "veriflow.log", cfg.LogFile)
	assert.False(t, cfg.EncryptRecords)
}

func TestReadSecret(t *testing.T) {
	t.Setenv("VERIFLOW_SECRET", "")
	assert.Equal(t, []byte(DefaultSecret), ReadSecret())

	t.Setenv("VERIFLOW_SECRET", "override-secret")
	assert.Equal(t, []byte("override-secret"), ReadSecret())
}
