package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wmsinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
log:
  level: debug
services:
  - name: roads
    url: https://maps.example.com/wms
    version: 1.3.0
    timeout: 10s
  - url: https://old.example.com/wms
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Services, 2)
	assert.Equal(t, "roads", cfg.Services[0].Name)
	assert.Equal(t, Duration(10*time.Second), cfg.Services[0].Timeout)

	// Defaults fill in omitted fields.
	assert.Equal(t, "https://old.example.com/wms", cfg.Services[1].Name)
	assert.Equal(t, Duration(30*time.Second), cfg.Services[1].Timeout)
	assert.Empty(t, cfg.Services[1].Version)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("WMS_HOST", "maps.example.com")

	cfg, err := Load(writeConfig(t, `
services:
  - url: https://${WMS_HOST}/wms
`))
	require.NoError(t, err)
	assert.Equal(t, "https://maps.example.com/wms", cfg.Services[0].URL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no services", `log: {level: info}`},
		{"missing url", "services:\n  - name: x"},
		{"unsupported version", "services:\n  - url: https://a\n    version: 2.0.0"},
		{"bad log level", "log:\n  level: verbose\nservices:\n  - url: https://a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
