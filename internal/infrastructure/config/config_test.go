package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "America/Sao_Paulo", cfg.Server.Timezone)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5.0, cfg.Stock.LowThreshold)
	assert.Equal(t, "L", cfg.Stock.Unit)
	assert.Equal(t, 168, cfg.Auth.Session.TTLHours)
	assert.Same(t, cfg, Get())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte("server:\n  port: 9000\ndatabase:\n  driver: mysql\n  port: 3306\nstock:\n  low_threshold: 2.5\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), yaml, 0o644))
	t.Chdir(dir)
	t.Setenv("PREPAROS_SERVER_PORT", "9100")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 2.5, cfg.Stock.LowThreshold)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		env  map[string]string
		mode string
	}{
		{"unknown driver", map[string]string{"PREPAROS_DATABASE_DRIVER": "oracle"}, ""},
		{"default secret in release", nil, "release"},
		{"negative threshold", map[string]string{"PREPAROS_STOCK_LOW_THRESHOLD": "-1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.mode)
			assert.Error(t, err)
		})
	}
}
