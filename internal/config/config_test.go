package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.NotEmpty(t, cfg.MySQLDSN)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SPORTIVE_SERVER_PORT", "9000")
	t.Setenv("SPORTIVE_BACKEND", "mysql")
	t.Setenv("SPORTIVE_MYSQL_DSN", "app:secret@tcp(db:3306)/sportive")
	t.Setenv("SPORTIVE_SWAGGER_HOST", "api.sportive.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, BackendMySQL, cfg.Backend)
	assert.Equal(t, "app:secret@tcp(db:3306)/sportive", cfg.MySQLDSN)
	assert.Equal(t, "api.sportive.example", cfg.SwaggerHost)
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_port: \"7070\"\nbackend: memory\n"), 0o600))
	t.Setenv("SPORTIVE_CONFIG", path)
	t.Setenv("SPORTIVE_SERVER_PORT", "7071")

	cfg, err := Load()
	require.NoError(t, err)
	// Env wins over the file.
	assert.Equal(t, "7071", cfg.ServerPort)
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SPORTIVE_BACKEND", "postgres")

	_, err := Load()
	assert.Error(t, err)
}
