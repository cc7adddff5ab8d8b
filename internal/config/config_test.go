package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envConfigPath, "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ServerAddress)
	assert.Equal(t, StorageMemory, cfg.StorageType)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 30*time.Minute, cfg.DefaultEditTTL)
	assert.Equal(t, 5, cfg.MaxCreateAttempts)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.FileStoragePath)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv(envConfigPath, "")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("STORAGE_TYPE", "sqlite")
	t.Setenv("SWEEP_INTERVAL", "1m")
	t.Setenv("MAX_CREATE_ATTEMPTS", "8")

	cfg, err := Load([]string{"-sweep-interval", "30s", "-log-format", "json"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.ServerAddress, "leading colon gets a host")
	assert.Equal(t, StorageSQLite, cfg.StorageType)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval, "flag beats env")
	assert.Equal(t, 8, cfg.MaxCreateAttempts, "env kept when no flag passed")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_address: "0.0.0.0:7000"
storage_type: postgres
database_dsn: "postgres://u:p@db:5432/clipshare"
default_edit_ttl: 45m
`), 0o600))
	t.Setenv(envConfigPath, path)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7000", cfg.ServerAddress)
	assert.Equal(t, StoragePostgres, cfg.StorageType)
	assert.Equal(t, "postgres://u:p@db:5432/clipshare", cfg.DatabaseDSN)
	assert.Equal(t, 45*time.Minute, cfg.DefaultEditTTL)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval, "defaults fill the gaps")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_RelativeSnapshotPathIsResolved(t *testing.T) {
	t.Setenv(envConfigPath, "")

	cfg, err := Load([]string{"-file-storage-path", "tmp/clipboards.jsonl"})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.FileStoragePath))
	assert.Equal(t, "clipboards.jsonl", filepath.Base(cfg.FileStoragePath))
}

func TestLoad_UnknownFlag(t *testing.T) {
	t.Setenv(envConfigPath, "")

	_, err := Load([]string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			ServerAddress:     "localhost:8080",
			StorageType:       StorageMemory,
			SQLitePath:        "data/clipshare.db",
			SweepInterval:     time.Minute,
			DefaultEditTTL:    30 * time.Minute,
			MaxCreateAttempts: 5,
			LogFormat:         "console",
			ShutdownTimeout:   time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown storage", mutate: func(c *Config) { c.StorageType = "redis" }, wantErr: "unknown storage type"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.StorageType = StoragePostgres }, wantErr: "DATABASE_DSN"},
		{name: "sqlite without path", mutate: func(c *Config) { c.StorageType = StorageSQLite; c.SQLitePath = "" }, wantErr: "SQLITE_PATH"},
		{name: "zero sweep interval", mutate: func(c *Config) { c.SweepInterval = 0 }, wantErr: "sweep interval"},
		{name: "negative ttl", mutate: func(c *Config) { c.DefaultEditTTL = -time.Minute }, wantErr: "edit ttl"},
		{name: "zero attempts", mutate: func(c *Config) { c.MaxCreateAttempts = 0 }, wantErr: "create attempts"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
