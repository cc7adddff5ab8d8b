package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

const (
	envConfigPath = "CONFIG_PATH"
	envFile       = ".env"
)

type Config struct {
	ServerAddress     string        `yaml:"server_address"      env:"SERVER_ADDRESS"      env-default:"localhost:8080"`
	StorageType       string        `yaml:"storage_type"        env:"STORAGE_TYPE"        env-default:"memory"`
	FileStoragePath   string        `yaml:"file_storage_path"   env:"FILE_STORAGE_PATH"`
	SQLitePath        string        `yaml:"sqlite_path"         env:"SQLITE_PATH"         env-default:"data/clipshare.db"`
	DatabaseDSN       string        `yaml:"database_dsn"        env:"DATABASE_DSN"`
	SweepInterval     time.Duration `yaml:"sweep_interval"      env:"SWEEP_INTERVAL"      env-default:"5m"`
	DefaultEditTTL    time.Duration `yaml:"default_edit_ttl"    env:"DEFAULT_EDIT_TTL"    env-default:"30m"`
	MaxCreateAttempts int           `yaml:"max_create_attempts" env:"MAX_CREATE_ATTEMPTS" env-default:"5"`
	LogLevel          string        `yaml:"log_level"           env:"LOG_LEVEL"           env-default:"info"`
	LogFormat         string        `yaml:"log_format"          env:"LOG_FORMAT"          env-default:"console"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"SHUTDOWN_TIMEOUT"    env-default:"10s"`
}

// Load builds the configuration. Priority: flags > ENV (.env included) > YAML at CONFIG_PATH > defaults.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", envFile, err)
	}

	var cfg Config
	if path, ok := os.LookupEnv(envConfigPath); ok && path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.parseFlags(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	cfg.normalizeServerAddress()
	cfg.FileStoragePath = resolveFilePath(cfg.FileStoragePath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// parseFlags overrides only the fields whose flags were passed.
func (c *Config) parseFlags(args []string) error {
	flags := flag.NewFlagSet("clipshare", flag.ContinueOnError)

	flags.StringVar(&c.ServerAddress, "server-address", c.ServerAddress, "Server address")
	flags.StringVar(&c.StorageType, "storage-type", c.StorageType, "Storage type: memory, sqlite, postgres")
	flags.StringVar(&c.FileStoragePath, "file-storage-path", c.FileStoragePath, "Snapshot file for memory storage")
	flags.StringVar(&c.SQLitePath, "sqlite-path", c.SQLitePath, "SQLite database file")
	flags.StringVar(&c.DatabaseDSN, "database-dsn", c.DatabaseDSN, "Database DSN")
	flags.DurationVar(&c.SweepInterval, "sweep-interval", c.SweepInterval, "Expired clipboard sweep interval")
	flags.DurationVar(&c.DefaultEditTTL, "edit-ttl", c.DefaultEditTTL, "Default lifetime of edit clipboards")
	flags.IntVar(&c.MaxCreateAttempts, "create-attempts", c.MaxCreateAttempts, "Code collision retries on create")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: console, json")
	flags.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "Graceful shutdown timeout")

	return flags.Parse(args)
}

func (c *Config) Validate() error {
	var errs []error

	switch c.StorageType {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("postgres storage requires DATABASE_DSN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage type %q", c.StorageType))
	}

	if c.StorageType == StorageSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("sqlite storage requires SQLITE_PATH"))
	}
	if c.ServerAddress == "" {
		errs = append(errs, errors.New("server address is empty"))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, errors.New("sweep interval must be positive"))
	}
	if c.DefaultEditTTL <= 0 {
		errs = append(errs, errors.New("default edit ttl must be positive"))
	}
	if c.MaxCreateAttempts <= 0 {
		errs = append(errs, errors.New("max create attempts must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func resolveFilePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return absPath
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
