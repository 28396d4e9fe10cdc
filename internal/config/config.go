// Package config loads Recipe Haven settings. Values are layered:
// built-in defaults, then an optional YAML file, then HAVEN_* environment
// variables (a .env file is loaded first when present). Command-line flags
// are applied by the caller on top of the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipehaven/internal/logger"
	"github.com/hammamikhairi/recipehaven/internal/persist"
	"github.com/hammamikhairi/recipehaven/internal/storage"
)

// Storage backends understood by storage.Open.
const (
	BackendMemory = storage.BackendMemory
	BackendFile   = storage.BackendFile
	BackendSQLite = storage.BackendSQLite
)

// DefaultPlaceholderImage is stored for submissions without an image URL.
const DefaultPlaceholderImage = persist.DefaultPlaceholder

// Env var names.
const (
	EnvDataFile         = "HAVEN_DATA_FILE"
	EnvStorageBackend   = "HAVEN_STORAGE_BACKEND"
	EnvStoragePath      = "HAVEN_STORAGE_PATH"
	EnvStorageSlot      = "HAVEN_STORAGE_SLOT"
	EnvSubmitDelay      = "HAVEN_SUBMIT_DELAY"
	EnvPlaceholderImage = "HAVEN_PLACEHOLDER_IMAGE"
	EnvLogLevel         = "HAVEN_LOG_LEVEL"
	EnvLogFile          = "HAVEN_LOG_FILE"
)

// Config holds all Recipe Haven configuration.
type Config struct {
	// DataFile overrides the embedded catalog. Empty uses the bundled data.
	DataFile string `yaml:"data_file"`

	Storage StorageConfig `yaml:"storage"`

	// SubmitDelay is the simulated network latency before a submission
	// is persisted.
	SubmitDelay time.Duration `yaml:"submit_delay"`

	PlaceholderImage string `yaml:"placeholder_image"`

	Log LogConfig `yaml:"log"`
}

// StorageConfig selects where submitted recipes are kept.
type StorageConfig struct {
	Backend string `yaml:"backend"` // memory, file, sqlite
	Path    string `yaml:"path"`    // directory (file) or database file (sqlite)
	Slot    string `yaml:"slot"`    // key holding the collection
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level"` // off, normal, verbose
	File  string `yaml:"file"`  // "stderr" logs to the console
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    ".haven-data",
			Slot:    "recipes",
		},
		SubmitDelay:      time.Second,
		PlaceholderImage: DefaultPlaceholderImage,
		Log: LogConfig{
			Level: "normal",
			File:  ".haven-logs/haven.log",
		},
	}
}

// LoadEnv loads .env style files into the process environment. Missing
// files are ignored; variables already set win.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvStorageSlot); v != "" {
		c.Storage.Slot = v
	}
	if v := os.Getenv(EnvSubmitDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSubmitDelay, err)
		}
		c.SubmitDelay = d
	}
	if v := os.Getenv(EnvPlaceholderImage); v != "" {
		c.PlaceholderImage = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage backend %q: must be %s, %s or %s",
			c.Storage.Backend, BackendMemory, BackendFile, BackendSQLite)
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage path is required for the %s backend", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Slot) == "" {
		return errors.New("storage slot must not be empty")
	}
	if c.SubmitDelay < 0 {
		return fmt.Errorf("submit delay must not be negative, got %s", c.SubmitDelay)
	}
	if c.PlaceholderImage == "" {
		c.PlaceholderImage = DefaultPlaceholderImage
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the parsed log level. Validate has already rejected
// bad values.
func (c *Config) LogLevel() logger.Level {
	l, _ := logger.ParseLevel(c.Log.Level)
	return l
}
