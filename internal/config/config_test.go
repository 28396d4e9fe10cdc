package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "haven.yaml", `
data_file: data/recipes.json
storage:
  backend: SQLite
  path: haven.db
  slot: my-recipes
submit_delay: 250ms
log:
  level: verbose
  file: stderr
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataFile != "data/recipes.json" {
		t.Fatalf("data file = %q", cfg.DataFile)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Fatalf("backend = %q, want %q", cfg.Storage.Backend, BackendSQLite)
	}
	if cfg.Storage.Slot != "my-recipes" {
		t.Fatalf("slot = %q", cfg.Storage.Slot)
	}
	if cfg.SubmitDelay != 250*time.Millisecond {
		t.Fatalf("delay = %s", cfg.SubmitDelay)
	}
	if cfg.PlaceholderImage != DefaultPlaceholderImage {
		t.Fatalf("placeholder should keep its default, got %q", cfg.PlaceholderImage)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "haven.yaml", "storage:\n  backend: file\n  path: somewhere\n")
	t.Setenv(EnvStorageBackend, "memory")
	t.Setenv(EnvSubmitDelay, "2s")
	t.Setenv(EnvLogLevel, "off")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Fatalf("backend = %q, want memory", cfg.Storage.Backend)
	}
	if cfg.SubmitDelay != 2*time.Second {
		t.Fatalf("delay = %s", cfg.SubmitDelay)
	}
	if cfg.Log.Level != "off" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", EnvStorageSlot+"=from-dotenv\n")
	os.Unsetenv(EnvStorageSlot)
	t.Cleanup(func() { os.Unsetenv(EnvStorageSlot) })

	LoadEnv(envPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Slot != "from-dotenv" {
		t.Fatalf("slot = %q, want from-dotenv", cfg.Storage.Slot)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"empty slot", func(c *Config) { c.Storage.Slot = "  " }},
		{"missing path", func(c *Config) { c.Storage.Path = "" }},
		{"negative delay", func(c *Config) { c.SubmitDelay = -time.Second }},
		{"bad log level", func(c *Config) { c.Log.Level = "shouty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	t.Run("memory needs no path", func(t *testing.T) {
		cfg := Default()
		cfg.Storage.Backend = BackendMemory
		cfg.Storage.Path = ""
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBadEnvDelay(t *testing.T) {
	t.Setenv(EnvSubmitDelay, "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unparseable delay")
	}
}
