package brightkid

import (
	"os"
	"path/filepath"
	"testing"

	"log/slog"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "WARN"
format = "json"
add_source = true

[http]
addr = ":9090"

[spaces]
enabled = true
bucket = "brightkid-snapshots"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Log.Level != slog.LevelWarn {
		t.Errorf("Log.Level = %v, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" || !cfg.Log.AddSource {
		t.Errorf("Log = %+v, want json format with add_source", cfg.Log)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if !cfg.Spaces.Enabled || cfg.Spaces.Bucket != "brightkid-snapshots" {
		t.Errorf("Spaces = %+v", cfg.Spaces)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() on a missing file returned nil error")
	}
}
