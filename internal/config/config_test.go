package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tvscript/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Error("expected exists=false for missing file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Cache.TTLMinutes != 360 {
		t.Errorf("default TTL = %d, want 360", cfg.Cache.TTLMinutes)
	}
	if cfg.Fetch.Workers != 1 {
		t.Errorf("default workers = %d, want 1", cfg.Fetch.Workers)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("default log format = %q, want text", cfg.Logging.Format)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[cache]
dir = "` + filepath.Join(dir, "pages") + `"
ttl_minutes = 5

[fetch]
workers = 4
user_agent = "test-agent"

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Cache.TTLMinutes != 5 {
		t.Errorf("TTL = %d, want 5", cfg.Cache.TTLMinutes)
	}
	if cfg.Fetch.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Fetch.Workers)
	}
	if cfg.Fetch.UserAgent != "test-agent" {
		t.Errorf("user agent = %q, want test-agent", cfg.Fetch.UserAgent)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("log format = %q, want normalized json", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"zero ttl", "[cache]\nttl_minutes = -1\n", "ttl_minutes"},
		{"zero workers", "[fetch]\nworkers = 0\n", "workers"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	expanded, err := config.ExpandPath("~/transcripts")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if expanded != filepath.Join(home, "transcripts") {
		t.Errorf("expanded = %q, want under %q", expanded, home)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	// The sample must itself be loadable.
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Cache.TTLMinutes != 360 {
		t.Errorf("sample TTL = %d, want 360", cfg.Cache.TTLMinutes)
	}
}
