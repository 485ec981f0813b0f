package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for explicit missing config path")
	}
}

func TestLoadDefaultsWhenNoConfigDiscovered(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(orig)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style.IndentWidth != 2 || cfg.Style.MaxLineLength != 80 {
		t.Errorf("defaults not applied: %+v", cfg.Style)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hstyle.yml")
	content := `style:
  max_line_length: 100
  local_prefixes:
    - Acme
  rules:
    layout/space-salvage: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Style.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d, want 100", cfg.Style.MaxLineLength)
	}
	if cfg.Style.IndentWidth != 2 {
		t.Errorf("IndentWidth = %d, want the default 2", cfg.Style.IndentWidth)
	}
	if len(cfg.Style.LocalPrefixes) != 1 || cfg.Style.LocalPrefixes[0] != "Acme" {
		t.Errorf("LocalPrefixes = %v, want [Acme]", cfg.Style.LocalPrefixes)
	}
	if cfg.Style.Enabled("layout/space-salvage") {
		t.Error("disabled rule still enabled")
	}
	if !cfg.Style.Enabled("layout/line-length") {
		t.Error("unlisted rule should default to enabled")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hstyle.yml")
	if err := os.WriteFile(path, []byte("style: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("Discover in empty dir = %q, want empty", got)
	}

	hidden := filepath.Join(dir, ".hstyle.yaml")
	if err := os.WriteFile(hidden, []byte("style: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(dir); got != hidden {
		t.Errorf("Discover = %q, want %q", got, hidden)
	}

	primary := filepath.Join(dir, "hstyle.yml")
	if err := os.WriteFile(primary, []byte("style: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(dir); got != primary {
		t.Errorf("Discover = %q, want the higher-priority %q", got, primary)
	}
}
