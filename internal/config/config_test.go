package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	want := DefaultConfig()
	want.General.DefaultFocus = "performance-tracker"
	want.Appearance.Theme = "tokyo-night"
	want.Export.Dir = "/tmp/out"
	want.Log.File = "/tmp/stoki.log"
	want.Log.Level = "debug"

	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.General.DefaultFocus != "market-overview" {
		t.Errorf("default focus = %q, want market-overview", cfg.General.DefaultFocus)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFileCorruptReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg != DefaultConfig() {
		t.Fatalf("got %+v, want defaults on parse error", cfg)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envTheme, "catppuccin-mocha")
	t.Setenv(envFocus, "positioning")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "catppuccin-mocha" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.General.DefaultFocus != "positioning" {
		t.Errorf("focus = %q", cfg.General.DefaultFocus)
	}
}

func TestLogPath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/var/cache/test")

	if got, want := LogPath(DefaultConfig()), filepath.Join("/var/cache/test", "stoki", "stoki.log"); got != want {
		t.Errorf("default LogPath = %q, want %q", got, want)
	}

	cfg := DefaultConfig()
	cfg.Log.File = "/tmp/x.log"
	if got := LogPath(cfg); got != "/tmp/x.log" {
		t.Errorf("explicit LogPath = %q", got)
	}
}
