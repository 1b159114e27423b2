package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.General.Currency)
	}
	if cfg.Advisor.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Advisor.Model, DefaultModel)
	}
	if Exists() {
		t.Error("Exists() should be false before first save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.Advisor.APIKey = "test-key"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() should be true after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "€" {
		t.Errorf("Currency = %q, want €", got.General.Currency)
	}
	if got.Advisor.APIKey != "test-key" {
		t.Errorf("APIKey = %q", got.Advisor.APIKey)
	}
}

func TestGetAdvisorKeyEnvWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := DefaultConfig()
	cfg.Advisor.APIKey = "file-key"
	if got := GetAdvisorKey(cfg); got != "env-key" {
		t.Errorf("GetAdvisorKey = %q, want env-key", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := GetAdvisorKey(cfg); got != "file-key" {
		t.Errorf("GetAdvisorKey = %q, want file-key", got)
	}
}

func TestConfigPathUnderXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "compass", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}
