// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assetmirror.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[extract]
workers = 8
skip_info_plist = true

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Extract.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Extract.Workers)
	}
	if !cfg.Extract.SkipInfoPlist {
		t.Error("skip_info_plist should be true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Extensions.Image) == 0 {
		t.Error("image extensions should default")
	}
	if !cfg.Extract.FollowSymlinks {
		t.Error("follow_symlinks should default to true")
	}
	if !cfg.History.Enabled {
		t.Error("history should default to enabled")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("ASSETMIRROR_TEST_MISSING_KEY")
	path := writeConfig(t, `
[history]
path = "${ASSETMIRROR_TEST_MISSING_KEY}"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "ASSETMIRROR_TEST_MISSING_KEY") {
		t.Errorf("expected var name in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[extract]
workers = -2
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if len(cfgErr.Errors) == 0 || !strings.Contains(cfgErr.Errors[0], "extract.workers") {
		t.Errorf("errors = %v", cfgErr.Errors)
	}
}

func TestLoad_UnknownKeySuggestion(t *testing.T) {
	path := writeConfig(t, `
[extract]
workerz = 4
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	joined := strings.Join(cfgErr.Errors, "\n")
	if !strings.Contains(joined, "extract.workerz") {
		t.Errorf("expected unknown key in errors, got %v", cfgErr.Errors)
	}
	if !strings.Contains(joined, "extract.workers") {
		t.Errorf("expected a suggestion, got %v", cfgErr.Errors)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
