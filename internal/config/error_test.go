// internal/config/error_test.go
package config

import (
	"strings"
	"testing"
)

func TestConfigError_Empty(t *testing.T) {
	e := &ConfigError{}
	if e.HasErrors() {
		t.Error("empty error should report no errors")
	}
	if e.Error() != "" {
		t.Errorf("Error() = %q, want empty", e.Error())
	}
}

func TestConfigError_Missing(t *testing.T) {
	e := &ConfigError{Missing: []string{"HISTORY_PATH", "LOG_LEVEL"}}
	if !e.HasErrors() {
		t.Error("should report errors")
	}
	msg := e.Error()
	if !strings.Contains(msg, "HISTORY_PATH") || !strings.Contains(msg, "LOG_LEVEL") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestConfigError_Validation(t *testing.T) {
	e := &ConfigError{Errors: []string{"extract.workers: must be zero or positive, got -1"}}
	msg := e.Error()
	if !strings.Contains(msg, "validation failed") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "extract.workers") {
		t.Errorf("Error() = %q", msg)
	}
}
