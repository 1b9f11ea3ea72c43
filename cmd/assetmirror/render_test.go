package main

import (
	"log/slog"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	got := renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Files processed", "42"},
			{"Errors", "1"},
		},
		[]columnAlignment{alignLeft, alignRight},
	)

	// go-pretty's rounded style upper-cases header cells; row cells keep
	// their case
	for _, want := range []string{"METRIC", "VALUE", "Files processed", "42", "Errors"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestRenderTable_ShortRowPadded(t *testing.T) {
	got := renderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only-a"}},
		nil,
	)
	if !strings.Contains(got, "only-a") {
		t.Errorf("table missing row value:\n%s", got)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := renderTable(nil, nil, nil); got != "" {
		t.Errorf("renderTable(nil) = %q, want empty", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHistoryPath(t *testing.T) {
	if got := historyPath("/tmp/custom.db"); got != "/tmp/custom.db" {
		t.Errorf("configured path not honored: %s", got)
	}

	t.Setenv("XDG_DATA_HOME", "/data")
	if got := historyPath(""); got != "/data/assetmirror/history.db" {
		t.Errorf("default path = %s", got)
	}
}
