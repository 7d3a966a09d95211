package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug level", input: "debug", expected: slog.LevelDebug},
		{name: "info level", input: "info", expected: slog.LevelInfo},
		{name: "warn level", input: "warn", expected: slog.LevelWarn},
		{name: "warning level", input: "warning", expected: slog.LevelWarn},
		{name: "error level", input: "error", expected: slog.LevelError},
		{name: "uppercase DEBUG", input: "DEBUG", expected: slog.LevelDebug},
		{name: "mixed case Warn", input: "Warn", expected: slog.LevelWarn},
		{name: "empty string defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown level defaults to info", input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "debug", Format: "json", Service: "reputationd", Output: &buf})

	logger.Debug("check completed", "verdict", "dangerous")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "reputationd" {
		t.Errorf("expected service attribute, got %v", line["service"])
	}
	if line["verdict"] != "dangerous" {
		t.Errorf("expected verdict attribute, got %v", line["verdict"])
	}
}

func TestInitLoggerTextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "warn", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text handler output, got %q", out)
	}
}

func TestInitLoggerSetsDefault(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "info", Format: "json", Output: &bytes.Buffer{}})

	if logger.Handler() != slog.Default().Handler() {
		t.Error("InitLogger did not set the default logger")
	}
}
