package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"default config", DefaultConfig()},
		{"json format", Config{Level: "debug", Format: "json"}},
		{"text format", Config{Level: "info", Format: "text"}},
		{"unknown level falls back", Config{Level: "chatty", Format: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l := New(tt.cfg); l == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json", Output: &buf})

	l.Debug("debug msg")
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Errorf("messages below warn should be suppressed: %s", out)
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Errorf("warn and error messages missing: %s", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json", Output: &buf})

	SetLevel("debug")
	defer SetLevel("warn")

	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("SetLevel(debug) did not take effect: %s", buf.String())
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Output: &buf})

	l.With("run_id", "01J0000000000000000000000").Info("token issued", "date", "2024-06-01")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "token issued" {
		t.Errorf("msg = %v, want %q", entry["msg"], "token issued")
	}
	if entry["run_id"] != "01J0000000000000000000000" {
		t.Errorf("run_id = %v", entry["run_id"])
	}
	if entry["date"] != "2024-06-01" {
		t.Errorf("date = %v", entry["date"])
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	// Must not panic, must accept the full interface.
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.With("k", "v").Error("e")
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	var buf bytes.Buffer
	SetDefault(New(Config{Level: "info", Format: "json", Output: &buf}))
	defer SetDefault(New(DefaultConfig()))

	Default().Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger did not write: %s", buf.String())
	}
}
