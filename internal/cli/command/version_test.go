package command

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersion_Text(t *testing.T) {
	stdout, _, err := runApp(t, "", "version")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.HasPrefix(stdout, "admintok ") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestVersion_JSON(t *testing.T) {
	stdout, _, err := runApp(t, "", "-o", "json", "version")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var res struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if res.Version == "" {
		t.Error("version missing from JSON output")
	}
}
