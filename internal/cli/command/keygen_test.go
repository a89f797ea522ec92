package command

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yndnr/admintok-go/internal/core/domain"
)

func TestKeygen_Quiet(t *testing.T) {
	stdout, _, err := runApp(t, "", "-q", "keygen")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(stdout))
	if err != nil {
		t.Fatalf("secret is not valid base64 rawurl: %v", err)
	}
	if len(raw) != domain.DefaultSecretBytes {
		t.Errorf("secret entropy = %d bytes, want %d", len(raw), domain.DefaultSecretBytes)
	}
}

func TestKeygen_CustomBytes(t *testing.T) {
	stdout, _, err := runApp(t, "", "-q", "keygen", "--bytes", "16")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(stdout))
	if err != nil {
		t.Fatalf("secret is not valid base64 rawurl: %v", err)
	}
	if len(raw) != 16 {
		t.Errorf("secret entropy = %d bytes, want 16", len(raw))
	}
}

func TestKeygen_BytesOutOfRange(t *testing.T) {
	_, _, err := runApp(t, "", "keygen", "--bytes", "4")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("run error = %v, want %v", err, domain.ErrInvalidArgument)
	}
}

func TestKeygen_TextOutput(t *testing.T) {
	stdout, _, err := runApp(t, "", "keygen")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	if !strings.Contains(stdout, "Generated shared secret") {
		t.Errorf("text output missing heading:\n%s", stdout)
	}
	if !strings.Contains(stdout, "ADMIN_SECRET") {
		t.Errorf("text output should mention the server variable:\n%s", stdout)
	}
}

func TestKeygen_JSONOutput(t *testing.T) {
	stdout, _, err := runApp(t, "", "-o", "json", "keygen")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var res struct {
		Secret  string `json:"secret"`
		Entropy int    `json:"entropy_bytes"`
	}
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if res.Entropy != domain.DefaultSecretBytes {
		t.Errorf("entropy_bytes = %d, want %d", res.Entropy, domain.DefaultSecretBytes)
	}
	if res.Secret == "" {
		t.Error("secret missing from JSON output")
	}
}
