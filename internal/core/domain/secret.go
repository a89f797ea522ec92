// Package domain defines the core domain models for admintok.
package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Shared-secret constraints.
const (
	// DefaultSecretBytes is the entropy of a provisioned secret.
	// 32 random bytes, matching the AES-256 security level of the
	// key the secret is hashed into.
	DefaultSecretBytes = 32

	// MinSecretBytes bounds provisioning requests; fewer bytes than
	// this defeats the single-pass key derivation the scheme relies on.
	MinSecretBytes = 16

	// MaxSecretBytes bounds provisioning requests.
	MaxSecretBytes = 64
)

// ValidateSecret checks that a caller-supplied secret is usable: trims
// surrounding whitespace and rejects empty or non-UTF-8 values. It
// returns the trimmed secret.
//
// Validation happens here, before any key derivation, so an empty
// input can never reach the cipher.
func ValidateSecret(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", ErrSecretMissing
	}
	if !utf8.ValidString(secret) {
		return "", ErrSecretEncoding
	}
	return secret, nil
}

// NewSharedSecret provisions a fresh high-entropy admin credential.
//
// The result is Base64 RawURL encoded so it survives .env files and
// shell transcription unquoted. Both sides of the pairing must receive
// the exact same string.
func NewSharedSecret(numBytes int) (string, error) {
	if numBytes < MinSecretBytes || numBytes > MaxSecretBytes {
		return "", ErrInvalidArgument.WithDetails(
			fmt.Sprintf("secret length %d outside [%d, %d] bytes", numBytes, MinSecretBytes, MaxSecretBytes))
	}

	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrEntropyUnavailable.WithCause(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
