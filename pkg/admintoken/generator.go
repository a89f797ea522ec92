// Package admintoken implements day-scoped admin token generation.
package admintoken

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// Token format constants.
const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// IVSize is the initialization vector length in bytes.
	IVSize = 16

	// DateLayout is the date stamp format bound into the plaintext.
	// The verifier composes the same stamp, so both sides must agree
	// on this layout and on the clock's time zone.
	DateLayout = "2006-01-02"

	// PlaintextSuffix is the fixed trailing component of the plaintext.
	PlaintextSuffix = "xy521"
)

// Generation errors.
var (
	ErrEmptySecret    = errors.New("admintoken: empty secret")
	ErrSecretEncoding = errors.New("admintoken: secret is not valid UTF-8")
	ErrEntropy        = errors.New("admintoken: entropy source unavailable")
)

// Token is one generated admin token together with the inputs the
// operator needs to see. Nothing here is retained by the generator.
type Token struct {
	// DateStamp is the calendar day the token is scoped to, YYYY-MM-DD.
	DateStamp string

	// Plaintext is the composed cleartext, {DateStamp}_{secret}_xy521.
	// It is operator-facing output, not a secret by itself.
	Plaintext string

	// IV is the 16-byte initialization vector.
	IV []byte

	// Ciphertext is the AES-256-CBC ciphertext of the padded plaintext.
	Ciphertext []byte
}

// Bytes returns the raw token, IV || Ciphertext.
func (t *Token) Bytes() []byte {
	buf := make([]byte, 0, len(t.IV)+len(t.Ciphertext))
	buf = append(buf, t.IV...)
	return append(buf, t.Ciphertext...)
}

// Hex returns the wire form of the token: lowercase hex of IV || Ciphertext.
func (t *Token) Hex() string {
	return hex.EncodeToString(t.Bytes())
}

// Generator produces admin tokens. The zero value uses the system clock
// and crypto/rand; tests inject fixed collaborators instead.
//
// A Generator has no mutable state and is safe for concurrent use as
// long as its Rand reader is (crypto/rand.Reader is).
type Generator struct {
	// Now supplies the current time. Nil means time.Now.
	Now func() time.Time

	// Rand supplies IV bytes. Nil means crypto/rand.Reader.
	// A non-CSPRNG reader here breaks the scheme; never substitute
	// a weaker source outside of tests.
	Rand io.Reader
}

// New returns a Generator backed by the system clock and crypto/rand.
func New() *Generator {
	return &Generator{}
}

// Generate builds the token for secret, scoped to today.
//
// The pipeline is: compose plaintext, derive key, draw IV, pad, encrypt,
// and it either fails on input validation or entropy exhaustion, or
// succeeds. There are no partial results.
func (g *Generator) Generate(secret string) (*Token, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if !utf8.ValidString(secret) {
		return nil, ErrSecretEncoding
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	entropy := io.Reader(rand.Reader)
	if g.Rand != nil {
		entropy = g.Rand
	}

	date := now().Format(DateLayout)
	plain := fmt.Sprintf("%s_%s_%s", date, secret, PlaintextSuffix)

	key := DeriveKey(secret)
	defer ZeroKey(key)

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(entropy, iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		// Unreachable with a 32-byte key; surfaced rather than swallowed.
		return nil, fmt.Errorf("admintoken: init cipher: %w", err)
	}

	padded := Pad([]byte(plain))
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	return &Token{
		DateStamp:  date,
		Plaintext:  plain,
		IV:         iv,
		Ciphertext: ct,
	}, nil
}

// DeriveKey derives the AES-256 key for secret: a single SHA-256 pass
// over its UTF-8 bytes. No salt, no stretching; the verifier performs
// the identical derivation.
func DeriveKey(secret string) []byte {
	h := sha256.Sum256([]byte(secret))
	return h[:]
}

// ZeroKey securely zeros a key in memory.
func ZeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
