// Package admintoken implements day-scoped admin token generation.
package admintoken

import (
	"bytes"
	"errors"
)

// BlockSize is the cipher block size in bytes (AES).
const BlockSize = 16

// Padding errors.
var (
	ErrEmptyInput     = errors.New("admintoken: empty input")
	ErrInvalidPadding = errors.New("admintoken: invalid PKCS#7 padding")
)

// Pad applies PKCS#7 padding (RFC 5652 §6.3) to data.
//
// The result is always a positive multiple of BlockSize. Block-aligned
// input receives a full extra block of padding, so at least one pad byte
// is always present and Unpad is unambiguous.
func Pad(data []byte) []byte {
	n := BlockSize - len(data)%BlockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad removes PKCS#7 padding from data.
//
// It returns ErrInvalidPadding if data is not a positive multiple of
// BlockSize, the pad value is out of range, or the pad bytes are not
// uniform.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data)%BlockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n < 1 || n > BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
