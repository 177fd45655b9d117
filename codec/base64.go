package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Alphabet is the 64-symbol table used by ToBase64 and FromBase64.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-"

var (
	paddedEncoding = base64.NewEncoding(Alphabet)
	rawEncoding    = paddedEncoding.WithPadding(base64.NoPadding)
)

// ToBase64 encodes src in 3-byte groups of 4 symbols. A trailing group of one
// or two bytes is padded with '=' to a full 4-symbol block.
func ToBase64(src []byte) string {
	return paddedEncoding.EncodeToString(src)
}

// FromBase64 is the lenient inverse of ToBase64.
//
// Decoding stops at the first '=' or at the first character outside Alphabet.
// A trailing partial group of 2 or 3 symbols yields 1 or 2 bytes; a single
// dangling symbol carries no complete byte and is dropped.
func FromBase64(s string) []byte {
	n := symbolPrefix(s)
	if n%4 == 1 {
		n--
	}
	// Only alphabet symbols with a decodable tail remain, and the default
	// (non-strict) decoder ignores trailing pad bits.
	out, err := rawEncoding.DecodeString(s[:n])
	if err != nil {
		return nil
	}
	return out
}

// FromBase64Strict decodes the canonical padded form produced by ToBase64.
// It returns ErrInvalidEncoding for foreign characters, bad padding, or a
// truncated final block.
func FromBase64Strict(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", ErrInvalidEncoding)
	}
	out, err := paddedEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return out, nil
}

func symbolPrefix(s string) int {
	for i := 0; i < len(s); i++ {
		if !isSymbol(s[i]) {
			return i
		}
	}
	return len(s)
}

func isSymbol(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-':
		return true
	}
	return false
}
