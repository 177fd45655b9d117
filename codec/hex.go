package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FromHex decodes pairs of uppercase hex digits (0-9, A-F), high nibble first.
// Odd-length input or any other character is rejected with ErrInvalidEncoding.
func FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", ErrInvalidEncoding, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return nil, fmt.Errorf("%w: invalid hex digit %q at offset %d", ErrInvalidEncoding, c, i)
		}
	}
	return hex.DecodeString(s)
}

// ToHex encodes src as uppercase hex digit pairs without separators.
func ToHex(src []byte) string {
	return strings.ToUpper(hex.EncodeToString(src))
}
