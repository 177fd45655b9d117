// Package codec centralizes the text encodings and block compression used to
// move serialized feature vectors around.
//
// Text codecs are a compatibility boundary: the base64 alphabet deliberately
// differs from RFC 4648 (it uses '-' as the 63rd symbol), so tokens produced by
// other encoders will not round-trip.
package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when text input is not valid for the codec.
var ErrInvalidEncoding = errors.New("invalid encoding")

// TextCodec converts bytes to a printable token and back.
// Implementations must be safe for concurrent use.
type TextCodec interface {
	Encode(src []byte) string
	Decode(s string) ([]byte, error)
	Name() string
}

// Base64 is the strict form of the vector base64 codec.
type Base64 struct{}

// Encode implements TextCodec.
func (Base64) Encode(src []byte) string { return ToBase64(src) }

// Decode implements TextCodec.
func (Base64) Decode(s string) ([]byte, error) { return FromBase64Strict(s) }

// Name returns the unique name of the codec ("base64").
func (Base64) Name() string { return "base64" }

// Hex is the uppercase hexadecimal codec.
type Hex struct{}

// Encode implements TextCodec.
func (Hex) Encode(src []byte) string { return ToHex(src) }

// Decode implements TextCodec.
func (Hex) Decode(s string) ([]byte, error) { return FromHex(s) }

// Name returns the unique name of the codec ("hex").
func (Hex) Name() string { return "hex" }

// ByName returns a built-in text codec by its stable name.
func ByName(name string) (TextCodec, bool) {
	switch name {
	case "base64":
		return Base64{}, true
	case "hex":
		return Hex{}, true
	default:
		return nil, false
	}
}

// MustDecode is a helper for tests and fixtures.
func MustDecode(c TextCodec, s string) []byte {
	b, err := c.Decode(s)
	if err != nil {
		panic(fmt.Errorf("codec %s decode failed: %w", c.Name(), err))
	}
	return b
}
