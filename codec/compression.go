package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the block compression applied to a frame payload.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, modest ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ParseCompression maps a name as returned by String back to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// ErrCorruptFrame is returned when a compressed frame cannot be decoded.
var ErrCorruptFrame = errors.New("corrupt frame")

// Frame format: [type uint8][uncompressed uint32][stored uint32][payload...].
// Header integers are little-endian so frames are portable between hosts.
// A stored size of 0 with a non-empty payload means "kept uncompressed".
const frameHeaderSize = 9

// lz4MaxExpansion is the largest output-to-input ratio of an lz4 block.
const lz4MaxExpansion = 255

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compress wraps data into a frame using the given compression.
// If compression does not shrink the payload by at least 10%, the frame keeps
// the raw bytes instead.
func Compress(data []byte, c Compression) ([]byte, error) {
	var compressed []byte
	var err error

	switch c {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed = compressZSTD(data)
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		return frame(c, len(data), 0, data), nil
	}
	return frame(c, len(data), len(compressed), compressed), nil
}

func frame(c Compression, rawSize, storedSize int, payload []byte) []byte {
	out := make([]byte, frameHeaderSize+len(payload))
	out[0] = byte(c)
	binary.LittleEndian.PutUint32(out[1:], uint32(rawSize))
	binary.LittleEndian.PutUint32(out[5:], uint32(storedSize))
	copy(out[frameHeaderSize:], payload)
	return out
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// Decompress reverses Compress. The compression type is read from the frame.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too small for header", ErrCorruptFrame, len(data))
	}

	c := Compression(data[0])
	rawSize := binary.LittleEndian.Uint32(data[1:])
	storedSize := binary.LittleEndian.Uint32(data[5:])
	payload := data[frameHeaderSize:]

	if storedSize == 0 {
		if uint64(len(payload)) < uint64(rawSize) {
			return nil, fmt.Errorf("%w: raw payload truncated", ErrCorruptFrame)
		}
		out := make([]byte, rawSize)
		copy(out, payload)
		return out, nil
	}

	if uint64(len(payload)) < uint64(storedSize) {
		return nil, fmt.Errorf("%w: compressed payload truncated", ErrCorruptFrame)
	}
	payload = payload[:storedSize]
	// The header's raw size is untrusted; up-front allocation is bounded by
	// the payload actually present.
	capHint := min(uint64(rawSize), uint64(storedSize)*lz4MaxExpansion)

	switch c {
	case CompressionLZ4:
		if uint64(rawSize) > capHint {
			return nil, fmt.Errorf("%w: raw size %d exceeds lz4 bound for %d bytes", ErrCorruptFrame, rawSize, storedSize)
		}
		result := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}
		if uint32(n) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptFrame)
		}
		return result, nil

	case CompressionZSTD:
		var h zstd.Header
		if err := h.Decode(payload); err == nil && h.HasFCS && h.FrameContentSize != uint64(rawSize) {
			return nil, fmt.Errorf("%w: content size %d does not match header %d", ErrCorruptFrame, h.FrameContentSize, rawSize)
		}

		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, make([]byte, 0, capHint))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}
		if uint64(len(decoded)) != uint64(rawSize) {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptFrame)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("%w: unknown compression %v", ErrCorruptFrame, c)
	}
}
