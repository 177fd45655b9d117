package codec

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	compressible := bytes.Repeat([]byte("hermes feature vector "), 256)
	tiny := []byte{1, 2, 3}

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			for _, data := range [][]byte{compressible, tiny, {}} {
				framed, err := Compress(data, c)
				require.NoError(t, err)
				assert.Equal(t, byte(c), framed[0])

				got, err := Decompress(framed)
				require.NoError(t, err)
				assert.Equal(t, data, got)
			}
		})
	}

	t.Run("Shrinks", func(t *testing.T) {
		framed, err := Compress(compressible, CompressionZSTD)
		require.NoError(t, err)
		assert.Less(t, len(framed), len(compressible))
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := Compress(tiny, Compression(9))
		assert.Error(t, err)
	})
}

func TestDecompressCorrupt(t *testing.T) {
	_, err := Decompress([]byte{1, 2})
	assert.ErrorIs(t, err, ErrCorruptFrame)

	framed, err := Compress(bytes.Repeat([]byte{7}, 1024), CompressionLZ4)
	require.NoError(t, err)

	_, err = Decompress(framed[:len(framed)-1])
	assert.ErrorIs(t, err, ErrCorruptFrame)

	framed[0] = 42
	_, err = Decompress(framed)
	assert.ErrorIs(t, err, ErrCorruptFrame)

	t.Run("ForgedRawSize", func(t *testing.T) {
		for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
			t.Run(c.String(), func(t *testing.T) {
				forged := []byte{byte(c), 0xFF, 0xFF, 0xFF, 0xFF, 1, 0, 0, 0, 0}

				// Warm the decoder pool so only the decode itself is measured.
				_, _ = Decompress(forged)

				var before, after runtime.MemStats
				runtime.ReadMemStats(&before)
				_, err := Decompress(forged)
				runtime.ReadMemStats(&after)

				assert.ErrorIs(t, err, ErrCorruptFrame)
				assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
			})
		}
	})
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, got)

	_, err = ParseCompression("brotli")
	assert.Error(t, err)
	assert.Equal(t, "Unknown(7)", Compression(7).String())
}
