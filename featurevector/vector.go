package featurevector

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/hermes/codec"
	"github.com/hupe1980/hermes/internal/conv"
)

const (
	// HeaderSize is the size of the id and count header fields.
	HeaderSize = 4 + 4
	// ElementSize is the serialized size of one element.
	ElementSize = 8
)

// Vector is an identified, ordered sequence of float64 elements.
//
// The zero value is an empty vector with id 0. A Vector is not safe for
// concurrent mutation; Serialize writes an internal cache.
type Vector struct {
	id   uint32
	data []float64

	// serialized is only meaningful while cached is true.
	serialized []byte
	cached     bool
}

// New creates a vector with the given id, copying elements in order.
func New(id uint32, elements []float64) *Vector {
	return &Vector{
		id:   id,
		data: slices.Clone(elements),
	}
}

// ID returns the vector identifier.
func (v *Vector) ID() uint32 {
	return v.id
}

// SetID sets the vector identifier. Uniqueness is not checked.
func (v *Vector) SetID(id uint32) {
	v.id = id
	v.invalidate()
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// Get returns the element at index i.
func (v *Vector) Get(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, &ErrIndexOutOfRange{Index: i, Length: len(v.data)}
	}
	return v.data[i], nil
}

// At returns the element at index i without bounds reporting.
// It panics like a slice access when i is out of range.
func (v *Vector) At(i int) float64 {
	return v.data[i]
}

// Set assigns value at index i.
//
// An index below Len overwrites in place, Len appends, and anything past Len
// first pads the gap with zeros. Negative indices and indices that cannot be
// represented in the serialized header are rejected.
func (v *Vector) Set(i int, value float64) error {
	if i < 0 || !conv.FitsUint32(i+1) {
		return &ErrIndexOutOfRange{Index: i, Length: len(v.data)}
	}
	if i >= len(v.data) {
		v.data = append(v.data, make([]float64, i+1-len(v.data))...)
	}
	v.data[i] = value
	v.invalidate()
	return nil
}

// Append adds value after the last element. It fails with ErrOutOfRange
// once the length no longer fits the serialized header.
func (v *Vector) Append(value float64) error {
	return v.Set(len(v.data), value)
}

// Resize truncates or zero-pads the vector to n elements.
func (v *Vector) Resize(n int) error {
	return v.ResizeFill(n, 0)
}

// ResizeFill truncates the vector to n elements, or pads it with fill.
func (v *Vector) ResizeFill(n int, fill float64) error {
	if n < 0 || !conv.FitsUint32(n) {
		return &ErrIndexOutOfRange{Index: n, Length: len(v.data)}
	}
	if n <= len(v.data) {
		clear(v.data[n:])
		v.data = v.data[:n]
	} else {
		for len(v.data) < n {
			v.data = append(v.data, fill)
		}
	}
	v.invalidate()
	return nil
}

// Elements returns a copy of the element data.
func (v *Vector) Elements() []float64 {
	return slices.Clone(v.data)
}

// Values returns the element data without copying.
// The slice must be treated as read-only.
func (v *Vector) Values() []float64 {
	return v.data
}

// Clone returns a deep copy that shares no storage with v.
func (v *Vector) Clone() *Vector {
	return New(v.id, v.data)
}

// Equal reports whether both vectors have the same id, the same length and
// pairwise equal elements.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil {
		return false
	}
	if v.id != other.id || len(v.data) != len(other.data) {
		return false
	}
	for i, x := range v.data {
		if x != other.data[i] {
			return false
		}
	}
	return true
}

// SerializedSize returns the size in bytes of the serialized form.
func (v *Vector) SerializedSize() int {
	return HeaderSize + len(v.data)*ElementSize
}

// Serialize returns the serialized form of the vector.
//
// The buffer is cached until the next mutation, so repeated calls return the
// same slice. Callers must not modify it.
func (v *Vector) Serialize() []byte {
	if v.cached {
		return v.serialized
	}

	buf := make([]byte, v.SerializedSize())
	binary.NativeEndian.PutUint32(buf[0:], v.id)
	// Set and ResizeFill keep the length within uint32.
	binary.NativeEndian.PutUint32(buf[4:], uint32(len(v.data)))
	for i, x := range v.data {
		binary.NativeEndian.PutUint64(buf[HeaderSize+i*ElementSize:], math.Float64bits(x))
	}

	v.serialized = buf
	v.cached = true
	return buf
}

// Deserialize replaces id and elements with the contents of data.
//
// If byteLength is positive the element count is derived from it as
// (byteLength-8)/8; otherwise the count is read from the header. The vector is
// left unchanged when data is too short for the resulting layout.
func (v *Vector) Deserialize(data []byte, byteLength int) error {
	if len(data) < HeaderSize {
		return malformed("need at least %d header bytes, got %d", HeaderSize, len(data))
	}

	var count int
	if byteLength > 0 {
		if byteLength < HeaderSize {
			return malformed("byte length %d is smaller than the header", byteLength)
		}
		count = (byteLength - HeaderSize) / ElementSize
	} else {
		n, err := conv.Uint32ToInt(binary.NativeEndian.Uint32(data[4:]))
		if err != nil {
			return malformed("element count: %v", err)
		}
		count = n
	}

	if count > (len(data)-HeaderSize)/ElementSize {
		return malformed("%d elements need %d bytes, got %d", count, HeaderSize+count*ElementSize, len(data))
	}

	elements := make([]float64, count)
	for i := range elements {
		elements[i] = math.Float64frombits(binary.NativeEndian.Uint64(data[HeaderSize+i*ElementSize:]))
	}

	v.id = binary.NativeEndian.Uint32(data[0:])
	v.data = elements
	v.invalidate()
	return nil
}

// SerializeToText returns the serialized form as a string holding one raw
// byte per position. The result is not printable.
func (v *Vector) SerializeToText() string {
	return string(v.Serialize())
}

// DeserializeFromText reverses SerializeToText. The element count is read
// from the embedded header.
func (v *Vector) DeserializeFromText(s string) error {
	return v.Deserialize([]byte(s), 0)
}

// MarshalBase64 returns the serialized form encoded with codec.ToBase64.
func (v *Vector) MarshalBase64() string {
	return codec.ToBase64(v.Serialize())
}

// UnmarshalBase64 decodes a token produced by MarshalBase64 into v.
func (v *Vector) UnmarshalBase64(s string) error {
	data, err := codec.FromBase64Strict(s)
	if err != nil {
		return err
	}
	return v.Deserialize(data, 0)
}

// UnmarshalHex decodes an uppercase hex rendering of the serialized form into v.
func (v *Vector) UnmarshalHex(s string) error {
	data, err := codec.FromHex(s)
	if err != nil {
		return err
	}
	return v.Deserialize(data, 0)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *Vector) MarshalBinary() ([]byte, error) {
	return slices.Clone(v.Serialize()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vector) UnmarshalBinary(data []byte) error {
	return v.Deserialize(data, 0)
}

func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("FeatureVector{id=")
	sb.WriteString(strconv.FormatUint(uint64(v.id), 10))
	sb.WriteString(", elements=[")
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteString("]}")
	return sb.String()
}

func (v *Vector) invalidate() {
	v.cached = false
	v.serialized = nil
}

var _ fmt.Stringer = (*Vector)(nil)
