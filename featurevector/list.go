package featurevector

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// List is an ordered collection of vectors with unique ids.
//
// Membership is tracked in a 32-bit Roaring bitmap, which also yields the ids
// in ascending order. List is not safe for concurrent mutation.
type List struct {
	vectors []*Vector
	pos     map[uint32]int
	ids     *roaring.Bitmap
}

// NewList creates a list holding the given vectors in order.
// It fails with ErrDuplicateID if two vectors share an id.
func NewList(vectors ...*Vector) (*List, error) {
	l := &List{
		pos: make(map[uint32]int, len(vectors)),
		ids: roaring.New(),
	}
	for _, v := range vectors {
		if err := l.Add(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add appends v to the list. The list keeps the pointer; use Clone to detach.
func (l *List) Add(v *Vector) error {
	if v == nil {
		return ErrNilVector
	}
	if l.ids.Contains(v.ID()) {
		return fmt.Errorf("%w: %d", ErrDuplicateID, v.ID())
	}
	l.ids.Add(v.ID())
	l.pos[v.ID()] = len(l.vectors)
	l.vectors = append(l.vectors, v)
	return nil
}

// Get returns the vector with the given id.
func (l *List) Get(id uint32) (*Vector, bool) {
	i, ok := l.pos[id]
	if !ok {
		return nil, false
	}
	return l.vectors[i], true
}

// At returns the i-th vector in insertion order.
func (l *List) At(i int) (*Vector, error) {
	if i < 0 || i >= len(l.vectors) {
		return nil, &ErrIndexOutOfRange{Index: i, Length: len(l.vectors)}
	}
	return l.vectors[i], nil
}

// Contains reports whether a vector with the given id is present.
func (l *List) Contains(id uint32) bool {
	return l.ids.Contains(id)
}

// Remove deletes the vector with the given id, preserving the order of the rest.
func (l *List) Remove(id uint32) bool {
	i, ok := l.pos[id]
	if !ok {
		return false
	}
	l.vectors = append(l.vectors[:i], l.vectors[i+1:]...)
	delete(l.pos, id)
	l.ids.Remove(id)
	for j := i; j < len(l.vectors); j++ {
		l.pos[l.vectors[j].ID()] = j
	}
	return true
}

// Len returns the number of vectors.
func (l *List) Len() int {
	return len(l.vectors)
}

// IDs returns the ids in ascending order.
func (l *List) IDs() []uint32 {
	return l.ids.ToArray()
}

// Bitmap returns a copy of the id bitmap.
func (l *List) Bitmap() *roaring.Bitmap {
	return l.ids.Clone()
}

// All iterates the vectors in insertion order.
func (l *List) All() iter.Seq2[int, *Vector] {
	return func(yield func(int, *Vector) bool) {
		for i, v := range l.vectors {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Vectors returns the vectors in insertion order. The slice is a copy; the
// vectors are not.
func (l *List) Vectors() []*Vector {
	out := make([]*Vector, len(l.vectors))
	copy(out, l.vectors)
	return out
}
