package archive

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hermes"
	"github.com/hupe1980/hermes/blobstore"
	"github.com/hupe1980/hermes/codec"
	"github.com/hupe1980/hermes/featurevector"
)

// Extension is the file extension of vector blobs.
const Extension = ".fv"

// ErrNilVector is returned when a nil vector is saved.
var ErrNilVector = featurevector.ErrNilVector

// Archive stores feature vectors as individual blobs.
type Archive struct {
	store blobstore.Store
	opts  options

	mu  sync.RWMutex
	ids *roaring.Bitmap
}

// New creates an Archive on top of store.
// The id index starts empty; call Refresh to pick up existing blobs.
func New(store blobstore.Store, optFns ...Option) *Archive {
	o := options{
		prefix:      DefaultPrefix,
		compression: codec.CompressionNone,
		logger:      hermes.NoopLogger(),
		metrics:     hermes.NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	o.prefix = strings.Trim(o.prefix, "/")
	o.normalize()

	return &Archive{
		store: store,
		opts:  o,
		ids:   roaring.New(),
	}
}

// Open creates an Archive and loads its id index from the store.
func Open(ctx context.Context, store blobstore.Store, optFns ...Option) (*Archive, error) {
	a := New(store, optFns...)
	if err := a.Refresh(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Store returns the underlying blob store.
func (a *Archive) Store() blobstore.Store {
	return a.store
}

// Compression returns the compression applied to new blobs.
func (a *Archive) Compression() codec.Compression {
	return a.opts.compression
}

// BlobName returns the blob name for id.
func (a *Archive) BlobName(id uint32) string {
	name := strconv.FormatUint(uint64(id), 10) + Extension
	if a.opts.prefix == "" {
		return name
	}
	return a.opts.prefix + "/" + name
}

func (a *Archive) listPrefix() string {
	if a.opts.prefix == "" {
		return ""
	}
	return a.opts.prefix + "/"
}

// parseBlobName extracts the vector id from a blob name produced by BlobName.
func (a *Archive) parseBlobName(name string) (uint32, bool) {
	rest, ok := strings.CutPrefix(name, a.listPrefix())
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, Extension)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}

// Encode returns the blob payload for v without storing it.
func (a *Archive) Encode(v *featurevector.Vector) ([]byte, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	return codec.Compress(v.Serialize(), a.opts.compression)
}

// Decode parses a blob payload produced by Encode.
func Decode(payload []byte) (*featurevector.Vector, error) {
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}
	v := &featurevector.Vector{}
	if err := v.Deserialize(raw, 0); err != nil {
		return nil, err
	}
	if v.SerializedSize() != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes", featurevector.ErrMalformedInput, len(raw)-v.SerializedSize())
	}
	return v, nil
}

// Save stores v under its id, replacing any previous blob.
func (a *Archive) Save(ctx context.Context, v *featurevector.Vector) error {
	if v == nil {
		return ErrNilVector
	}

	start := time.Now()
	n, err := a.save(ctx, v)
	a.opts.metrics.RecordSave(n, time.Since(start), err)
	a.opts.logger.LogSave(ctx, v.ID(), n, err)
	return err
}

func (a *Archive) save(ctx context.Context, v *featurevector.Vector) (int, error) {
	ctrl := a.opts.controller
	if err := ctrl.AcquireTransfer(ctx); err != nil {
		return 0, err
	}
	defer ctrl.ReleaseTransfer()

	payload, err := a.Encode(v)
	if err != nil {
		return 0, err
	}
	if err := ctrl.AcquireIO(ctx, len(payload)); err != nil {
		return 0, err
	}
	if err := a.store.Put(ctx, a.BlobName(v.ID()), payload); err != nil {
		return 0, fmt.Errorf("save vector %d: %w", v.ID(), err)
	}

	a.mu.Lock()
	a.ids.Add(v.ID())
	a.mu.Unlock()

	return len(payload), nil
}

// Load reads the vector stored under id.
// A missing blob yields an error matching blobstore.ErrNotFound.
func (a *Archive) Load(ctx context.Context, id uint32) (*featurevector.Vector, error) {
	start := time.Now()
	v, n, err := a.load(ctx, id)
	a.opts.metrics.RecordLoad(n, time.Since(start), err)
	a.opts.logger.LogLoad(ctx, id, n, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (a *Archive) load(ctx context.Context, id uint32) (*featurevector.Vector, int, error) {
	ctrl := a.opts.controller
	if err := ctrl.AcquireTransfer(ctx); err != nil {
		return nil, 0, err
	}
	defer ctrl.ReleaseTransfer()

	payload, err := a.store.Get(ctx, a.BlobName(id))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			a.mu.Lock()
			a.ids.Remove(id)
			a.mu.Unlock()
		}
		return nil, 0, fmt.Errorf("load vector %d: %w", id, err)
	}
	if err := ctrl.AcquireIO(ctx, len(payload)); err != nil {
		return nil, 0, err
	}

	v, err := Decode(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("decode vector %d: %w", id, err)
	}
	if v.ID() != id {
		return nil, 0, fmt.Errorf("decode vector %d: %w: blob holds id %d", id, featurevector.ErrMalformedInput, v.ID())
	}

	a.mu.Lock()
	a.ids.Add(id)
	a.mu.Unlock()

	return v, len(payload), nil
}

// Delete removes the blob for id. Deleting an unknown id is not an error.
func (a *Archive) Delete(ctx context.Context, id uint32) error {
	if err := a.store.Delete(ctx, a.BlobName(id)); err != nil {
		return fmt.Errorf("delete vector %d: %w", id, err)
	}

	a.mu.Lock()
	a.ids.Remove(id)
	a.mu.Unlock()
	return nil
}

// Has reports whether id is in the index.
func (a *Archive) Has(id uint32) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ids.Contains(id)
}

// Len returns the number of indexed ids.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return int(a.ids.GetCardinality())
}

// IDs returns a copy of the id index.
func (a *Archive) IDs() *roaring.Bitmap {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ids.Clone()
}

// Refresh rebuilds the id index from the store listing.
// Blobs whose names do not follow the archive layout are ignored.
func (a *Archive) Refresh(ctx context.Context) error {
	names, err := a.store.List(ctx, a.listPrefix())
	if err != nil {
		return fmt.Errorf("list vectors: %w", err)
	}

	ids := roaring.New()
	for _, name := range names {
		if id, ok := a.parseBlobName(name); ok {
			ids.Add(id)
		}
	}
	ids.RunOptimize()

	a.mu.Lock()
	a.ids = ids
	a.mu.Unlock()

	a.opts.logger.DebugContext(ctx, "archive index refreshed", "prefix", a.opts.prefix, "count", ids.GetCardinality())
	return nil
}
