// Package blobstore provides the storage abstraction behind the vector archive.
//
// A Store holds named, immutable byte blobs. Names are slash-separated paths
// relative to the store root (e.g. "vectors/42.fv"). Implementations must be
// safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and ephemeral use
//   - LocalStore: local filesystem with atomic writes
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3 with multipart uploads and paginated listing
//
// # Custom Implementations
//
//	type Store interface {
//	    Put(ctx, name, data) error
//	    Get(ctx, name) ([]byte, error)
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Get must return an error satisfying errors.Is(err, ErrNotFound) for missing
// blobs. Delete of a missing blob is not an error.
package blobstore
