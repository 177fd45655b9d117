// Package archive persists feature vectors in a blobstore.Store.
//
// Every vector is stored as its own blob named "<prefix>/<id>.fv". The blob
// payload is the vector's binary serialization wrapped in a codec compression
// frame, so archives written with different compression settings stay
// readable. An in-memory Roaring bitmap tracks the ids known to the archive;
// Refresh rebuilds it from a store listing.
//
//	arc := archive.New(blobstore.NewLocalStore("/var/lib/hermes"),
//	    archive.WithCompression(codec.CompressionZSTD),
//	)
//	if err := arc.Save(ctx, v); err != nil {
//	    return err
//	}
//	v, err := arc.Load(ctx, 42)
//
// An Archive is safe for concurrent use. Vectors passed to Save and SaveAll
// must not be mutated until the call returns.
package archive
