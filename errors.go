package hermes

import (
	"github.com/hupe1980/hermes/blobstore"
	"github.com/hupe1980/hermes/codec"
	"github.com/hupe1980/hermes/distance"
	"github.com/hupe1980/hermes/featurevector"
)

// Sentinel errors of the sub-packages, re-exported for callers that only
// import hermes. Match them with errors.Is.
var (
	// ErrLengthMismatch indicates two vectors of different length were compared.
	ErrLengthMismatch = distance.ErrLengthMismatch
	// ErrUnsupportedMetric indicates a reserved or unknown metric code.
	ErrUnsupportedMetric = distance.ErrUnsupportedMetric
	// ErrMalformedInput indicates a serialized vector shorter than its layout.
	ErrMalformedInput = featurevector.ErrMalformedInput
	// ErrOutOfRange indicates element access outside a vector.
	ErrOutOfRange = featurevector.ErrOutOfRange
	// ErrDuplicateID indicates a second vector with an id already in a list.
	ErrDuplicateID = featurevector.ErrDuplicateID
	// ErrInvalidEncoding indicates malformed base64 or hex text.
	ErrInvalidEncoding = codec.ErrInvalidEncoding
	// ErrNotFound indicates a missing blob.
	ErrNotFound = blobstore.ErrNotFound
)

// ErrDimensionMismatch is the detailed form of ErrLengthMismatch.
type ErrDimensionMismatch = distance.ErrDimensionMismatch

// ErrInvalidMetric is the detailed form of ErrUnsupportedMetric.
type ErrInvalidMetric = distance.ErrInvalidMetric
