// Package conv provides checked integer conversions for the feature vector
// wire format.
//
// The serialized header stores the element count as a uint32 while Go
// slices are indexed with int. These helpers guard the boundary in both
// directions:
//   - lengths and indices going into a header (IntToUint32)
//   - counts read from untrusted bytes (Uint32ToInt)
package conv
