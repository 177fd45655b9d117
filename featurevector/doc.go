// Package featurevector implements the identified feature vector used as the
// unit of similarity search.
//
// A Vector holds a caller-assigned uint32 id and an ordered sequence of
// float64 coordinates. Its serialized form is a fixed layout in host byte
// order:
//
//	+-----------+--------------+-----------------------+
//	| id uint32 | count uint32 | count x float64 ...   |
//	+-----------+--------------+-----------------------+
//
// The layout is intended for local, same-architecture use (BLOB columns, page
// payloads, in-process caches). It is not a portable wire format.
//
// # Usage
//
//	v := featurevector.New(7, []float64{1, 2})
//	buf := v.Serialize()          // 24 bytes
//	tok := v.MarshalBase64()      // text token
//
//	var w featurevector.Vector
//	_ = w.Deserialize(buf, 0)
package featurevector
