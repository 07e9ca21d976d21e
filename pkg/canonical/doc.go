// Package canonical produces a deterministic JSON encoding suitable as MAC
// input.
//
// Object keys are sorted lexicographically (by UTF-16 code units, matching
// JavaScript's default sort, which is byte order for the ASCII keys used in
// practice). Values that cannot be represented in JSON (Undefined, funcs,
// channels, complex numbers) are omitted from objects and written as null
// inside arrays. NaN and infinite floats are rejected with ErrNonFinite.
//
// Structs, time.Time and other json.Marshaler values are first rendered
// with encoding/json and then canonicalised, so two values that marshal to
// equivalent JSON always canonicalise to identical bytes regardless of field
// or map insertion order.
//
//	a, _ := canonical.String(map[string]any{"a": 1, "b": 2})
//	b, _ := canonical.String(map[string]any{"b": 2, "a": 1})
//	// a == b == `{"a":1,"b":2}`
package canonical
