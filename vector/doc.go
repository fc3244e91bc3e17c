// Package vector provides Vector, a fixed-dimension tuple of float64 values,
// together with the usual arithmetic and geometric operations.
//
// What is a Vector?
//
//	An ordered, zero-origin sequence of n real numbers. The length is fixed
//	at construction; every binary operation (except scalar multiply) requires
//	operands of the same length and reports ErrDimensionMismatch otherwise.
//
// Key features:
//   - Value semantics: constructors copy their input, Clone deep-copies,
//     Values returns a copy. Two vectors never share storage.
//   - Safe indexing: At/Set return ErrOutOfRange instead of panicking.
//   - Geometry: Dot, Cross (3-D only), Magnitude, Angle (radians).
//   - Stable rendering: String prints "( a, b, c )".
//
// Usage:
//
//	u := vector.Of(1, 0, 0)
//	v := vector.Of(0, 1, 0)
//	w, err := vector.Cross(u, v) // ( 0, 0, 1 )
//
// Complexity:
//   - At/Set/Len: O(1); every other operation: O(n).
package vector
