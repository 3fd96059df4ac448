// Package native provides the externally optimized kernel variant.
//
// Unlike the arch variants, native does not correspond to a detected
// instruction set: it delegates to the viterin/vek vectorized math library,
// which carries its own acceleration strategy. It is registered on every
// architecture but selected only by explicit preference, never by hardware
// autodetection.
package native

import (
	"github.com/viterin/vek"
)

// Dot returns the dot product of u and v using the vek library.
// Returns 0 if slices are empty. Only the minimum length of the two
// slices is used.
func Dot(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	if n == 0 {
		return 0
	}
	return vek.Dot(u[:n], v[:n])
}
