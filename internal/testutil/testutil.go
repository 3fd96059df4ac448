// Package testutil provides shared helpers for kernel parity tests.
package testutil

import (
	"math"
	"testing"
)

// TrigVectors returns two deterministic length-n vectors with mixed-sign,
// non-trivial values. The same n always yields the same vectors.
func TrigVectors(n int) (u, v []float64) {
	u = make([]float64, n)
	v = make([]float64, n)
	for i := range u {
		u[i] = math.Sin(float64(i) * 0.1)
		v[i] = math.Cos(float64(i) * 0.17)
	}
	return u, v
}

// RefDot is the reference dot product: a single accumulator in strict index
// order over the common prefix of u and v.
func RefDot(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += u[i] * v[i]
	}
	return sum
}

// RequireNear fails t if got and want differ by more than relEps relative
// tolerance (absolute below magnitude 1).
func RequireNear(t *testing.T, got, want, relEps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if diff > relEps*math.Max(1, math.Abs(want)) {
		t.Fatalf("got %v, want %v (diff %v > %v)", got, want, diff, relEps)
	}
}
