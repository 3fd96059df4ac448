//go:build arm64

package neon

import (
	"testing"

	"github.com/cwbudde/algo-dotprod/internal/testutil"
)

func TestDotParity(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 31, 32, 33, 100, 1023, 1024, 1025}
	for _, n := range sizes {
		u, v := testutil.TrigVectors(n)
		testutil.RequireNear(t, Dot(u, v), testutil.RefDot(u, v), 1e-12)
	}
}

func TestDotSimple(t *testing.T) {
	if got := Dot([]float64{1, 2, 3}, []float64{4, 5, 6}); got != 32 {
		t.Fatalf("Dot() = %v, want 32", got)
	}
}
