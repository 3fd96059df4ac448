//go:build amd64

package dotprod

import (
	"math"
	"testing"
)

// These tests run against the real global registry, so the full x86
// variant set is present regardless of what the host CPU supports:
// explicit overrides are unchecked and the kernels are plain Go.

func TestAcceptedVocabularyAMD64(t *testing.T) {
	e := New(WithWarnf(discardWarnf))

	want := []string{"auto", "avx", "avx2", "generic", "native", "sse"}
	got := e.Accepted()
	if len(got) != len(want) {
		t.Fatalf("Accepted() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Accepted() = %v, want %v", got, want)
		}
	}
}

func TestVariantParityAMD64(t *testing.T) {
	e := New(WithWarnf(discardWarnf))

	u := make([]float64, 1025)
	v := make([]float64, 1025)
	for i := range u {
		u[i] = math.Sin(float64(i) * 0.1)
		v[i] = math.Cos(float64(i) * 0.17)
	}

	e.Apply("generic")
	want := e.DotProduct(u, v)

	for _, method := range []string{"sse", "avx", "avx2", "native"} {
		if got := e.Apply(method); got != method {
			t.Fatalf("Apply(%s) = %q", method, got)
		}
		got := e.DotProduct(u, v)
		if diff := math.Abs(got - want); diff > 1e-12*math.Max(1, math.Abs(want)) {
			t.Fatalf("%s kernel = %v, generic = %v (diff %v)", method, got, want, diff)
		}
	}
}

func TestInitialBindingMatchesHardwareAMD64(t *testing.T) {
	e := New()

	f := e.Features()
	var want Method
	switch {
	case f.HasAVX2:
		want = MethodAVX2
	case f.HasAVX:
		want = MethodAVX
	case f.HasSSE41:
		want = MethodSSE
	default:
		want = MethodGeneric
	}

	if e.Method() != want {
		t.Fatalf("initial binding = %q, want %q for features %+v", e.Method(), want, f)
	}
}
