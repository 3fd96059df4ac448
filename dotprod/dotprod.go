// Package dotprod selects and dispatches the dot-product kernel used for
// computing sum(u[i] * v[i]) over two float64 vectors.
//
// At construction an Engine detects the vector instruction sets available on
// the current processor and binds the fastest compatible kernel variant. The
// binding can later be overridden through the "dotproduct" preference, whose
// accepted vocabulary depends on the build target: "auto", "generic" and
// "native" everywhere, plus the names of the arch variants compiled into the
// binary ("sse", "avx", "avx2" on x86; "neon" on arm64).
//
// Exactly one kernel is bound per engine at any instant. Because the order
// of addition differs among the kernel variants, results can (and do) vary
// slightly across variants, although they agree to floating-point rounding.
// To get bit-identical results across runs, pin a single variant via the
// preference instead of relying on autodetection.
package dotprod

import (
	"sync"
)

// Method identifies a dot-product kernel variant, or the automatic choice.
// The non-auto values coincide with the registered kernel names and with the
// preference vocabulary.
type Method string

const (
	// MethodAuto leaves the hardware-driven binding in place.
	MethodAuto Method = "auto"

	// MethodGeneric is the portable scalar kernel.
	MethodGeneric Method = "generic"

	// MethodNative is the externally optimized kernel (viterin/vek).
	MethodNative Method = "native"

	// MethodSSE is the SSE-width kernel (x86 builds only).
	MethodSSE Method = "sse"

	// MethodAVX is the AVX-width kernel (x86 builds only).
	MethodAVX Method = "avx"

	// MethodAVX2 is the AVX2-width kernel (x86 builds only).
	MethodAVX2 Method = "avx2"

	// MethodNEON is the NEON-width kernel (arm64 builds only).
	MethodNEON Method = "neon"
)

// String returns the method name as used in the preference vocabulary.
func (m Method) String() string {
	return string(m)
}

// ParamName is the name of the configuration variable holding the kernel
// preference.
const ParamName = "dotproduct"

// Store is the external configuration store the policy reads the preference
// from and writes the resolved method back to.
type Store interface {
	// Get returns the current value of the named variable, or "" if the
	// variable is unknown.
	Get(name string) string

	// Set records a new value for the named variable.
	Set(name, value string)
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the process-wide engine, constructing it on first use from
// detected hardware.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// DotProduct computes the dot product of u and v using the default engine's
// active kernel.
func DotProduct(u, v []float64) float64 {
	return Default().DotProduct(u, v)
}

// Apply reconfigures the default engine's kernel binding from the given
// preference. See Engine.Apply for the exact semantics.
func Apply(preference string) string {
	return Default().Apply(preference)
}
