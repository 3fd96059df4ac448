package generic

import (
	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// init registers the generic (pure Go) kernel with the registry.
//
// The generic kernel is the baseline fallback when no SIMD variant is
// available or when ForceGeneric is enabled for testing. It must be linked
// into every build.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:     "generic",
		Level:    cpu.SIMDNone,
		Priority: 0,
		Dot:      Dot,
	})
}
