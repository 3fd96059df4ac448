//go:build arm64

package neon

import (
	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// init registers the NEON kernel with the registry.
//
// Priority: 15 (same tier as avx on x86)
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:     "neon",
		Level:    cpu.SIMDNEON,
		Priority: 15,
		Dot:      Dot,
	})
}
