//go:build amd64 || 386

package avx

import (
	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// init registers the AVX kernel with the registry.
//
// Priority: 15 (above sse, below avx2)
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:     "avx",
		Level:    cpu.SIMDAVX,
		Priority: 15,
		Dot:      Dot,
	})
}
