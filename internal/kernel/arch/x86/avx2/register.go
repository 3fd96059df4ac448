//go:build amd64 || 386

package avx2

import (
	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// init registers the AVX2 kernel with the registry.
//
// Priority: 20 (highest - preferred during hardware autodetection)
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:     "avx2",
		Level:    cpu.SIMDAVX2,
		Priority: 20,
		Dot:      Dot,
	})
}
