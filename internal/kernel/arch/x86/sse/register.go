//go:build amd64 || 386

package sse

import (
	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// init registers the SSE kernel with the registry.
//
// Priority: 10 (above generic, below avx/avx2)
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:     "sse",
		Level:    cpu.SIMDSSE,
		Priority: 10,
		Dot:      Dot,
	})
}
