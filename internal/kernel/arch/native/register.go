package native

import (
	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// init registers the native kernel with the registry.
//
// ManualOnly keeps it out of hardware-driven selection: "native" is an
// explicit user choice, not a detected capability.
func init() {
	kernel.Global.Register(kernel.Entry{
		Name:       "native",
		Level:      cpu.SIMDNone,
		Priority:   -1,
		ManualOnly: true,
		Dot:        Dot,
	})
}
