//go:build amd64 || 386

package dotprod

// This file imports the x86 kernel packages to trigger their init()
// functions, which register the variants with the global registry.

import (
	// Generic and native variants (available on every target)
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/native"

	// x86 variants
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/x86/avx"
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/x86/avx2"
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/x86/sse"
)
