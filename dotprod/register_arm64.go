//go:build arm64

package dotprod

// This file imports the arm64 kernel packages to trigger their init()
// functions, which register the variants with the global registry.

import (
	// Generic and native variants (available on every target)
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/native"

	// ARM64 variants
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/arm64/neon"
)
