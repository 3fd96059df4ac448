//go:build !amd64 && !386 && !arm64

package dotprod

// This file imports the portable kernel packages for targets without a
// dedicated arch variant. The sse/avx vocabulary is not accepted here.

import (
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-dotprod/internal/kernel/arch/native"
)
