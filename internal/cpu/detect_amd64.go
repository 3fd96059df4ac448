//go:build amd64

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	xcpu "golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Feature flags come from golang.org/x/sys/cpu, which reads CPUID leaf 1 for
// the SSE4.1/AVX bits and leaf 7 sub-leaf 0 for the AVX2/AVX-512 bits, and
// additionally checks OS support for the wider register state (XSAVE). The
// vendor and brand strings come from klauspost/cpuid.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE41:     xcpu.X86.HasSSE41,
		HasAVX:       xcpu.X86.HasAVX,
		HasAVX2:      xcpu.X86.HasAVX2,
		HasAVX512F:   xcpu.X86.HasAVX512F,
		HasAVX512BW:  xcpu.X86.HasAVX512BW,
		Architecture: runtime.GOARCH,
		Vendor:       cpuid.CPU.VendorString,
		Brand:        cpuid.CPU.BrandName,
	}
}
