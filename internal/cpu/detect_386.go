//go:build 386

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	xcpu "golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on 386 systems.
//
// golang.org/x/sys/cpu exposes the same CPUID flags for 32-bit x86 builds
// as for amd64, so the full x86 vocabulary is meaningful here too.
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
