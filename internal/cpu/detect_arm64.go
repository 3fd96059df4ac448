//go:build arm64

package cpu

import (
	"runtime"

	xcpu "golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// On ARMv8 (arm64), NEON (Advanced SIMD) is mandatory, so HasNEON should
// always be true. The x86 flags stay false; the avx/sse preference
// vocabulary is not available on this target.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      xcpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
