//go:build !amd64 && !386 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for architectures without a known
// detection strategy.
//
// Returns a Features struct with all vector flags set to false, indicating
// only the generic (non-SIMD) kernel should be used. This is not an error
// condition.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
