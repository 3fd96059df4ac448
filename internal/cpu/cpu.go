// Package cpu provides CPU feature detection for dot-product kernel selection.
//
// This package detects the vector instruction set extensions (SSE4.1, AVX,
// AVX2, AVX-512, NEON) available on the current processor and caches the
// results for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
// Absence of a feature, or of a detection strategy for the build target, is a
// normal state: all flags simply stay false and the generic kernel is used.
package cpu

import (
	"sync"
)

// SIMDLevel represents the minimum instruction set extension required by a
// kernel variant. Levels are not strictly comparable across architectures
// (e.g. AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE indicates x86 SSE4.1.
	SIMDSSE

	// SIMDAVX indicates x86 AVX (Advanced Vector Extensions).
	SIMDAVX

	// SIMDAVX2 indicates x86 AVX2 (256-bit integer and FP operations).
	SIMDAVX2

	// SIMDAVX512 indicates x86 AVX-512 (foundation plus byte/word).
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE:
		return "sse"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
//
// The flags default to false and are set only when the extension is
// positively confirmed. AVX2 and AVX-512 flags are reported only when AVX
// itself is present: the leaf-7 bits are meaningless without the leaf-1 AVX
// bit, and keeping the gate here means no consumer can observe an AVX2-only
// feature set.
type Features struct {
	// x86 vector features
	HasSSE41    bool // SSE4.1 (CPUID leaf 1, ECX bit 19)
	HasAVX      bool // AVX (CPUID leaf 1, ECX bit 28)
	HasAVX2     bool // AVX2 (CPUID leaf 7/0, EBX bit 5), gated behind AVX
	HasAVX512F  bool // AVX-512 foundation (leaf 7/0, EBX bit 16), gated behind AVX
	HasAVX512BW bool // AVX-512 byte/word (leaf 7/0, EBX bit 30), gated behind AVX

	// ARM vector features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD kernels (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
	Vendor       string // processor vendor string, if known (e.g., "GenuineIntel")
	Brand        string // processor brand name, if known
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent
// calls. This function is thread-safe and can be called concurrently from
// multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = gate(detectFeaturesImpl())
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// gate enforces the AVX prerequisite on the leaf-7 flags.
func gate(f Features) Features {
	if !f.HasAVX {
		f.HasAVX2 = false
		f.HasAVX512F = false
		f.HasAVX512BW = false
	}
	return f
}

// HasAVX returns true if the CPU supports AVX instructions.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// HasSSE41 returns true if the CPU supports SSE4.1 instructions.
func HasSSE41() bool {
	return DetectFeatures().HasSSE41
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified
// features. This is intended for testing purposes only. The leaf-7 gate is
// applied to the forced value as well, so a forced feature set cannot violate
// the AVX prerequisite.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := gate(f)
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD
// level. This function is used by the kernel registry to determine variant
// compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE:
		return features.HasSSE41
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512F && features.HasAVX512BW
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
