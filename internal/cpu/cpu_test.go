package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	first := DetectFeatures()
	second := DetectFeatures()
	if first != second {
		t.Fatalf("detection not stable: %+v vs %+v", first, second)
	}
}

func TestAVXGate(t *testing.T) {
	// AVX2/AVX512 flags are meaningless without AVX and must never be
	// observable without it, even when forced.
	SetForcedFeatures(Features{
		HasAVX2:      true,
		HasAVX512F:   true,
		HasAVX512BW:  true,
		Architecture: "amd64",
	})
	defer ResetDetection()

	f := DetectFeatures()
	if f.HasAVX2 || f.HasAVX512F || f.HasAVX512BW {
		t.Fatalf("leaf-7 flags reported without AVX: %+v", f)
	}
}

func TestAVXGateKeepsGatedFlags(t *testing.T) {
	SetForcedFeatures(Features{
		HasAVX:       true,
		HasAVX2:      true,
		HasAVX512F:   true,
		Architecture: "amd64",
	})
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasAVX2 || !f.HasAVX512F {
		t.Fatalf("leaf-7 flags dropped despite AVX: %+v", f)
	}
}

func TestDetectedFeaturesRespectGate(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasAVX && (f.HasAVX2 || f.HasAVX512F || f.HasAVX512BW) {
		t.Fatalf("detected leaf-7 flags without AVX: %+v", f)
	}
}

func TestSetForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasSSE41: true, Architecture: "amd64"})
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasSSE41 || f.HasAVX {
		t.Fatalf("forced features not returned: %+v", f)
	}
}

func TestSupports(t *testing.T) {
	full := Features{
		HasSSE41:    true,
		HasAVX:      true,
		HasAVX2:     true,
		HasAVX512F:  true,
		HasAVX512BW: true,
		HasNEON:     true,
	}
	forcedGeneric := full
	forcedGeneric.ForceGeneric = true

	cases := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always supported", Features{}, SIMDNone, true},
		{"sse without flag", Features{}, SIMDSSE, false},
		{"sse with flag", Features{HasSSE41: true}, SIMDSSE, true},
		{"avx with flag", Features{HasAVX: true}, SIMDAVX, true},
		{"avx2 needs flag", Features{HasAVX: true}, SIMDAVX2, false},
		{"avx512 needs both f and bw", Features{HasAVX: true, HasAVX512F: true}, SIMDAVX512, false},
		{"avx512 full", full, SIMDAVX512, true},
		{"neon", Features{HasNEON: true}, SIMDNEON, true},
		{"force generic blocks simd", forcedGeneric, SIMDAVX2, false},
		{"force generic allows none", Features{ForceGeneric: true}, SIMDNone, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Supports(tc.features, tc.level); got != tc.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tc.features, tc.level, got, tc.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	cases := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "generic"},
		{SIMDSSE, "sse"},
		{SIMDAVX, "avx"},
		{SIMDAVX2, "avx2"},
		{SIMDAVX512, "avx512"},
		{SIMDNEON, "neon"},
		{SIMDLevel(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", tc.level, got, tc.want)
		}
	}
}
