package kernel

import (
	"testing"

	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

func dummyDot(u, v []float64) float64 { return 0 }

func testRegistry() *Registry {
	reg := &Registry{}
	reg.Register(Entry{Name: "generic", Level: cpu.SIMDNone, Priority: 0, Dot: dummyDot})
	reg.Register(Entry{Name: "native", Level: cpu.SIMDNone, Priority: -1, ManualOnly: true, Dot: dummyDot})
	reg.Register(Entry{Name: "sse", Level: cpu.SIMDSSE, Priority: 10, Dot: dummyDot})
	reg.Register(Entry{Name: "avx", Level: cpu.SIMDAVX, Priority: 15, Dot: dummyDot})
	reg.Register(Entry{Name: "avx2", Level: cpu.SIMDAVX2, Priority: 20, Dot: dummyDot})
	return reg
}

func TestBestPriority(t *testing.T) {
	reg := testRegistry()

	cases := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"nothing detected", cpu.Features{}, "generic"},
		{"sse only", cpu.Features{HasSSE41: true}, "sse"},
		{"avx", cpu.Features{HasSSE41: true, HasAVX: true}, "avx"},
		{"avx2 wins", cpu.Features{HasSSE41: true, HasAVX: true, HasAVX2: true}, "avx2"},
		{"force generic", cpu.Features{HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := reg.Best(tc.features)
			if entry == nil {
				t.Fatal("Best() = nil")
			}
			if entry.Name != tc.want {
				t.Fatalf("Best() = %q, want %q", entry.Name, tc.want)
			}
		})
	}
}

func TestBestSkipsManualOnly(t *testing.T) {
	reg := &Registry{}
	reg.Register(Entry{Name: "native", Level: cpu.SIMDNone, Priority: 50, ManualOnly: true, Dot: dummyDot})
	reg.Register(Entry{Name: "generic", Level: cpu.SIMDNone, Priority: 0, Dot: dummyDot})

	entry := reg.Best(cpu.Features{})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("Best() picked %v, want generic (manual-only must be skipped)", entry)
	}
}

func TestBestEmptyRegistry(t *testing.T) {
	reg := &Registry{}
	if entry := reg.Best(cpu.Features{}); entry != nil {
		t.Fatalf("Best() on empty registry = %v, want nil", entry)
	}
}

func TestByName(t *testing.T) {
	reg := testRegistry()

	// Explicit lookup ignores availability: avx2 resolves even though the
	// feature set is empty.
	entry := reg.ByName("avx2")
	if entry == nil || entry.Name != "avx2" {
		t.Fatalf("ByName(avx2) = %v", entry)
	}

	if entry := reg.ByName("mmx"); entry != nil {
		t.Fatalf("ByName(mmx) = %v, want nil", entry)
	}
}

func TestNamesSorted(t *testing.T) {
	reg := testRegistry()

	names := reg.Names()
	want := []string{"avx", "avx2", "generic", "native", "sse"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestReset(t *testing.T) {
	reg := testRegistry()
	reg.Reset()
	if len(reg.ListEntries()) != 0 {
		t.Fatal("Reset() left entries behind")
	}
}

func TestListEntriesSorted(t *testing.T) {
	reg := testRegistry()
	entries := reg.ListEntries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Priority < entries[i].Priority {
			t.Fatalf("ListEntries() not sorted by priority: %v before %v",
				entries[i-1].Name, entries[i].Name)
		}
	}
}
