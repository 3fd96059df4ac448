// Package kernel provides the variant registry for dot-product kernels.
//
// The registry-based dispatch system allows a closed set of kernel variants
// (generic, native, sse, avx, avx2, neon) to coexist. Architecture-specific
// variants register themselves via init() functions in build-tagged arch
// packages; the dotprod package uses the registry to select a variant either
// automatically from detected CPU features or explicitly by name.
//
// Because the set of registered variants is exactly the set compiled into the
// binary, the registry doubles as the accepted-vocabulary oracle: a variant
// name that cannot be looked up is not a valid preference on this target.
package kernel

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

// Func computes the dot product of u and v: sum(u[i] * v[i]).
//
// Implementations are deterministic, but different variants accumulate in
// different orders, so results agree across variants only to floating-point
// rounding. Only the minimum length of the two slices is used.
type Func func(u, v []float64) float64

// Entry represents a registered kernel variant.
type Entry struct {
	// Name identifies this variant ("generic", "avx", ...). It is also the
	// preference string that selects the variant explicitly.
	Name string

	// Level indicates the SIMD instruction set this variant is tuned for.
	Level cpu.SIMDLevel

	// Priority determines selection order during automatic (hardware-driven)
	// selection. Higher priority variants are preferred. Suggested priorities:
	//   - generic: 0
	//   - sse: 10
	//   - avx / neon: 15
	//   - avx2: 20
	Priority int

	// ManualOnly excludes this variant from automatic selection. It remains
	// reachable by name. Used for the native variant, which is an explicit
	// opt-in rather than a detected capability.
	ManualOnly bool

	// Dot is the kernel itself.
	Dot Func
}

// Registry manages the registration and lookup of kernel variants.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the dotprod package.
var Global = &Registry{}

// Register adds a kernel variant to the registry.
//
// This function is typically called from init() functions in build-tagged
// arch packages. It is safe to call concurrently, but all registrations
// should complete before the first lookup.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Best finds the highest-priority variant compatible with the given CPU
// features, skipping manual-only variants.
//
// Returns nil only if no compatible variant is registered, which cannot
// happen as long as the generic fallback is linked in.
func (r *Registry) Best(features cpu.Features) *Entry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.ManualOnly {
			continue
		}
		if cpu.Supports(features, entry.Level) {
			return entry
		}
	}

	return nil
}

// ByName returns the variant registered under name, or nil if no such
// variant was compiled into this binary.
//
// Availability of the underlying instruction set is deliberately not
// checked here: an explicit preference is an unchecked override.
func (r *Registry) ByName(name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// Names returns the sorted names of all registered variants.
// This is the target-dependent part of the accepted preference vocabulary.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for i := range r.entries {
		names = append(names, r.entries[i].Name)
	}
	sort.Strings(names)
	return names
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *Registry) ListEntries() []Entry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// sort orders entries by priority (descending) if not already done.
func (r *Registry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	// Simple insertion sort (registry is small, ~3-6 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
