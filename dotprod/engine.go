package dotprod

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// binding pairs a method with its kernel. Bindings are immutable; the engine
// swaps whole bindings so a reader can never observe a half-updated pair.
type binding struct {
	method Method
	dot    kernel.Func
}

// Engine owns the active kernel binding and the dispatch policy.
//
// An Engine is constructed once at startup and handed to the numeric call
// sites. The active binding is held in an atomic pointer, so re-applying a
// preference while other goroutines compute dot products is safe; each call
// simply uses whichever binding it observes.
type Engine struct {
	features cpu.Features
	reg      *kernel.Registry
	active   atomic.Pointer[binding]
	warnf    func(format string, args ...any)
	accepted []string
}

// New returns an Engine bound to the best kernel variant for the detected
// hardware (avx2 > avx > sse > neon > generic among the variants compiled
// into this binary; native is never chosen automatically).
//
// New panics only if no kernel variant is registered at all, which cannot
// happen with the generic fallback linked in.
func New(opts ...Option) *Engine {
	cfg := applyOptions(opts...)

	e := &Engine{
		reg:   cfg.Registry,
		warnf: cfg.Warnf,
	}
	if cfg.Features != nil {
		e.features = *cfg.Features
	} else {
		e.features = cpu.DetectFeatures()
	}

	best := e.reg.Best(e.features)
	if best == nil {
		panic("dotprod: no kernel registered (missing generic fallback?)")
	}
	e.active.Store(&binding{method: Method(best.Name), dot: best.Dot})

	accepted := append([]string{string(MethodAuto)}, e.reg.Names()...)
	sort.Strings(accepted)
	e.accepted = accepted

	return e
}

// DotProduct computes the dot product of u and v using the active kernel.
// Returns 0 if either slice is empty; only the minimum length of the two
// slices is used.
func (e *Engine) DotProduct(u, v []float64) float64 {
	return e.active.Load().dot(u, v)
}

// Method returns the currently bound kernel variant.
func (e *Engine) Method() Method {
	return e.active.Load().method
}

// Features returns the CPU features the engine was constructed with.
func (e *Engine) Features() cpu.Features {
	return e.features
}

// Accepted returns the preference vocabulary valid on this build target,
// sorted: "auto", "generic" and "native" plus the compiled arch variants.
func (e *Engine) Accepted() []string {
	out := make([]string, len(e.accepted))
	copy(out, e.accepted)
	return out
}

// Apply reconfigures the kernel binding from the given preference and
// returns the effective method name:
//
//   - "auto" leaves the current binding untouched and reports its name.
//   - A registered variant name binds that variant unconditionally, even if
//     the instruction set was not detected (an explicit, unchecked override),
//     and reports it.
//   - Anything else emits a two-line warning (the offending value, then the
//     accepted vocabulary), leaves the binding untouched, and reports
//     "generic".
//
// Apply never fails and may be called any number of times. It is safe
// against concurrent DotProduct calls; it is not serialized against other
// Apply calls, the last store wins.
func (e *Engine) Apply(preference string) string {
	if preference == string(MethodAuto) {
		return string(e.Method())
	}

	if entry := e.reg.ByName(preference); entry != nil {
		e.active.Store(&binding{method: Method(entry.Name), dot: entry.Dot})
		return entry.Name
	}

	e.warnf("Warning, ignoring unsupported config variable value: dotproduct=%s", preference)
	e.warnf("Supported values for dotproduct: %s.", strings.Join(e.accepted, " "))
	return string(MethodGeneric)
}

// ApplyVar reads the "dotproduct" preference from store, applies it, and
// writes the effective method back so the stored value reflects the
// resolved, concrete choice. An "auto" preference is sticky: nothing is
// written back and the hardware-driven binding stays in place. An empty
// value is treated as "auto".
//
// Note the long-standing decoupling on invalid input: the binding is left
// untouched while the stored value still becomes "generic".
func (e *Engine) ApplyVar(store Store) string {
	preference := store.Get(ParamName)
	if preference == "" {
		preference = string(MethodAuto)
	}

	effective := e.Apply(preference)
	if preference != string(MethodAuto) {
		store.Set(ParamName, effective)
	}
	return effective
}
