package dotprod

import (
	"log"

	"github.com/cwbudde/algo-dotprod/internal/cpu"
	"github.com/cwbudde/algo-dotprod/internal/kernel"
)

// EngineConfig defines configuration for an Engine.
type EngineConfig struct {
	// Features overrides hardware detection when non-nil.
	Features *cpu.Features

	// Registry is the kernel variant registry to dispatch over.
	Registry *kernel.Registry

	// Warnf receives the diagnostic lines emitted on rejected preferences.
	Warnf func(format string, args ...any)
}

// Option mutates an EngineConfig.
type Option func(*EngineConfig)

// DefaultEngineConfig returns sensible defaults: detected hardware, the
// global kernel registry, and warnings through the standard logger.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Registry: kernel.Global,
		Warnf:    log.Printf,
	}
}

// WithFeatures forces the given CPU features instead of detecting hardware.
// Intended for tests and for pinning behavior across heterogeneous fleets.
func WithFeatures(f cpu.Features) Option {
	return func(cfg *EngineConfig) {
		forced := f
		cfg.Features = &forced
	}
}

// WithWarnf routes rejection diagnostics to the given printf-style sink.
func WithWarnf(warnf func(format string, args ...any)) Option {
	return func(cfg *EngineConfig) {
		if warnf != nil {
			cfg.Warnf = warnf
		}
	}
}

// WithRegistry dispatches over a custom kernel registry instead of the
// global one. Intended for tests.
func WithRegistry(reg *kernel.Registry) Option {
	return func(cfg *EngineConfig) {
		if reg != nil {
			cfg.Registry = reg
		}
	}
}

// applyOptions applies zero or more options to the default config.
func applyOptions(opts ...Option) EngineConfig {
	cfg := DefaultEngineConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
