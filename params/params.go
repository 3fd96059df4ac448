// Package params implements a registry of named string configuration
// variables with defaults, environment overrides, and YAML file loading.
//
// Variables are declared once with a default and a description, then read
// and written by name. The dotprod policy both reads its "dotproduct"
// variable from a registry and writes the resolved kernel name back, so the
// effective choice stays observable in the store.
//
// Value precedence (highest to lowest):
//  1. Explicit Set calls (including the policy's write-back)
//  2. Environment variables (ApplyEnv)
//  3. Config file (LoadFile)
//  4. Declared defaults
package params

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Info describes a declared variable for listing and debugging.
type Info struct {
	Name        string
	Value       string
	Default     string
	Description string
}

// Registry holds a set of named string variables. The zero value is not
// usable; construct with New. All methods are safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	vars map[string]*variable
}

type variable struct {
	value       string
	def         string
	description string
}

// New returns an empty variable registry.
func New() *Registry {
	return &Registry{vars: make(map[string]*variable)}
}

// String declares a string variable with a default value and description
// and returns its initial value. Re-declaring an existing variable keeps
// its current value and only refreshes the description.
func (r *Registry) String(name, def, description string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.vars[name]; ok {
		v.description = description
		return v.value
	}
	r.vars[name] = &variable{value: def, def: def, description: description}
	return def
}

// Get returns the current value of the named variable, or "" if the
// variable was never declared.
func (r *Registry) Get(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.vars[name]; ok {
		return v.value
	}
	return ""
}

// Set records a new value for the named variable. Setting an undeclared
// variable is a no-op: the store only persists what was declared.
func (r *Registry) Set(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.vars[name]; ok {
		v.value = value
	}
}

// List returns all declared variables sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.vars))
	for name, v := range r.vars {
		out = append(out, Info{
			Name:        name,
			Value:       v.value,
			Default:     v.def,
			Description: v.description,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ApplyEnv overrides declared variables from environment variables of the
// form PREFIX_NAME (name upper-cased). Unset environment variables leave
// the current values in place.
func (r *Registry) ApplyEnv(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, v := range r.vars {
		key := prefix + "_" + strings.ToUpper(name)
		if val, ok := os.LookupEnv(key); ok {
			v.value = val
		}
	}
}

// LoadFile reads a flat YAML mapping of variable names to string values and
// applies it to the registry. A key that does not correspond to a declared
// variable is a configuration error.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("params: read %s: %w", path, err)
	}
	return r.load(data, path)
}

func (r *Registry) load(data []byte, origin string) error {
	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("params: parse %s: %w", origin, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for name, value := range values {
		v, ok := r.vars[name]
		if !ok {
			return fmt.Errorf("params: %s: unknown variable %q", origin, name)
		}
		v.value = value
	}
	return nil
}
