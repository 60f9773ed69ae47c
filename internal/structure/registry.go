package structure

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps structure type names to behaviors.
// Registering an existing name replaces the previous behavior.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	behaviors map[string]Behavior
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{behaviors: make(map[string]Behavior)}
}

// NewDefaultRegistry creates a registry holding the built-in structure types
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for name, b := range builtins {
		r.Register(name, b)
	}
	return r
}

// Register binds name to b, overwriting any earlier registration
func (r *Registry) Register(name string, b Behavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.behaviors[name] = b
}

// Lookup returns the behavior registered under name
func (r *Registry) Lookup(name string) (Behavior, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.behaviors[name]
	if !ok {
		return Behavior{}, fmt.Errorf("%w: %q", ErrUnknownStructureType, name)
	}
	return b, nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.behaviors[name]
	return ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.behaviors))
	for name := range r.behaviors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide registry used when no registry is supplied
var Default = NewDefaultRegistry()

// Register binds name to b in the default registry
func Register(name string, b Behavior) {
	Default.Register(name, b)
}

// Lookup resolves name in the default registry
func Lookup(name string) (Behavior, error) {
	return Default.Lookup(name)
}
