package solver

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a solver from options
type Factory func(opts Options) Solver

// Registry maps strategy names to factories.
// Registering an existing name replaces the previous factory.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry creates a registry with the built-in strategies
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	mc := func(opts Options) Solver { return NewMonteCarlo(opts) }
	regular := func(opts Options) Solver { return NewRegular(opts) }
	r.Register("mc", mc)
	r.Register("montecarlo", mc)
	r.Register("regular", regular)
	r.Register("grid", regular)
	return r
}

// Register binds name to f, overwriting any earlier registration
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// New builds the strategy registered under name.
// It never falls back to a default strategy.
func (r *Registry) New(name string, opts Options) (Solver, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return f(opts), nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide strategy registry
var Default = NewDefaultRegistry()

// Register binds name to f in the default registry
func Register(name string, f Factory) {
	Default.Register(name, f)
}

// New builds a strategy from the default registry
func New(name string, opts Options) (Solver, error) {
	return Default.New(name, opts)
}
