package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/toolgraphgo/internal/traverse"
)

// Registry holds all the visitors registered for a single application
// instance.
type Registry struct {
	visitors map[string]traverse.Visitor
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		visitors: make(map[string]traverse.Visitor),
	}
}

// Register adds a visitor to the registry, keyed by its name.
func (r *Registry) Register(v traverse.Visitor) {
	name := v.Name()
	if name == "" {
		panic("visitor with empty name cannot be registered")
	}
	if _, exists := r.visitors[name]; exists {
		panic(fmt.Sprintf("visitor with name '%s' already registered", name))
	}
	slog.Debug("Registering visitor.", "name", name)
	r.visitors[name] = v
}

// Lookup returns the visitor registered under the given name.
func (r *Registry) Lookup(name string) (traverse.Visitor, bool) {
	v, ok := r.visitors[name]
	return v, ok
}

// Visitors returns all registered visitors, sorted by name so that traversal
// output is deterministic.
func (r *Registry) Visitors() []traverse.Visitor {
	names := make([]string, 0, len(r.visitors))
	for name := range r.visitors {
		names = append(names, name)
	}
	sort.Strings(names)

	visitors := make([]traverse.Visitor, 0, len(names))
	for _, name := range names {
		visitors = append(visitors, r.visitors[name])
	}
	return visitors
}
