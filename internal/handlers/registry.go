package handlers

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered routes keyed by method and pattern.
type Registry struct {
	mu     sync.RWMutex
	routes map[string]Route
	names  map[string]bool
}

// NewRegistry creates an empty route registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string]Route),
		names:  make(map[string]bool),
	}
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// Register adds a route to the registry.
// Returns an error if the method and pattern, or the name, are already taken.
func (r *Registry) Register(rt Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := routeKey(rt.Method(), rt.Pattern())
	if _, exists := r.routes[key]; exists {
		return fmt.Errorf("route already registered: %s", key)
	}
	if r.names[rt.Name()] {
		return fmt.Errorf("route name already registered: %s", rt.Name())
	}

	r.routes[key] = rt
	r.names[rt.Name()] = true
	return nil
}

// All returns all routes sorted by pattern, then method.
func (r *Registry) All() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Route, 0, len(r.routes))
	for _, rt := range r.routes {
		result = append(result, rt)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Pattern() != result[j].Pattern() {
			return result[i].Pattern() < result[j].Pattern()
		}
		return result[i].Method() < result[j].Method()
	})
	return result
}

// DefaultRegistry is the global routing table.
var DefaultRegistry = NewRegistry()

// Register adds a route to the default registry.
func Register(rt Route) {
	if err := DefaultRegistry.Register(rt); err != nil {
		panic(err)
	}
}
