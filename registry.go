package jndi

import (
	"log/slog"
	"sort"
	"sync"
)

// RegistryStats contains registry usage statistics
type RegistryStats struct {
	Binds        int64 `json:"binds"`
	Rebinds      int64 `json:"rebinds"`
	Unbinds      int64 `json:"unbinds"`
	Lookups      int64 `json:"lookups"`
	Hits         int64 `json:"hits"`
	Misses       int64 `json:"misses"`
	Rejected     int64 `json:"rejected"`
	TotalEntries int   `json:"total_entries"`
}

// Registry is an in-memory stand-in for a JNDI naming context. Test code
// binds objects under synthetic paths ("java:comp/env/jdbc/myDS") and looks
// them up the way application code would against a real container.
//
// Bindings survive Deactivate; only reachability through Lookup changes.
// The registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]any
	active   bool
	stats    RegistryStats
	logger   *slog.Logger
}

// NewRegistry creates an empty, activated registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]any),
		active:   true,
		logger:   slog.Default(),
	}
}

// Bind binds value under name. A later bind for the same name replaces the
// earlier one; there is no conflict detection.
func (r *Registry) Bind(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[name]; exists {
		r.stats.Rebinds++
	}
	r.bindings[name] = value
	r.stats.Binds++

	r.logger.Debug("registry_bind",
		slog.String("name", name),
		slog.Int("total_entries", len(r.bindings)))
}

// Lookup returns the value bound under name. It fails with
// ErrRegistryInactive while the registry is deactivated and with ErrNotBound
// when no binding exists.
func (r *Registry) Lookup(name string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Lookups++
	if !r.active {
		r.stats.Rejected++
		return nil, NewFixtureError("Lookup", ErrRegistryInactive).WithName(name)
	}

	value, ok := r.bindings[name]
	if !ok {
		r.stats.Misses++
		return nil, NewFixtureError("Lookup", ErrNotBound).WithName(name)
	}
	r.stats.Hits++
	return value, nil
}

// Unbind removes the binding for name and reports whether one existed.
func (r *Registry) Unbind(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bindings[name]; !ok {
		return false
	}
	delete(r.bindings, name)
	r.stats.Unbinds++
	return true
}

// Names returns all bound names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Activate turns the registry on for lookups. It fails with
// ErrRegistryActive when the registry is already active.
func (r *Registry) Activate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		return NewFixtureError("Activate", ErrRegistryActive)
	}
	r.active = true

	r.logger.Debug("registry_activated",
		slog.Int("total_entries", len(r.bindings)))
	return nil
}

// Deactivate turns the registry off. Bindings are retained, only lookup
// reachability changes. Deactivating an inactive registry is a no-op.
//
// LDAP tests require the mock context to be off, so call Deactivate before
// exercising a real directory connection.
func (r *Registry) Deactivate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = false
	r.logger.Debug("registry_deactivated",
		slog.Int("total_entries", len(r.bindings)))
}

// Active reports whether the registry currently serves lookups.
func (r *Registry) Active() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Stats returns a snapshot of registry usage statistics.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := r.stats
	stats.TotalEntries = len(r.bindings)
	return stats
}
