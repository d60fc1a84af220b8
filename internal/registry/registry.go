package registry

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/coreloop/resdepot/internal/reflection"
	"github.com/coreloop/resdepot/internal/resource"
)

// Module is the interface resource kind packages implement to make their
// types available to an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered resource factories and the live named
// instances for a single application instance. All fields are guarded by
// mu; every exported operation is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflection.TypeID]*factory
	typeNames map[string]reflection.TypeID
	instances map[string]resource.Resource
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[reflection.TypeID]*factory),
		typeNames: make(map[string]reflection.TypeID),
		instances: make(map[string]resource.Resource),
	}
}

// Add publishes an already-initialized instance under the given name. The
// registry shares ownership with the caller from then on. An existing entry
// under the same name is replaced; the previous instance just loses the
// registry's reference and lives on wherever callers still hold it.
func (r *Registry) Add(name string, res resource.Resource) error {
	if name == "" {
		return ErrEmptyName
	}
	if res == nil {
		return ErrNilResource
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.instances[name]; exists {
		slog.Debug("Replacing registered resource instance.", "name", name)
	}
	r.instances[name] = res
	return nil
}

// Lookup returns the instance registered under name, untyped. Use the
// generic Get for a typed handle.
func (r *Registry) Lookup(name string) (resource.Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.instances[name]
	return res, ok
}

// Exists reports whether an instance is registered under name.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Remove drops the instance registered under name. Removing an absent name
// is a no-op. The instance itself is not touched; callers holding it keep a
// perfectly usable handle.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, name)
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Names returns the registered instance names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.instances))
	for name := range r.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// publish stores res under name unless a concurrent creator got there
// first, and returns whichever instance is registered afterwards.
func (r *Registry) publish(name string, res resource.Resource) resource.Resource {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.instances[name]; ok {
		return existing
	}
	r.instances[name] = res
	return res
}

// Get returns the instance registered under name as a typed handle. The
// second return is false when the name is absent or the stored instance has
// a different concrete type.
func Get[T any, PT ptr[T]](r *Registry, name string) (PT, bool) {
	res, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	typed, ok := res.(PT)
	if !ok {
		return nil, false
	}
	return typed, true
}
