package registry

import (
	"log/slog"
	"sort"

	"github.com/coreloop/resdepot/internal/reflection"
	"github.com/coreloop/resdepot/internal/resource"
)

// ptr constrains PT to be *T while also implementing resource.Resource,
// which is what lets the generic functions default-construct concrete
// resource kinds.
type ptr[T any] interface {
	*T
	resource.Resource
}

// factory holds the type-erased constructor for one registered resource
// type.
type factory struct {
	id        reflection.TypeID
	name      string
	construct func() resource.Resource
}

// TypeInfo describes one registered resource type for introspection. The id
// is only meaningful within the current process run; the name is stable.
type TypeInfo struct {
	ID   reflection.TypeID `json:"id"`
	Name string            `json:"name"`
}

// Register stores the constructor for T so instances can later be created
// through CreateByID with nothing but a type id resolved at runtime.
// Registering the same type twice is a no-op. Distinct Go types can print
// the same name; the name binding used by TypeIDFromName keeps the first
// such registration.
func Register[T any, PT ptr[T]](r *Registry) {
	id := reflection.IDOf[T]()
	name := reflection.NameOf[T]()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		slog.Debug("Resource type already registered, skipping.", "type", name, "id", id)
		return
	}
	slog.Debug("Registering resource type.", "type", name, "id", id)
	r.factories[id] = &factory{
		id:   id,
		name: name,
		construct: func() resource.Resource {
			return PT(new(T))
		},
	}
	if bound, taken := r.typeNames[name]; taken {
		slog.Warn("Type name already bound to another registered type, keeping the first binding.",
			"type", name, "id", id, "bound_id", bound)
		return
	}
	r.typeNames[name] = id
}

// TypeIDFromName resolves a registered type name to its id for the current
// process run. Unknown names resolve to reflection.InvalidID.
func (r *Registry) TypeIDFromName(name string) reflection.TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.typeNames[name]; ok {
		return id
	}
	return reflection.InvalidID
}

// Types returns the registered resource types, sorted by name.
func (r *Registry) Types() []TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]TypeInfo, 0, len(r.factories))
	for _, f := range r.factories {
		infos = append(infos, TypeInfo{ID: f.id, Name: f.name})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

func (r *Registry) factoryFor(id reflection.TypeID) (*factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[id]
	return f, ok
}
