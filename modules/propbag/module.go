// Package propbag provides the plain configuration bag resource kind: a
// named, immutable snapshot of its creation properties that other parts of
// an application read through the registry.
package propbag

import (
	"context"
	"fmt"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the resource kinds of this package.
func (m *Module) Register(r *registry.Registry) {
	registry.Register[Bag](r)
}

// Bag is an immutable property snapshot. It takes no fixed schema; every
// property it is created with becomes readable by name.
type Bag struct {
	props map[string]property.Property
}

// Initialize copies the creation properties. Duplicate property names are
// rejected, since a bag lookup could only ever see one of them.
func (b *Bag) Initialize(ctx context.Context, props property.List) error {
	byName := make(map[string]property.Property, len(props))
	for _, p := range props {
		if _, dup := byName[p.Name()]; dup {
			return fmt.Errorf("duplicate property %q", p.Name())
		}
		byName[p.Name()] = p
	}
	b.props = byName

	ctxlog.FromContext(ctx).Debug("Captured property bag.", "size", len(byName))
	return nil
}

// Has reports whether the bag holds a property with the given name.
func (b *Bag) Has(name string) bool {
	_, ok := b.props[name]
	return ok
}

// Len returns the number of properties in the bag.
func (b *Bag) Len() int {
	return len(b.props)
}

// BoolOr returns the named bool property, or def when the name is absent
// or holds a different kind.
func (b *Bag) BoolOr(name string, def bool) bool {
	if p, ok := b.props[name]; ok {
		if v, vok := p.BoolVal(); vok {
			return v
		}
	}
	return def
}

// IntOr returns the named int property, or def when the name is absent or
// holds a different kind.
func (b *Bag) IntOr(name string, def int64) int64 {
	if p, ok := b.props[name]; ok {
		if v, vok := p.IntVal(); vok {
			return v
		}
	}
	return def
}

// FloatOr returns the named float property, or def when the name is absent
// or holds a different kind.
func (b *Bag) FloatOr(name string, def float64) float64 {
	if p, ok := b.props[name]; ok {
		if v, vok := p.FloatVal(); vok {
			return v
		}
	}
	return def
}

// StringOr returns the named string property, or def when the name is
// absent or holds a different kind.
func (b *Bag) StringOr(name string, def string) string {
	if p, ok := b.props[name]; ok {
		if v, vok := p.StringVal(); vok {
			return v
		}
	}
	return def
}
