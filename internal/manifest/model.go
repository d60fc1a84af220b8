package manifest

import (
	"fmt"

	"github.com/coreloop/resdepot/internal/property"
)

// Decl is the format-agnostic representation of one declared resource
// instance.
type Decl struct {
	// TypeName is the registered resource type, e.g. "textfile.Document".
	TypeName string
	// Name is the instance name the resource is registered under.
	Name string
	// Props are the creation properties, in document order.
	Props property.List
	// Source identifies where the declaration came from, for error
	// messages. Loaders fill it with "file:line" or just the file path.
	Source string
}

// Model is the unified representation of every resource declaration
// gathered from one load, in document order.
type Model struct {
	Decls []*Decl
}

// Merge appends other's declarations, preserving load order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Decls = append(m.Decls, other.Decls...)
}

// Validate rejects declarations with empty type or instance names and
// duplicate instance names within the model.
func (m *Model) Validate() error {
	seen := make(map[string]string, len(m.Decls))
	for _, decl := range m.Decls {
		if decl.TypeName == "" {
			return fmt.Errorf("%s: resource declaration %q has an empty type name", decl.Source, decl.Name)
		}
		if decl.Name == "" {
			return fmt.Errorf("%s: resource declaration of type %q has an empty instance name", decl.Source, decl.TypeName)
		}
		if prev, dup := seen[decl.Name]; dup {
			return fmt.Errorf("%s: duplicate resource name %q (first declared at %s)", decl.Source, decl.Name, prev)
		}
		seen[decl.Name] = decl.Source
	}
	return nil
}
