// Package yamldoc is the YAML implementation of the manifest.Loader
// interface. YAML is a superset of JSON, so the same loader accepts plain
// JSON manifests too.
//
//	resources:
//	  - type: textfile.Document
//	    name: readme
//	    properties:
//	      filename: assets/readme.txt
package yamldoc

import (
	"context"
	"fmt"
	"os"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/manifest"
	"github.com/coreloop/resdepot/internal/property"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML/JSON implementation of the manifest.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements manifest.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

type fileRoot struct {
	Resources []resourceEntry `yaml:"resources"`
}

// resourceEntry keeps properties as a raw node so that document order and
// the resolved scalar tags survive decoding.
type resourceEntry struct {
	TypeName   string    `yaml:"type"`
	Name       string    `yaml:"name"`
	Properties yaml.Node `yaml:"properties"`
}

// Load parses the given files into the format-agnostic model, in file then
// document order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*manifest.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML manifest loader started.", "path_count", len(paths))

	model := &manifest.Model{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
		}

		for _, entry := range root.Resources {
			props, err := extractProperties(&entry.Properties)
			if err != nil {
				return nil, fmt.Errorf("%s: in resource %q %q: %w", path, entry.TypeName, entry.Name, err)
			}
			model.Decls = append(model.Decls, &manifest.Decl{
				TypeName: entry.TypeName,
				Name:     entry.Name,
				Props:    props,
				Source:   path,
			})
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("YAML manifest loading complete.", "resources", len(model.Decls))
	return model, nil
}

// extractProperties converts a properties mapping node into an ordered
// property list. An absent or null properties key yields no properties.
func extractProperties(node *yaml.Node) (property.List, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("properties must be a mapping, got %s at line %d", nodeKindName(node.Kind), node.Line)
	}

	props := make(property.List, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		prop, err := scalarProperty(key.Value, value)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	return props, nil
}

// scalarProperty classifies one value node by the tag the YAML resolver
// assigned to it.
func scalarProperty(name string, value *yaml.Node) (property.Property, error) {
	if value.Kind != yaml.ScalarNode {
		return property.Property{}, fmt.Errorf("property %q at line %d: value must be a scalar", name, value.Line)
	}
	switch value.Tag {
	case "!!bool":
		var v bool
		if err := value.Decode(&v); err != nil {
			return property.Property{}, fmt.Errorf("property %q at line %d: %w", name, value.Line, err)
		}
		return property.Bool(name, v), nil
	case "!!int":
		var v int64
		if err := value.Decode(&v); err != nil {
			return property.Property{}, fmt.Errorf("property %q at line %d: %w", name, value.Line, err)
		}
		return property.Int(name, v), nil
	case "!!float":
		var v float64
		if err := value.Decode(&v); err != nil {
			return property.Property{}, fmt.Errorf("property %q at line %d: %w", name, value.Line, err)
		}
		return property.Float(name, v), nil
	case "!!str":
		return property.String(name, value.Value), nil
	default:
		return property.Property{}, fmt.Errorf("property %q at line %d: unsupported value tag %s", name, value.Line, value.Tag)
	}
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
