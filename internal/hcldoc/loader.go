// Package hcldoc is the HCL implementation of the manifest.Loader
// interface. A manifest file declares resource instances:
//
//	resource "textfile.Document" "readme" {
//	  properties {
//	    filename = "assets/readme.txt"
//	  }
//	}
//
// Property values are literals; the properties block has no evaluation
// context, so references and functions are rejected at load time.
package hcldoc

import (
	"context"
	"fmt"
	"sort"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/manifest"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Loader is the HCL-specific implementation of the manifest.Loader
// interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements manifest.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// fileRoot decodes the top-level blocks of one manifest file. Remain keeps
// the decoder tolerant of unrelated top-level content.
type fileRoot struct {
	Resources []*resourceBlock `hcl:"resource,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

// resourceBlock is the HCL shape of one resource declaration.
type resourceBlock struct {
	TypeName   string           `hcl:"type,label"`
	Name       string           `hcl:"name,label"`
	Properties *propertiesBlock `hcl:"properties,block"`
}

type propertiesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load parses the given .hcl files into the format-agnostic model, in file
// then document order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*manifest.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL manifest loader started.", "path_count", len(paths))

	model := &manifest.Model{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}

		for _, block := range root.Resources {
			decl, err := translateResource(block, path)
			if err != nil {
				return nil, err
			}
			model.Decls = append(model.Decls, decl)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL manifest loading complete.", "resources", len(model.Decls))
	return model, nil
}

// translateResource converts one decoded block into a manifest.Decl.
func translateResource(block *resourceBlock, path string) (*manifest.Decl, error) {
	props, err := extractProperties(block.Properties)
	if err != nil {
		return nil, fmt.Errorf("in resource %q %q: %w", block.TypeName, block.Name, err)
	}
	return &manifest.Decl{
		TypeName: block.TypeName,
		Name:     block.Name,
		Props:    props,
		Source:   path,
	}, nil
}

// extractProperties evaluates every attribute of a properties block as a
// literal and classifies it. JustAttributes hands the attributes back as a
// map, so the source byte offset restores document order.
func extractProperties(block *propertiesBlock) (property.List, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
	})

	props := make(property.List, 0, len(sorted))
	for _, attr := range sorted {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("property %q at %s: %w", attr.Name, attr.Range.String(), diags)
		}
		prop, err := property.FromCty(attr.Name, val)
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", attr.Range.String(), err)
		}
		props = append(props, prop)
	}
	return props, nil
}
