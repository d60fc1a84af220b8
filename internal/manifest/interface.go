package manifest

import (
	"context"
	"path/filepath"
	"strings"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths and translates them into
	// the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions returns the file extensions this loader claims, each with
	// a leading dot.
	Extensions() []string
}

// ForPath returns the loader claiming the path's extension.
func ForPath(loaders []Loader, path string) (Loader, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, l := range loaders {
		for _, e := range l.Extensions() {
			if e == ext {
				return l, true
			}
		}
	}
	return nil, false
}

// AllExtensions collects every extension claimed by the given loaders, in
// loader order.
func AllExtensions(loaders []Loader) []string {
	var exts []string
	for _, l := range loaders {
		exts = append(exts, l.Extensions()...)
	}
	return exts
}
