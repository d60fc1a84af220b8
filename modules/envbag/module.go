// Package envbag provides a resource kind that captures a point-in-time
// snapshot of the process environment.
package envbag

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the environment snapshot resource kind.
func (m *Module) Register(r *registry.Registry) {
	registry.Register[Snapshot](r)
}

// input defines the properties accepted by the snapshot resource.
type input struct {
	Prefix      string `prop:"prefix,optional"`
	StripPrefix bool   `prop:"strip_prefix,optional"`
}

// Snapshot holds the environment variables captured when the resource was
// initialized. Later changes to the process environment are not visible;
// every shared handle sees the same point-in-time view. The captured map is
// never written after Initialize, so reads need no locking.
type Snapshot struct {
	vars map[string]string
}

// Initialize captures os.Environ once, keeping only variables that match
// the configured prefix. All variables are kept when the prefix is empty.
func (s *Snapshot) Initialize(ctx context.Context, props property.List) error {
	var in input
	if err := property.DecodeInto(ctx, props, &in); err != nil {
		return err
	}

	s.vars = make(map[string]string)
	for _, entry := range os.Environ() {
		pair := strings.SplitN(entry, "=", 2)
		if len(pair) != 2 {
			continue
		}
		name := pair[0]
		if in.Prefix != "" && !strings.HasPrefix(name, in.Prefix) {
			continue
		}
		if in.StripPrefix {
			name = strings.TrimPrefix(name, in.Prefix)
		}
		s.vars[name] = pair[1]
	}

	ctxlog.FromContext(ctx).Debug("Captured environment snapshot.",
		"prefix", in.Prefix,
		"count", len(s.vars))
	return nil
}

// Value returns the captured value for name.
func (s *Snapshot) Value(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Names returns the captured variable names, sorted.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of captured variables.
func (s *Snapshot) Len() int {
	return len(s.vars)
}
