// Package resource defines the lifecycle contract every shared resource
// implements. Concrete resource types live in the top-level modules/ tree;
// the registry only ever sees this interface.
package resource

import (
	"context"

	"github.com/coreloop/resdepot/internal/property"
)

// Resource is a shared, named object managed by the registry.
//
// Initialize is called exactly once, after allocation and before the
// instance becomes visible to any other caller. A non-nil error aborts the
// creation and the instance is discarded without being stored. Once stored,
// an instance may be reached from many goroutines, so implementations
// guard their own mutable state.
type Resource interface {
	Initialize(ctx context.Context, props property.List) error
}

// Closer is optionally implemented by resources holding external state such
// as live connections. Instances are shared, so removing one from the
// registry only drops the registry's reference and never closes it; the
// owner that materialized a resource decides when to close it. The app
// closes every instance still registered when it shuts down. The one
// exception is an initialized candidate that loses a concurrent create:
// it was never shared, and the registry closes it on discard.
type Closer interface {
	Close(ctx context.Context) error
}
