// Package testutil provides shared helpers and fake resource kinds for
// tests across packages.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// ErrAlwaysFail is the error every FailingRes initialization returns.
var ErrAlwaysFail = errors.New("always fails")

// CountingRes is a fake resource kind that counts its initializations and
// snapshots the properties it was created with.
type CountingRes struct {
	Inits atomic.Int32

	mu    sync.Mutex
	props property.List
}

// Initialize implements resource.Resource.
func (c *CountingRes) Initialize(ctx context.Context, props property.List) error {
	c.Inits.Add(1)
	c.mu.Lock()
	c.props = props
	c.mu.Unlock()
	return nil
}

// Props returns the property list the resource was created with.
func (c *CountingRes) Props() property.List {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props
}

// FailingRes is a fake resource kind whose initialization always fails.
type FailingRes struct{}

// Initialize implements resource.Resource.
func (f *FailingRes) Initialize(context.Context, property.List) error {
	return ErrAlwaysFail
}

// FakeModule registers the fake resource kinds, so tests can declare
// "testutil.CountingRes" and "testutil.FailingRes" in manifests.
type FakeModule struct{}

// Register implements the registry.Module interface.
func (m *FakeModule) Register(r *registry.Registry) {
	registry.Register[CountingRes](r)
	registry.Register[FailingRes](r)
}
