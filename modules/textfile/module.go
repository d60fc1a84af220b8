// Package textfile provides the file-backed text document resource kind.
package textfile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the resource kinds of this package.
func (m *Module) Register(r *registry.Registry) {
	registry.Register[Document](r)
}

// input defines the creation properties of a Document.
type input struct {
	Filename string `prop:"filename"`
}

// Document is an in-memory text document loaded from a file. Instances are
// shared through the registry, so a mutation made through one handle is
// visible to every other.
type Document struct {
	mu   sync.Mutex
	path string
	text string
}

// Initialize reads the whole file into memory. A missing or unreadable
// file fails the creation.
func (d *Document) Initialize(ctx context.Context, props property.List) error {
	var in input
	if err := property.DecodeInto(ctx, props, &in); err != nil {
		return err
	}

	data, err := os.ReadFile(in.Filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in.Filename, err)
	}

	d.mu.Lock()
	d.path = in.Filename
	d.text = string(data)
	d.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Loaded text file into memory.", "path", in.Filename, "bytes", len(data))
	return nil
}

// Text returns the current in-memory content.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// AppendText appends to the in-memory content. The backing file is never
// written back.
func (d *Document) AppendText(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text += s
}

// Len returns the content length in bytes.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.text)
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path
}
