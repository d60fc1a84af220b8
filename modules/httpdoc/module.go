// Package httpdoc provides a resource kind that snapshots a remote HTTP
// document at creation time.
package httpdoc

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
)

// defaultTimeout bounds the fetch when the manifest does not set one.
const defaultTimeout = 10 * time.Second

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the resource kinds of this package.
func (m *Module) Register(r *registry.Registry) {
	registry.Register[Document](r)
}

// input defines the creation properties of a Document.
type input struct {
	URL       string `prop:"url"`
	TimeoutMs int64  `prop:"timeout_ms,optional"`
	MaxBytes  int64  `prop:"max_bytes,optional"`
}

// Document holds one fetched HTTP response body. The fetch happens once,
// inside Initialize; afterwards the document is an immutable snapshot.
type Document struct {
	mu          sync.Mutex
	url         string
	status      int
	contentType string
	body        []byte
}

// Initialize fetches the URL. A transport error, a non-2xx status or a
// body over max_bytes fails the creation.
func (d *Document) Initialize(ctx context.Context, props property.List) error {
	var in input
	if err := property.DecodeInto(ctx, props, &in); err != nil {
		return err
	}
	if in.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must not be negative")
	}

	timeout := defaultTimeout
	if in.TimeoutMs > 0 {
		timeout = time.Duration(in.TimeoutMs) * time.Millisecond
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, in.URL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", in.URL, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", in.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("fetching %s: unexpected status %s", in.URL, resp.Status)
	}

	reader := io.Reader(resp.Body)
	if in.MaxBytes > 0 {
		// Read one extra byte so an over-limit body is distinguishable
		// from one that fits exactly. At MaxInt64 the sentinel byte would
		// overflow the limit, so it is dropped there.
		limit := in.MaxBytes
		if limit < math.MaxInt64 {
			limit++
		}
		reader = io.LimitReader(resp.Body, limit)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading body of %s: %w", in.URL, err)
	}
	if in.MaxBytes > 0 && int64(len(body)) > in.MaxBytes {
		return fmt.Errorf("body of %s exceeds the %d byte limit", in.URL, in.MaxBytes)
	}

	d.mu.Lock()
	d.url = in.URL
	d.status = resp.StatusCode
	d.contentType = resp.Header.Get("Content-Type")
	d.body = body
	d.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Fetched remote document.", "url", in.URL, "status", resp.StatusCode, "bytes", len(body))
	return nil
}

// Body returns a copy of the fetched response body.
func (d *Document) Body() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, len(d.body))
	copy(out, d.body)
	return out
}

// Status returns the HTTP status code of the fetch.
func (d *Document) Status() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// ContentType returns the Content-Type header of the fetch.
func (d *Document) ContentType() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contentType
}

// URL returns the fetched URL.
func (d *Document) URL() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url
}
