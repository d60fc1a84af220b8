// Package sockchan provides a live socket.io channel resource kind, so one
// connected socket can be shared across subsystems through the registry.
package sockchan

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
	"github.com/coreloop/resdepot/internal/resource"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// defaultConnectTimeout bounds the handshake when the manifest does not set
// connect_timeout_ms.
const defaultConnectTimeout = 15 * time.Second

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the resource kinds of this package.
func (m *Module) Register(r *registry.Registry) {
	registry.Register[Channel](r)
}

// input defines the creation properties of a Channel.
type input struct {
	URL                string `prop:"url"`
	Namespace          string `prop:"namespace,optional"`
	InsecureSkipVerify bool   `prop:"insecure_skip_verify,optional"`
	ConnectTimeoutMs   int64  `prop:"connect_timeout_ms,optional"`
}

// validate rejects inputs that could never connect, before any dialing.
func (in *input) validate() (*url.URL, error) {
	parsedURL, err := url.Parse(in.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("URL %q has no host", in.URL)
	}
	if in.ConnectTimeoutMs < 0 {
		return nil, fmt.Errorf("connect_timeout_ms must not be negative")
	}
	return parsedURL, nil
}

// Channel wraps a connected socket.io client socket.
type Channel struct {
	mu sync.Mutex
	io *socket.Socket
}

var _ resource.Closer = (*Channel)(nil)

// Initialize connects to the server over websocket and waits for the
// handshake, a connect_error or the timeout. On any failure nothing stays
// connected.
func (c *Channel) Initialize(ctx context.Context, props property.List) error {
	var in input
	if err := property.DecodeInto(ctx, props, &in); err != nil {
		return err
	}

	parsedURL, err := in.validate()
	if err != nil {
		return err
	}

	logger := ctxlog.FromContext(ctx).With("url", in.URL)

	timeout := defaultConnectTimeout
	if in.ConnectTimeoutMs > 0 {
		timeout = time.Duration(in.ConnectTimeoutMs) * time.Millisecond
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if in.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(in.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		connectChan <- nil
	})

	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errs[0].(error)
		logger.Debug("Received connect_error event.", "error", err)
		connectChan <- err
	})

	logger.Debug("Initiating socket.io connection.")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(timeout):
		io.Disconnect()
		return fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	c.mu.Lock()
	c.io = io
	c.mu.Unlock()
	return nil
}

// Emit sends an event through the connected channel.
func (c *Channel) Emit(event string, args ...any) error {
	c.mu.Lock()
	io := c.io
	c.mu.Unlock()
	if io == nil {
		return fmt.Errorf("channel is not connected")
	}
	io.Emit(event, args...)
	return nil
}

// ID returns the socket session id, or "" when not connected.
func (c *Channel) ID() string {
	c.mu.Lock()
	io := c.io
	c.mu.Unlock()
	if io == nil {
		return ""
	}
	return string(io.Id())
}

// Connected reports whether the channel currently holds a connected socket.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	io := c.io
	c.mu.Unlock()
	return io != nil && io.Connected()
}

// Close implements resource.Closer by disconnecting the socket. Closing an
// unconnected channel is a no-op.
func (c *Channel) Close(ctx context.Context) error {
	c.mu.Lock()
	io := c.io
	c.io = nil
	c.mu.Unlock()
	if io == nil {
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Disconnecting socket.io channel.", "sid", io.Id())
	io.Disconnect()
	return nil
}
