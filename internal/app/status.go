package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// statusShutdownTimeout bounds the graceful shutdown of the status server.
const statusShutdownTimeout = 5 * time.Second

// statusMux builds the status server's routes. It is split from the
// listener setup so tests can exercise the handlers without a real port.
func (a *App) statusMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/registry/types", a.typesHandler)
	mux.HandleFunc("/registry/resources", a.resourcesHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check requested.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) typesHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, a.registry.Types())
}

func (a *App) resourcesHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, a.registry.Names())
}

func (a *App) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to encode status response.", "error", err)
	}
}

// startStatusServer binds the status port synchronously, so a busy port
// fails the run instead of surfacing later from a goroutine, then serves
// requests in the background.
func (a *App) startStatusServer() error {
	addr := fmt.Sprintf(":%d", a.config.StatusPort)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start status server on %s: %w", addr, err)
	}

	a.statusServer = &http.Server{Handler: a.statusMux()}
	a.logger.Info("🩺 Status server starting", "address", listener.Addr().String())

	go func() {
		if err := a.statusServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Status server failed.", "error", err)
		}
	}()
	return nil
}

func (a *App) closeStatusServer() {
	if a.statusServer == nil {
		return
	}
	a.logger.Info("🩺 Shutting down status server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), statusShutdownTimeout)
	defer cancel()
	if err := a.statusServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Status server shutdown failed.", "error", err)
	}
}
