package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/manifest"
	"github.com/coreloop/resdepot/internal/reflection"
	"github.com/coreloop/resdepot/internal/resource"
)

// closeTimeout bounds how long shutdown waits for resource closers.
const closeTimeout = 10 * time.Second

// Run loads the manifests and materializes every declared resource. One
// failing resource does not stop the others; Run materializes everything it
// can and returns the joined errors at the end. With Wait set it then parks
// until ctx is cancelled. On the way out the status server is shut down and
// every still-registered closer is closed, newest first.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	defer a.closeResources(ctx)

	if a.config.StatusPort > 0 {
		if err := a.startStatusServer(); err != nil {
			return err
		}
		defer a.closeStatusServer()
	}

	model, err := a.loadManifests(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Materializing resources...", "count", len(model.Decls))

	var failures []error
	for _, decl := range model.Decls {
		if err := a.materialize(ctx, decl); err != nil {
			a.logger.Error("Failed to materialize resource.",
				"name", decl.Name,
				"type", decl.TypeName,
				"error", err)
			failures = append(failures, err)
			continue
		}
		a.created = append(a.created, decl.Name)
		a.logger.Info("✅ Resource created", "name", decl.Name, "type", decl.TypeName)
	}

	a.logger.Info("🏁 Materialization finished.",
		"created", len(a.created),
		"failed", len(failures))

	if a.config.Wait {
		a.logger.Info("Waiting for shutdown signal...")
		<-ctx.Done()
	}

	return errors.Join(failures...)
}

// materialize creates the single resource a declaration names, resolving its
// type name to the current process run's type id first.
func (a *App) materialize(ctx context.Context, decl *manifest.Decl) error {
	id := a.registry.TypeIDFromName(decl.TypeName)
	if id == reflection.InvalidID {
		return fmt.Errorf("%s: unknown resource type %q", decl.Source, decl.TypeName)
	}
	_, err := a.registry.CreateByID(ctx, id, decl.Name, decl.Props)
	return err
}

// closeResources closes every closer this App materialized that is still
// registered, newest first. The run context may already be cancelled by the
// time shutdown starts, so closers get a fresh deadline of their own.
func (a *App) closeResources(ctx context.Context) {
	if len(a.created) == 0 {
		return
	}

	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	for i := len(a.created) - 1; i >= 0; i-- {
		name := a.created[i]
		res, ok := a.registry.Lookup(name)
		if !ok {
			continue
		}
		closer, ok := res.(resource.Closer)
		if !ok {
			continue
		}
		a.logger.Debug("Closing resource.", "name", name)
		if err := closer.Close(closeCtx); err != nil {
			a.logger.Error("Failed to close resource.", "name", name, "error", err)
		}
	}
}
