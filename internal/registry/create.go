package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/reflection"
	"github.com/coreloop/resdepot/internal/resource"
)

// Create returns the instance registered under name, creating and
// initializing it first if absent. Creation is idempotent per name: when
// the name already exists the stored instance is returned as-is and props
// are ignored. When the stored instance has a different concrete type the
// call fails with ErrWrongType.
//
// T does not need to have been registered; registration only matters for
// the id-based path. Initialize runs outside the registry lock, so a slow
// resource never blocks unrelated lookups. If two goroutines race to create
// the same name, both initialize a candidate but only the first to publish
// keeps it; the loser's candidate is closed when it implements
// resource.Closer, then discarded unpublished, and the loser returns the
// winner's instance.
func Create[T any, PT ptr[T]](ctx context.Context, r *Registry, name string, props property.List) (PT, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	logger := ctxlog.FromContext(ctx).With("name", name, "type", reflection.NameOf[T]())

	if existing, ok := r.Lookup(name); ok {
		logger.Debug("Returning existing resource instance.")
		return asTyped[T, PT](name, existing)
	}

	candidate := PT(new(T))
	logger.Debug("Initializing new resource instance.")
	if err := candidate.Initialize(ctx, props); err != nil {
		return nil, fmt.Errorf("initializing resource %q (%s): %w", name, reflection.NameOf[T](), err)
	}

	winner := r.publish(name, candidate)
	if winner != candidate {
		logger.Debug("Discarding instance that lost a concurrent create.")
		closeDiscarded(ctx, logger, candidate)
	}
	return asTyped[T, PT](name, winner)
}

// CreateByID is the runtime-typed counterpart of Create for callers that
// resolved a type id dynamically, typically from a manifest. The id must
// belong to a registered type; reflection.InvalidID or an id without a
// factory fails with ErrUnknownType before anything is allocated. An
// existing name returns the stored instance whatever its concrete type.
func (r *Registry) CreateByID(ctx context.Context, id reflection.TypeID, name string, props property.List) (resource.Resource, error) {
	f, ok := r.factoryFor(id)
	if !ok {
		return nil, fmt.Errorf("type id %d: %w", id, ErrUnknownType)
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	logger := ctxlog.FromContext(ctx).With("name", name, "type", f.name)

	if existing, ok := r.Lookup(name); ok {
		logger.Debug("Returning existing resource instance.")
		return existing, nil
	}

	candidate := f.construct()
	logger.Debug("Initializing new resource instance.")
	if err := candidate.Initialize(ctx, props); err != nil {
		return nil, fmt.Errorf("initializing resource %q (%s): %w", name, f.name, err)
	}

	winner := r.publish(name, candidate)
	if winner != candidate {
		logger.Debug("Discarding instance that lost a concurrent create.")
		closeDiscarded(ctx, logger, candidate)
	}
	return winner, nil
}

// closeDiscarded closes an initialized candidate that lost the publish
// race when it implements resource.Closer, so state opened during its
// Initialize is released.
func closeDiscarded(ctx context.Context, logger *slog.Logger, res resource.Resource) {
	closer, ok := res.(resource.Closer)
	if !ok {
		return
	}
	if err := closer.Close(ctx); err != nil {
		logger.Warn("Failed to close discarded resource instance.", "error", err)
	}
}

// asTyped narrows an untyped stored instance to the requested handle type.
func asTyped[T any, PT ptr[T]](name string, res resource.Resource) (PT, error) {
	typed, ok := res.(PT)
	if !ok {
		return nil, fmt.Errorf("resource %q holds %T, want %s: %w", name, res, reflection.NameOf[T](), ErrWrongType)
	}
	return typed, nil
}
