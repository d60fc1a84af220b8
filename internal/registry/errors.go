package registry

import "errors"

// Sentinel errors returned by registry operations. Callers match them with
// errors.Is; creation failures additionally wrap the concrete resource's
// own initialization error together with the instance name and type.
var (
	// ErrUnknownType is returned when a type id does not resolve to a
	// registered factory.
	ErrUnknownType = errors.New("registry: unknown resource type")

	// ErrWrongType is returned when a stored instance does not have the
	// concrete type the caller asked for.
	ErrWrongType = errors.New("registry: resource has a different type")

	// ErrNilResource is returned by Add when handed a nil instance.
	ErrNilResource = errors.New("registry: nil resource")

	// ErrEmptyName is returned when an instance name is empty.
	ErrEmptyName = errors.New("registry: empty resource name")
)
