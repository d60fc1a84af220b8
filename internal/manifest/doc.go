// Package manifest defines the format-agnostic model for declarative
// resource manifests.
//
// A manifest names the resource instances an application should
// materialize at boot: for each one, the registered type name, the instance
// name, and the creation properties. Format-specific loaders (hcldoc,
// yamldoc) parse their syntax into this one Model so the rest of the
// application never sees a parser type.
package manifest
