// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the materialization lifecycle that turns
// declarative manifests into live registry instances, decoupled from any
// specific entrypoint like a CLI.
package app
