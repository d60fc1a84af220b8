// Package registry implements the shared resource store at the heart of
// resdepot.
//
// A Registry owns two tables: the factory table, mapping runtime type ids
// to type-erased constructors, and the instance table, mapping instance
// names to live resources. Generic package-level functions (Register,
// Create, Get) provide the compile-time-typed surface; the CreateByID
// method provides the runtime-typed surface used when materializing
// manifests. Both creation paths converge on one publish discipline:
// initialize the candidate outside the lock, re-check at publish time, and
// keep the first winner.
//
// The Registry is not a process singleton. The application composition root
// creates one with New and hands it to every subsystem that needs it, which
// keeps tests hermetic and lets one process host several independent
// registries.
package registry
