// Package reflection assigns a process-wide identifier and a deterministic
// name to every resource type, without requiring any registration step.
//
// Identifiers are handed out lazily, in first-use order, from a single
// process-wide table. That makes them stable for the lifetime of one process
// run and nothing more: a rebuild or a different startup order yields
// different numbers. Code outside of tests must therefore never hard-code a
// TypeID literal; ids are obtained through IDOf or resolved from a type name
// at runtime. Names, by contrast, are derived purely from the Go type and
// are stable across runs.
package reflection

import (
	"reflect"
	"sync"
)

// TypeID identifies a resource type within a single process run.
type TypeID uint32

// InvalidID is the sentinel "no such type" identifier. It is never issued
// to a real type; issued ids start at 1.
const InvalidID TypeID = 0

var (
	mu     sync.RWMutex
	nextID TypeID = 1
	ids           = make(map[reflect.Type]TypeID)
)

// TypeFor returns the underlying struct type for T, unwrapping any pointer
// indirection, so that IDOf[T] and IDOf[*T] agree.
func TypeFor[T any]() reflect.Type {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IDOf returns the identifier for T. The first call for a given T performs
// the one-time assignment; every later call is a pure read returning the
// same value. Safe for concurrent first use from multiple goroutines:
// exactly one assignment wins and no id is ever issued twice.
func IDOf[T any]() TypeID {
	return IDOfType(TypeFor[T]())
}

// IDOfType is the non-generic form of IDOf for callers that already hold a
// reflect.Type.
func IDOfType(t reflect.Type) TypeID {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	mu.RLock()
	id, ok := ids[t]
	mu.RUnlock()
	if ok {
		return id
	}

	mu.Lock()
	defer mu.Unlock()
	// Another goroutine may have completed the first-use assignment between
	// the two lock acquisitions.
	if id, ok := ids[t]; ok {
		return id
	}
	id = nextID
	nextID++
	ids[t] = id
	return id
}

// NameOf returns the deterministic, package-qualified name for T, e.g.
// "textfile.Document". It is independent of call order and never touches
// the id table.
func NameOf[T any]() string {
	return TypeFor[T]().String()
}
