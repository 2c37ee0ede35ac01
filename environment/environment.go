/*
File   : ash/environment/environment.go
Package: environment

Package environment implements the linked chain of name-to-value maps
that gives Ash its lexical scoping. Each Block gets its own
Environment, parented on the environment that was active when the
block runs; each function call gets its own Environment, parented on
the global environment; the global environment's parent is nil.

Values are stored as interface{} rather than a named type: the value
domain (nil, bool, float64, string, value.Callable) lives one layer
up, in the value package, and this package has no need to know its
shape — only that bindings are looked up and assigned by name.
*/
package environment

import "github.com/ash-lang/ash/internal/errs"

// Environment is one scope's worth of name-to-value bindings, plus an
// optional link to the enclosing scope.
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
}

// New creates the global environment: no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosed creates a child environment of enclosing. enclosing must
// not be nil — only the global environment has no parent, and it is
// always constructed with New.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), enclosing: enclosing}
}

// Enclosing returns the parent scope, or nil for the global scope.
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define unconditionally installs a binding in this environment. A
// second Define of the same name overwrites the first — permitted
// for the global scope (redeclaring a top-level var or fun); the
// parser never emits a second Var/Function for the same name inside
// one block, so the overwrite case never arises for locals in
// practice.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get resolves name by walking outward through the enclosing chain.
// It fails with the runtime error "Undefined variable '<lexeme>'."
// if no environment in the chain has a binding for it.
func (e *Environment) Get(name string, line int) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, line)
	}
	return nil, &errs.RuntimeErr{Line: line, Message: "Undefined variable '" + name + "'."}
}

// Assign updates the nearest existing binding for name, walking
// outward through the enclosing chain. It never creates a new
// binding: if no environment in the chain already binds name, it
// fails with "Undefined Variable '<lexeme>'." (capitalization
// preserved for parity with the reference implementation's
// assignment-path error text).
func (e *Environment) Assign(name string, value interface{}, line int) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, line)
	}
	return &errs.RuntimeErr{Line: line, Message: "Undefined Variable '" + name + "'."}
}
