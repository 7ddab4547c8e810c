/*
File : loxscript/environment/environment.go
*/

// Package environment implements the lexical scope chain used by the
// interpreter to store and resolve variable bindings.
package environment

import (
	"fmt"

	"github.com/loxscript/loxscript/value"
)

// UndefinedVariableError is returned by Get and Assign when a name has no
// binding anywhere in the scope chain.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// Environment is a single lexical scope: a set of name-to-value bindings
// plus a link to the enclosing scope. The interpreter pushes a new
// Environment on entering a block and discards it on leaving, forming a
// scope chain that is searched outward on lookup.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// New creates an Environment enclosed by parent. Pass nil for the global
// scope, which has no parent.
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]value.Value),
		Parent: parent,
	}
}

// Define binds name to val in this scope only. A redeclaration of an
// existing name in the same scope simply replaces the binding.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get resolves name by searching this scope and then each enclosing scope
// in turn. It returns UndefinedVariableError if name is bound nowhere in
// the chain.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign updates the existing binding for name, searching this scope and
// then each enclosing scope in turn, and mutating whichever scope already
// holds the binding. Unlike Define, Assign never creates a new binding: it
// returns UndefinedVariableError if name is bound nowhere in the chain.
func (e *Environment) Assign(name string, val value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, val)
	}
	return &UndefinedVariableError{Name: name}
}
