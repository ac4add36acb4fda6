package evaluator

import (
	"log/slog"

	"github.com/funvibe/matx/internal/symbols"
)

// Environment is the runtime scope stack.
type Environment struct {
	scopes *symbols.ScopeTable[Object]
}

func NewEnvironment(logger *slog.Logger) *Environment {
	return &Environment{scopes: symbols.NewScopeTable[Object](logger)}
}

func (e *Environment) Get(name string) (Object, bool) {
	return e.scopes.Lookup(name)
}

// Set rebinds name where it is already bound, otherwise binds it in the
// innermost frame.
func (e *Environment) Set(name string, val Object) Object {
	e.scopes.Assign(name, val)
	return val
}

func (e *Environment) Push(tag string) { e.scopes.Push(tag) }
func (e *Environment) Pop()            { e.scopes.Pop() }
func (e *Environment) Depth() int      { return e.scopes.Depth() }
func (e *Environment) Unwind(depth int) {
	e.scopes.Unwind(depth)
}

// Reset drops every binding.
func (e *Environment) Reset() { e.scopes.Reset() }

// GetStore returns a copy of the root frame.
func (e *Environment) GetStore() map[string]Object {
	return e.scopes.Root().Bindings()
}
