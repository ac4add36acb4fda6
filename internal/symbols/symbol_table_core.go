package symbols

import (
	"log/slog"
	"sort"

	"github.com/funvibe/matx/internal/config"
)

// Scope is one frame of a ScopeTable. Level 0 is the root frame.
type Scope[T any] struct {
	Tag   string
	Level int
	store map[string]T
}

func newScope[T any](tag string, level int) *Scope[T] {
	return &Scope[T]{Tag: tag, Level: level, store: make(map[string]T)}
}

// Get looks name up in this frame only.
func (s *Scope[T]) Get(name string) (T, bool) {
	v, ok := s.store[name]
	return v, ok
}

func (s *Scope[T]) set(name string, v T) {
	s.store[name] = v
}

// Names returns the names bound in this frame, sorted.
func (s *Scope[T]) Names() []string {
	names := make([]string, 0, len(s.store))
	for name := range s.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bindings returns a copy of the frame's entries.
func (s *Scope[T]) Bindings() map[string]T {
	out := make(map[string]T, len(s.store))
	for k, v := range s.store {
		out[k] = v
	}
	return out
}

// ScopeTable is a stack of tagged frames. The checker instantiates it with
// static types, the evaluator with runtime values.
type ScopeTable[T any] struct {
	scopes []*Scope[T]
	logger *slog.Logger
}

// NewScopeTable returns a table holding only the root frame. A nil logger
// disables tracing.
func NewScopeTable[T any](logger *slog.Logger) *ScopeTable[T] {
	st := &ScopeTable[T]{logger: logger}
	st.scopes = []*Scope[T]{newScope[T](config.RootScope, 0)}
	return st
}
