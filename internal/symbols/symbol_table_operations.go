package symbols

import (
	"log/slog"
)

// Push opens a frame tagged with tag and returns it.
func (st *ScopeTable[T]) Push(tag string) *Scope[T] {
	scope := newScope[T](tag, len(st.scopes))
	st.scopes = append(st.scopes, scope)
	if st.logger != nil {
		st.logger.Debug("push scope", slog.String("tag", tag), slog.Int("depth", len(st.scopes)))
	}
	return scope
}

// Pop discards the innermost frame. The root frame is never popped.
func (st *ScopeTable[T]) Pop() {
	if len(st.scopes) == 1 {
		return
	}
	top := st.scopes[len(st.scopes)-1]
	st.scopes = st.scopes[:len(st.scopes)-1]
	if st.logger != nil {
		st.logger.Debug("pop scope", slog.String("tag", top.Tag), slog.Int("depth", len(st.scopes)))
	}
}

// Unwind pops frames until depth frames remain.
func (st *ScopeTable[T]) Unwind(depth int) {
	for len(st.scopes) > depth && len(st.scopes) > 1 {
		st.Pop()
	}
}

// Reset drops every frame and binding, root included.
func (st *ScopeTable[T]) Reset() {
	st.scopes = []*Scope[T]{newScope[T](st.scopes[0].Tag, 0)}
}

// Depth is the number of frames, root included.
func (st *ScopeTable[T]) Depth() int {
	return len(st.scopes)
}

// Current returns the innermost frame.
func (st *ScopeTable[T]) Current() *Scope[T] {
	return st.scopes[len(st.scopes)-1]
}

// Root returns frame 0.
func (st *ScopeTable[T]) Root() *Scope[T] {
	return st.scopes[0]
}

// Lookup finds name in the innermost frame that binds it.
func (st *ScopeTable[T]) Lookup(name string) (T, bool) {
	if scope, ok := st.Owner(name); ok {
		return scope.Get(name)
	}
	var zero T
	return zero, false
}

// Owner returns the innermost frame that binds name.
func (st *ScopeTable[T]) Owner(name string) (*Scope[T], bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if _, ok := st.scopes[i].store[name]; ok {
			return st.scopes[i], true
		}
	}
	return nil, false
}

// Assign rebinds name in the frame that already binds it, or binds it in
// the current frame. Inner frames never shadow outer bindings this way.
func (st *ScopeTable[T]) Assign(name string, v T) {
	if scope, ok := st.Owner(name); ok {
		scope.set(name, v)
		return
	}
	st.Current().set(name, v)
}

// Define binds name in the current frame regardless of outer bindings.
func (st *ScopeTable[T]) Define(name string, v T) {
	st.Current().set(name, v)
}

// InScope reports whether any open frame carries tag.
func (st *ScopeTable[T]) InScope(tag string) bool {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if st.scopes[i].Tag == tag {
			return true
		}
	}
	return false
}
