package symbols

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/funvibe/matx/internal/config"
)

func TestAssignRebindsInOwningFrame(t *testing.T) {
	st := NewScopeTable[int](nil)
	st.Push(config.ProgramScope)
	st.Assign("x", 1)

	st.Push(config.LoopScope)
	st.Push(config.BlockScope)
	st.Assign("x", 2)
	st.Assign("y", 3)
	if v, _ := st.Lookup("y"); v != 3 {
		t.Fatalf("y = %d, want 3", v)
	}
	st.Pop()
	st.Pop()

	if v, ok := st.Lookup("x"); !ok || v != 2 {
		t.Errorf("x = %d (%v), want 2", v, ok)
	}
	if _, ok := st.Lookup("y"); ok {
		t.Errorf("y should have been destroyed with its frame")
	}
}

func TestDefineShadows(t *testing.T) {
	st := NewScopeTable[string](nil)
	st.Assign("a", "outer")
	st.Push(config.BlockScope)
	st.Define("a", "inner")
	if v, _ := st.Lookup("a"); v != "inner" {
		t.Errorf("a = %q, want inner", v)
	}
	st.Pop()
	if v, _ := st.Lookup("a"); v != "outer" {
		t.Errorf("a = %q, want outer", v)
	}
}

func TestInScopeAndUnwind(t *testing.T) {
	st := NewScopeTable[int](nil)
	st.Push(config.ProgramScope)
	if st.InScope(config.LoopScope) {
		t.Fatalf("no loop frame yet")
	}
	st.Push(config.LoopScope)
	st.Push(config.IfScope)
	if !st.InScope(config.LoopScope) {
		t.Errorf("loop frame should be visible from inside if")
	}
	if st.Current().Tag != config.IfScope || st.Depth() != 4 {
		t.Errorf("unexpected top %q depth %d", st.Current().Tag, st.Depth())
	}

	st.Unwind(1)
	st.Pop()
	if st.Depth() != 1 || st.Current() != st.Root() {
		t.Errorf("root frame must survive, depth %d", st.Depth())
	}
}

func TestResetAndNames(t *testing.T) {
	st := NewScopeTable[int](nil)
	st.Assign("b", 2)
	st.Assign("a", 1)
	if got := strings.Join(st.Root().Names(), ","); got != "a,b" {
		t.Errorf("names = %s", got)
	}
	st.Push(config.BlockScope)
	st.Reset()
	if st.Depth() != 1 {
		t.Errorf("depth after reset = %d", st.Depth())
	}
	if _, ok := st.Lookup("a"); ok {
		t.Errorf("reset should clear bindings")
	}
}

func TestScopeTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	st := NewScopeTable[int](logger)
	st.Push(config.LoopScope)
	st.Pop()
	out := buf.String()
	if !strings.Contains(out, "push scope") || !strings.Contains(out, "tag=loop") || !strings.Contains(out, "pop scope") {
		t.Errorf("unexpected trace:\n%s", out)
	}
}
