package scope

import (
	"testing"

	"github.com/hodevin/decaf/internal/types"
)

func TestChildForksTable(t *testing.T) {
	root := NewRoot(nil)
	root.Table.Put("x", types.VariableAnnotation{Name: "x", Type: types.IntType{}})

	child := root.Child("Subblock", nil)
	if _, ok := child.Table.Get("x"); !ok {
		t.Fatalf("expected child table to see parent binding via fork chain")
	}
	if child.Parent != root {
		t.Fatalf("expected child.Parent == root")
	}
	if len(root.Children) != 1 || root.Children[0] != child {
		t.Fatalf("expected root to list child")
	}
}

func TestReparentMovesChildAndTable(t *testing.T) {
	a := NewRoot(nil)
	a.Table.Put("shared", types.VariableAnnotation{Name: "shared", Type: types.IntType{}})
	b := NewRoot(nil)

	target := a.Child("Class Declaration of X", nil)

	if ok := target.Reparent(b); !ok {
		t.Fatalf("expected reparent to succeed")
	}
	if target.Parent != b {
		t.Fatalf("expected target.Parent == b")
	}
	if len(a.Children) != 0 {
		t.Fatalf("expected a to no longer list target")
	}
	if len(b.Children) != 1 || b.Children[0] != target {
		t.Fatalf("expected b to list target")
	}
	if _, ok := target.Table.Get("shared"); ok {
		t.Fatalf("expected target's table to no longer see a's binding")
	}
}

func TestSelfReparentIsNoOp(t *testing.T) {
	n := NewRoot(nil)
	if ok := n.Reparent(n); ok {
		t.Fatalf("expected self-reparent to fail")
	}
	if n.Parent != nil {
		t.Fatalf("expected n.Parent to remain nil")
	}
}

func TestInsideLoop(t *testing.T) {
	root := NewRoot(nil)
	fn := root.Child("FnDecl (body) main", nil)
	loopBody := fn.Child("Loop body", nil)
	nested := loopBody.Child("Subblock", nil)

	if fn.InsideLoop() {
		t.Fatalf("fn body should not be inside a loop")
	}
	if !loopBody.InsideLoop() {
		t.Fatalf("loop body should report inside a loop")
	}
	if !nested.InsideLoop() {
		t.Fatalf("nested block under a loop body should report inside a loop")
	}
}
