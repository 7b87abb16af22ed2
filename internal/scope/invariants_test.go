package scope_test

import (
	"testing"

	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/testkit"
)

func TestScopeTreeInvariantsHoldAfterBuild(t *testing.T) {
	root := scope.NewRoot(nil)
	fn := root.Child("FnDecl (body) main", nil)
	loop := fn.Child("Loop body", nil)
	loop.Child("Subblock", nil)

	if err := testkit.CheckScopeTreeInvariants(root); err != nil {
		t.Fatalf("unexpected invariant violation: %v", err)
	}
}

func TestScopeTreeInvariantsHoldAfterReparent(t *testing.T) {
	a := scope.NewRoot(nil)
	b := scope.NewRoot(nil)
	target := a.Child("Class Declaration of X", nil)
	target.Reparent(b)

	if err := testkit.CheckScopeTreeInvariants(b); err != nil {
		t.Fatalf("unexpected invariant violation after reparent: %v", err)
	}
	if err := testkit.CheckScopeTreeInvariants(a); err != nil {
		t.Fatalf("unexpected invariant violation on source tree after reparent: %v", err)
	}
}

func TestCheckNoOrphanNodesCatchesDetachedNode(t *testing.T) {
	root := scope.NewRoot(nil)
	child := root.Child("Subblock", nil)

	if err := testkit.CheckNoOrphanNodes(root, []*scope.Node{root, child}); err != nil {
		t.Fatalf("unexpected orphan error: %v", err)
	}

	orphan := scope.NewRoot(nil)
	if err := testkit.CheckNoOrphanNodes(root, []*scope.Node{root, child, orphan}); err == nil {
		t.Fatalf("expected orphan detection for a node outside root's tree")
	}
}
