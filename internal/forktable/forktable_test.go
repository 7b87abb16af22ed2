package forktable

import "testing"

func TestLocalShadowing(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)

	child := parent.Fork()
	child.Put("x", 2)

	if v, ok := child.Get("x"); !ok || v != 2 {
		t.Fatalf("expected local value 2, got %v %v", v, ok)
	}
	if v, ok := parent.Get("x"); !ok || v != 1 {
		t.Fatalf("parent should be unaffected, got %v %v", v, ok)
	}
}

func TestWhiteoutHidesParent(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)

	child := parent.Fork()
	if _, removed := child.Remove("x"); removed {
		t.Fatalf("expected no local removal, x lives in parent")
	}

	if _, ok := child.Get("x"); ok {
		t.Fatalf("expected whited-out key to be absent")
	}
	if child.ChainContains("x") {
		t.Fatalf("expected ChainContains false for whited-out key")
	}
	if _, ok := parent.Get("x"); !ok {
		t.Fatalf("parent must still have x")
	}
}

func TestChainContainsRespectsParent(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()

	if !child.ChainContains("x") {
		t.Fatalf("expected ChainContains true through parent")
	}
	if child.Contains("x") {
		t.Fatalf("expected local Contains false; x is only in parent")
	}
}

func TestReparent(t *testing.T) {
	a := New[string, int]()
	a.Put("shared", 1)
	b := New[string, int]()
	b.Put("shared", 2)

	child := New[string, int]()
	child.Reparent(a)
	if v, _ := child.Get("shared"); v != 1 {
		t.Fatalf("expected 1 from a, got %d", v)
	}

	child.Reparent(b)
	if v, _ := child.Get("shared"); v != 2 {
		t.Fatalf("expected 2 from b after reparent, got %d", v)
	}
}

func TestForkThenRemoveAllMatchesParent(t *testing.T) {
	parent := New[string, int]()
	parent.Put("a", 1)
	parent.Put("b", 2)

	child := parent.Fork()
	child.Put("a", 99)
	child.Remove("a")
	child.Remove("b")

	for _, k := range []string{"a", "b"} {
		cv, cok := child.Get(k)
		pv, pok := parent.Get(k)
		if cv != pv || cok != pok {
			t.Fatalf("key %q: child (%v,%v) should match parent (%v,%v)", k, cv, cok, pv, pok)
		}
	}
}

func TestLocalPreservesInsertionOrder(t *testing.T) {
	tbl := New[string, int]()
	tbl.Put("c", 3)
	tbl.Put("a", 1)
	tbl.Put("b", 2)
	tbl.Remove("a")
	tbl.Put("a", 10)

	entries := tbl.Local()
	want := []string{"c", "b", "a"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, k := range want {
		if entries[i].Key != k {
			t.Fatalf("entry %d: expected key %q, got %q", i, k, entries[i].Key)
		}
	}
}

func TestPutClearsWhiteout(t *testing.T) {
	parent := New[string, int]()
	parent.Put("x", 1)
	child := parent.Fork()
	child.Remove("x")
	if child.ChainContains("x") {
		t.Fatalf("expected whiteout to hide x")
	}

	child.Put("x", 5)
	if v, ok := child.Get("x"); !ok || v != 5 {
		t.Fatalf("expected Put to clear whiteout and rebind, got %v %v", v, ok)
	}
}
