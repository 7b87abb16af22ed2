package sema

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/types"
)

// link is C6: for every class with an extends clause, splice its scope
// under its base class's scope so lookups fall through the inheritance
// chain. A class extending itself directly leaves Reparent a no-op;
// checkClasses' cyclic-inheritance scan (C7) is the sole source of
// IllegalClassInheritanceCycle diagnostics, so that a cycle spanning
// several classes is still reported exactly once rather than once per
// class whose reparent attempt happens to be the self-referential one.
func link(program *ast.Program, rep diag.Reporter) {
	for _, d := range program.Decls {
		c, ok := d.(*ast.ClassDecl)
		if !ok || c.Extends == nil {
			continue
		}
		classSc := c.Scope()
		baseSc := locateAnywhere(classSc, c.Extends.Name)
		if baseSc == nil {
			continue // base name doesn't resolve to a class; C7/C8 report it.
		}
		// A multi-class cycle (A extends B, B extends A) would otherwise
		// splice the two scopes' fork tables into a loop, and any lookup
		// that misses in both would recurse forever. checkClasses' name-
		// based scan (C7) reports the cycle either way, so it's safe to
		// simply decline the reparent here rather than let it corrupt the
		// chain.
		if classSc == baseSc || isAncestorScope(classSc, baseSc) {
			continue
		}
		classSc.Reparent(baseSc)
	}
}

func isAncestorScope(candidate, n *scope.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// locateAnywhere climbs from from to the scope tree's root, then searches
// depth-first for a scope whose local table binds name to a ClassAnnotation,
// returning that class's own scope. It lets a class's extends clause name a
// base declared anywhere in the program, regardless of declaration order.
func locateAnywhere(from *scope.Node, name string) *scope.Node {
	root := rootOf(from)
	return dfsFindClassScope(root, name)
}

func rootOf(n *scope.Node) *scope.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func dfsFindClassScope(n *scope.Node, name string) *scope.Node {
	if n.Table.Contains(name) {
		ann, _ := n.Table.Get(name)
		if ca, ok := ann.(types.ClassAnnotation); ok {
			if cs, ok := ca.ClassScope.(*scope.Node); ok {
				return cs
			}
		}
	}
	for _, child := range n.Children {
		if found := dfsFindClassScope(child, name); found != nil {
			return found
		}
	}
	return nil
}
