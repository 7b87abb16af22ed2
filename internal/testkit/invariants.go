// Package testkit holds invariant checkers for the properties spec.md §8
// requires of the scope tree and fork-table chain — usable from any
// package's tests without duplicating the walk logic in each one.
package testkit

import (
	"fmt"

	"github.com/hodevin/decaf/internal/scope"
)

// CheckScopeTreeInvariants walks root and verifies the structural
// invariants C2 (ScopeNode) and C6 (inheritance linker re-parenting) both
// depend on:
//
//  1. every node's BoundName is non-empty
//  2. every child's Parent pointer points back at its listed parent
//  3. every child's fork table was forked from (or re-parented onto) its
//     listed parent's table
//  4. the tree has no cycles — no node is reachable from itself
func CheckScopeTreeInvariants(root *scope.Node) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	if root.Parent != nil {
		return fmt.Errorf("root has non-nil parent")
	}
	visited := make(map[*scope.Node]bool)
	return checkNode(root, visited)
}

func checkNode(n *scope.Node, visited map[*scope.Node]bool) error {
	if visited[n] {
		return fmt.Errorf("cycle detected at node %q", n.BoundName)
	}
	visited[n] = true

	if n.BoundName == "" {
		return fmt.Errorf("node has empty BoundName")
	}

	for _, child := range n.Children {
		if child.Parent != n {
			return fmt.Errorf("child %q's Parent does not point back at %q", child.BoundName, n.BoundName)
		}
		if child.Table.Parent() != n.Table {
			return fmt.Errorf("child %q's table is not forked from %q's table", child.BoundName, n.BoundName)
		}
		if err := checkNode(child, visited); err != nil {
			return err
		}
	}
	return nil
}

// CheckNoOrphanNodes verifies every node in all is reachable from root by
// walking Children — a node detached from its old parent by Reparent
// without being attached to a new one would otherwise vanish from
// traversal silently instead of erroring.
func CheckNoOrphanNodes(root *scope.Node, all []*scope.Node) error {
	reachable := make(map[*scope.Node]bool)
	collectReachable(root, reachable)
	for _, n := range all {
		if !reachable[n] {
			return fmt.Errorf("node %q is not reachable from root", n.BoundName)
		}
	}
	return nil
}

func collectReachable(n *scope.Node, reachable map[*scope.Node]bool) {
	reachable[n] = true
	for _, child := range n.Children {
		collectReachable(child, reachable)
	}
}
