// Package scope implements the scope tree (C2): a tree of Node values, each
// wrapping one fork table and the AST node whose lexical scope it
// represents. Nodes are created during the scope-decorator pass, populated
// during declaration collection, and re-parented by the inheritance linker.
package scope

import (
	"github.com/hodevin/decaf/internal/forktable"
	"github.com/hodevin/decaf/internal/types"
)

// Node is one scope in the tree. Statement holds the AST node this scope
// was opened for; it is kept as `any` so this package never imports
// internal/ast (ast imports scope, not the other way around).
type Node struct {
	Table     *forktable.ForkTable[string, types.TypeAnnotation]
	BoundName string
	Parent    *Node
	Statement any
	Children  []*Node
}

// NewRoot creates the program-level scope with an empty table and no parent.
func NewRoot(statement any) *Node {
	return &Node{
		Table:     forktable.New[string, types.TypeAnnotation](),
		BoundName: "Program",
		Statement: statement,
	}
}

// Child appends and returns a new child scope whose table is forked from
// this node's table.
func (n *Node) Child(boundName string, statement any) *Node {
	child := &Node{
		Table:     n.Table.Fork(),
		BoundName: boundName,
		Parent:    n,
		Statement: statement,
	}
	n.Children = append(n.Children, child)
	return child
}

// Reparent detaches n from its current parent's children list, appends it
// to newParent's children, and reparents n's table to newParent's table. A
// node that attempts to reparent to itself is left unchanged; the caller is
// expected to report a diagnostic.
func (n *Node) Reparent(newParent *Node) (ok bool) {
	if newParent == n {
		return false
	}
	if n.Parent != nil {
		siblings := n.Parent.Children
		for i, c := range siblings {
			if c == n {
				n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	n.Parent = newParent
	newParent.Children = append(newParent.Children, n)
	n.Table.Reparent(newParent.Table)
	return true
}

// InsideLoop reports whether n or any ancestor was opened as a loop body.
func (n *Node) InsideLoop() bool {
	for s := n; s != nil; s = s.Parent {
		if s.BoundName == "Loop body" {
			return true
		}
	}
	return false
}
