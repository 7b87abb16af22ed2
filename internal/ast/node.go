// Package ast defines the Decaf abstract syntax tree: a closed set of
// Decl/Stmt/Expr variants, each modeled as a small struct implementing a
// narrow interface with a type-switch discriminator, never an open class
// hierarchy. Every node carries its source Position and, once C4 has run,
// a back-reference to its enclosing lexical scope and its syntactic parent.
package ast

import (
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/source"
)

// Node is implemented by every AST node. Scope and Parent are mutated
// exactly once, by the scope decorator (C4); before that pass they are nil.
type Node interface {
	Pos() source.Position
	Scope() *scope.Node
	SetScope(*scope.Node)
	Parent() Node
	SetParent(Node)
}

// Base is embedded by every concrete node and supplies the Node methods.
type Base struct {
	Position  source.Position
	ScopeRef  *scope.Node
	ParentRef Node
}

func (b *Base) Pos() source.Position   { return b.Position }
func (b *Base) Scope() *scope.Node     { return b.ScopeRef }
func (b *Base) SetScope(s *scope.Node) { b.ScopeRef = s }
func (b *Base) Parent() Node           { return b.ParentRef }
func (b *Base) SetParent(p Node)       { b.ParentRef = p }

// Decl is a top-level or class/interface-member declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement inside a function body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression; every Expr's type is computed by the type checker
// (C8) via TypeOf, not by a method here — spec.md §3 treats typeof as an
// external collaborator of the AST data model.
type Expr interface {
	Node
	exprNode()
}
