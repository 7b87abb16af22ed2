package ast

import "github.com/hodevin/decaf/internal/token"

// Literals.

type IntLit struct {
	Base
	Value int64
}

func (*IntLit) exprNode() {}

type DoubleLit struct {
	Base
	Value float64
}

func (*DoubleLit) exprNode() {}

type BoolLit struct {
	Base
	Value bool
}

func (*BoolLit) exprNode() {}

type StringLit struct {
	Base
	Value string
}

func (*StringLit) exprNode() {}

// NullLit is Decaf's "null" literal, assignable to any reference type.
type NullLit struct {
	Base
}

func (*NullLit) exprNode() {}

// ThisExpr is "this" inside a method body.
type ThisExpr struct {
	Base
}

func (*ThisExpr) exprNode() {}

// IdentExpr references a variable, field, or formal by name.
type IdentExpr struct {
	Base
	Name string
}

func (*IdentExpr) exprNode() {}

// AssignExpr is "Target = Value".
type AssignExpr struct {
	Base
	Target Expr
	Value  Expr
}

func (*AssignExpr) exprNode() {}

// BinaryExpr covers arithmetic, relational, and logical binary operators.
type BinaryExpr struct {
	Base
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr covers unary minus and logical not. Modeling unary and binary
// operators as distinct node types (rather than one compound-expression
// node with an optional left operand) sidesteps the "may the left operand
// be absent" ambiguity raised in spec.md §9: a UnaryExpr always has exactly
// one Operand.
type UnaryExpr struct {
	Base
	Op      token.Kind
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// CallExpr is a method or function call. Receiver is nil for a call to a
// top-level function or an implicit-this method call.
type CallExpr struct {
	Base
	Receiver Expr
	Name     string
	Args     []Expr
}

func (*CallExpr) exprNode() {}

// FieldAccessExpr reads a field. Receiver is nil for an unqualified field
// reference resolved through the enclosing scope chain.
type FieldAccessExpr struct {
	Base
	Receiver Expr
	Name     string
}

func (*FieldAccessExpr) exprNode() {}

// ArrayAccessExpr is "Array[Index]".
type ArrayAccessExpr struct {
	Base
	Array Expr
	Index Expr
}

func (*ArrayAccessExpr) exprNode() {}

// NewExpr allocates a new instance of a named class.
type NewExpr struct {
	Base
	ClassName string
}

func (*NewExpr) exprNode() {}

// NewArrayExpr allocates an array of ElemType with the given size.
type NewArrayExpr struct {
	Base
	Size     Expr
	ElemType *TypeSyntax
}

func (*NewArrayExpr) exprNode() {}

// ReadIntegerExpr is the built-in "ReadInteger()".
type ReadIntegerExpr struct {
	Base
}

func (*ReadIntegerExpr) exprNode() {}

// ReadLineExpr is the built-in "ReadLine()".
type ReadLineExpr struct {
	Base
}

func (*ReadLineExpr) exprNode() {}
