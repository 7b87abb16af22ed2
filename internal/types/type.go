// Package types models Decaf's type system: the Type tagged union used to
// annotate expressions and declarations, and the TypeAnnotation tagged
// union stored as symbol-table values.
package types

import "github.com/hodevin/decaf/internal/diag"

// Type is a closed tagged union; every case below implements it and a
// type switch on the concrete struct is the only way to discriminate.
type Type interface {
	// String renders the type the way diagnostics name it ("int", "A[]", ...).
	String() string
	isType()
}

type VoidType struct{}
type IntType struct{}
type DoubleType struct{}
type BoolType struct{}
type StringType struct{}
type NullType struct{}

// NamedType references a declared class or interface by name.
type NamedType struct {
	Name string
}

// ArrayType is an array of Elem.
type ArrayType struct {
	Elem Type
}

// UndeclaredType stands in for a type name that failed to resolve; it lets
// later checks proceed without re-reporting the same missing declaration.
type UndeclaredType struct {
	Name string
}

// ErrorType carries the diagnostics produced while typing an expression so
// they can propagate through further composition without being lost, and
// be unpacked into the top-level diagnostic list exactly once.
type ErrorType struct {
	Diagnostics []diag.Diagnostic
}

func (VoidType) isType()         {}
func (IntType) isType()          {}
func (DoubleType) isType()       {}
func (BoolType) isType()         {}
func (StringType) isType()       {}
func (NullType) isType()         {}
func (NamedType) isType()        {}
func (ArrayType) isType()        {}
func (UndeclaredType) isType()   {}
func (ErrorType) isType()        {}

func (VoidType) String() string   { return "void" }
func (IntType) String() string    { return "int" }
func (DoubleType) String() string { return "double" }
func (BoolType) String() string   { return "bool" }
func (StringType) String() string { return "string" }
func (NullType) String() string   { return "null" }
func (t NamedType) String() string { return t.Name }
func (t ArrayType) String() string { return t.Elem.String() + "[]" }
func (t UndeclaredType) String() string { return t.Name }
func (ErrorType) String() string  { return "error" }

// Equals reports structural equality with no widening applied.
func Equals(a, b Type) bool {
	switch av := a.(type) {
	case VoidType:
		_, ok := b.(VoidType)
		return ok
	case IntType:
		_, ok := b.(IntType)
		return ok
	case DoubleType:
		_, ok := b.(DoubleType)
		return ok
	case BoolType:
		_, ok := b.(BoolType)
		return ok
	case StringType:
		_, ok := b.(StringType)
		return ok
	case NullType:
		_, ok := b.(NullType)
		return ok
	case NamedType:
		bv, ok := b.(NamedType)
		return ok && av.Name == bv.Name
	case ArrayType:
		bv, ok := b.(ArrayType)
		return ok && Equals(av.Elem, bv.Elem)
	case UndeclaredType:
		bv, ok := b.(UndeclaredType)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}

// Matches is Equals plus the single implicit-widening rule: an int value is
// assignable to a double target. No other conversions exist, and the
// widening is one-directional — a double value does not match an int
// target.
func Matches(a, b Type) bool {
	if Equals(a, b) {
		return true
	}
	_, aInt := a.(IntType)
	_, bDouble := b.(DoubleType)
	return aInt && bDouble
}

// IsReference reports whether a value of t can be null: classes, interfaces,
// arrays, and the null type itself.
func IsReference(t Type) bool {
	switch t.(type) {
	case NamedType, ArrayType, NullType:
		return true
	default:
		return false
	}
}
