package types

import (
	"fmt"
	"strings"

	"github.com/hodevin/decaf/internal/source"
)

// TypeAnnotation is the symbol-table value stored for every declared name:
// a closed tagged union over what kind of thing was declared.
type TypeAnnotation interface {
	// Matches reports structural compatibility with another annotation of
	// the same kind (variables by type, methods by signature, class/
	// interface by named type). Mismatched kinds never match.
	Matches(other TypeAnnotation) bool
	Where() source.Position
	// String renders the annotation the way the scope-tree pretty-printer
	// shows a table entry's value.
	String() string
	isAnnotation()
}

// VariableAnnotation describes a declared variable, formal, or field.
type VariableAnnotation struct {
	Name string
	Type Type
	Pos  source.Position
}

func (v VariableAnnotation) Matches(other TypeAnnotation) bool {
	o, ok := other.(VariableAnnotation)
	return ok && Matches(v.Type, o.Type)
}
func (v VariableAnnotation) Where() source.Position { return v.Pos }
func (v VariableAnnotation) String() string          { return v.Type.String() }
func (VariableAnnotation) isAnnotation()             {}

// MethodAnnotation describes a declared or inherited method signature.
type MethodAnnotation struct {
	Name        string
	ReturnType  Type
	FormalTypes []Type
	Pos         source.Position
}

func (m MethodAnnotation) Matches(other TypeAnnotation) bool {
	o, ok := other.(MethodAnnotation)
	if !ok || !Equals(m.ReturnType, o.ReturnType) || len(m.FormalTypes) != len(o.FormalTypes) {
		return false
	}
	for i, t := range m.FormalTypes {
		if !Equals(t, o.FormalTypes[i]) {
			return false
		}
	}
	return true
}
func (m MethodAnnotation) Where() source.Position { return m.Pos }
func (m MethodAnnotation) String() string {
	formals := make([]string, len(m.FormalTypes))
	for i, t := range m.FormalTypes {
		formals[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", m.ReturnType.String(), strings.Join(formals, ", "))
}
func (MethodAnnotation) isAnnotation() {}

// ClassAnnotation describes a declared class. ClassScope holds the
// *scope.Node governing the class body; it is kept as `any` here so that
// the types package does not import scope (scope instantiates ForkTable
// with types.TypeAnnotation as its value type, so the dependency can only
// run one way). Callers in internal/sema cast it back to *scope.Node.
type ClassAnnotation struct {
	Type       NamedType
	Extends    *NamedType
	Implements []NamedType
	ClassScope any
	Pos        source.Position
}

func (c ClassAnnotation) Matches(other TypeAnnotation) bool {
	o, ok := other.(ClassAnnotation)
	return ok && c.Type.Name == o.Type.Name
}
func (c ClassAnnotation) Where() source.Position { return c.Pos }
func (c ClassAnnotation) String() string {
	s := "class " + c.Type.Name
	if c.Extends != nil {
		s += " extends " + c.Extends.Name
	}
	if len(c.Implements) > 0 {
		names := make([]string, len(c.Implements))
		for i, impl := range c.Implements {
			names[i] = impl.Name
		}
		s += " implements " + strings.Join(names, ", ")
	}
	return s
}
func (ClassAnnotation) isAnnotation() {}

// InterfaceAnnotation describes a declared interface.
type InterfaceAnnotation struct {
	Type           NamedType
	InterfaceScope any
	Pos            source.Position
}

func (i InterfaceAnnotation) Matches(other TypeAnnotation) bool {
	o, ok := other.(InterfaceAnnotation)
	return ok && i.Type.Name == o.Type.Name
}
func (i InterfaceAnnotation) Where() source.Position { return i.Pos }
func (i InterfaceAnnotation) String() string          { return "interface " + i.Type.Name }
func (InterfaceAnnotation) isAnnotation()             {}
