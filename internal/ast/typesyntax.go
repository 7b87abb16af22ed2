package ast

// TypeSyntaxKind discriminates the syntactic type forms the parser can
// produce, per SPEC_FULL.md §4.9.1's Type production.
type TypeSyntaxKind uint8

const (
	TypeSyntaxVoid TypeSyntaxKind = iota
	TypeSyntaxInt
	TypeSyntaxDouble
	TypeSyntaxBool
	TypeSyntaxString
	TypeSyntaxNamed
	TypeSyntaxArray
)

// TypeSyntax is the as-parsed spelling of a type: a primitive keyword, a
// named class/interface reference, or an array of another TypeSyntax. It is
// distinct from types.Type, the resolved semantic type C8 computes from it.
type TypeSyntax struct {
	Base
	Kind TypeSyntaxKind
	Name string      // set when Kind == TypeSyntaxNamed
	Elem *TypeSyntax // set when Kind == TypeSyntaxArray
}

func (t *TypeSyntax) String() string {
	switch t.Kind {
	case TypeSyntaxVoid:
		return "void"
	case TypeSyntaxInt:
		return "int"
	case TypeSyntaxDouble:
		return "double"
	case TypeSyntaxBool:
		return "bool"
	case TypeSyntaxString:
		return "string"
	case TypeSyntaxNamed:
		return t.Name
	case TypeSyntaxArray:
		return t.Elem.String() + "[]"
	default:
		return "?"
	}
}
