package sema

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/types"
)

// typeOfSyntax maps a parsed TypeSyntax to its semantic Type without
// validating that a named reference actually resolves — that is
// checkTypeExists's job (C7/C8), run separately once the declaration and
// inheritance passes have populated the scope tree.
func typeOfSyntax(ts *ast.TypeSyntax) types.Type {
	switch ts.Kind {
	case ast.TypeSyntaxVoid:
		return types.VoidType{}
	case ast.TypeSyntaxInt:
		return types.IntType{}
	case ast.TypeSyntaxDouble:
		return types.DoubleType{}
	case ast.TypeSyntaxBool:
		return types.BoolType{}
	case ast.TypeSyntaxString:
		return types.StringType{}
	case ast.TypeSyntaxNamed:
		return types.NamedType{Name: ts.Name}
	case ast.TypeSyntaxArray:
		return types.ArrayType{Elem: typeOfSyntax(ts.Elem)}
	default:
		fatalf("typeOfSyntax: unexpected TypeSyntaxKind %v", ts.Kind)
		return nil
	}
}
