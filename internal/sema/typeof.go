package sema

import (
	"fmt"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/token"
	"github.com/hodevin/decaf/internal/types"
)

// typeof is the external collaborator spec.md §3 describes: Expr carries no
// typing method of its own, so the type checker (C8) computes an Expr's
// type by switching on its concrete kind. A failure never panics; it
// returns an ErrorType carrying the diagnostic, which composes like any
// other type until a statement-level check unpacks it.
func typeof(e ast.Expr, sc *scope.Node) types.Type {
	switch v := e.(type) {
	case *ast.IntLit:
		return types.IntType{}
	case *ast.DoubleLit:
		return types.DoubleType{}
	case *ast.BoolLit:
		return types.BoolType{}
	case *ast.StringLit:
		return types.StringType{}
	case *ast.NullLit:
		return types.NullType{}
	case *ast.ThisExpr:
		return typeofThis(v, sc)
	case *ast.IdentExpr:
		return typeofIdent(v, sc)
	case *ast.AssignExpr:
		return typeofAssign(v, sc)
	case *ast.BinaryExpr:
		return typeofBinary(v, sc)
	case *ast.UnaryExpr:
		return typeofUnary(v, sc)
	case *ast.CallExpr:
		return typeofCall(v, sc)
	case *ast.FieldAccessExpr:
		return typeofFieldAccess(v, sc)
	case *ast.ArrayAccessExpr:
		return typeofArrayAccess(v, sc)
	case *ast.NewExpr:
		return typeofNew(v, sc)
	case *ast.NewArrayExpr:
		return typeofNewArray(v, sc)
	case *ast.ReadIntegerExpr:
		return types.IntType{}
	case *ast.ReadLineExpr:
		return types.StringType{}
	default:
		fatalf("typeof: unhandled expression %T", e)
		return nil
	}
}

func errorAt(pos source.Position, code diag.Code, msg string) types.Type {
	return types.ErrorType{Diagnostics: []diag.Diagnostic{{
		Severity: diag.SevError, Code: code, Message: msg, Primary: pos,
	}}}
}

// mergeErrors reports whether a or b is already an ErrorType and, if so,
// returns their concatenated ErrorType, so a diagnostic is never dropped
// just because both of a binary expression's operands failed to type.
func mergeErrors(a, b types.Type) (types.Type, bool) {
	ae, aok := a.(types.ErrorType)
	be, bok := b.(types.ErrorType)
	if !aok && !bok {
		return nil, false
	}
	var ds []diag.Diagnostic
	if aok {
		ds = append(ds, ae.Diagnostics...)
	}
	if bok {
		ds = append(ds, be.Diagnostics...)
	}
	return types.ErrorType{Diagnostics: ds}, true
}

func typeofThis(v *ast.ThisExpr, sc *scope.Node) types.Type {
	ann, ok := sc.Table.Get("this")
	if !ok {
		return errorAt(v.Pos(), diag.SemaTypeError, "*** 'this' is not valid outside of a class")
	}
	va, ok := ann.(types.VariableAnnotation)
	if !ok {
		return errorAt(v.Pos(), diag.SemaTypeError, "*** 'this' is not valid outside of a class")
	}
	return va.Type
}

func typeofIdent(v *ast.IdentExpr, sc *scope.Node) types.Type {
	ann, ok := sc.Table.Get(v.Name)
	if !ok {
		return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.Name, "variable"))
	}
	va, ok := ann.(types.VariableAnnotation)
	if !ok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** '%s' is not a variable", v.Name))
	}
	return va.Type
}

func typeofAssign(v *ast.AssignExpr, sc *scope.Node) types.Type {
	tt := typeof(v.Target, sc)
	vt := typeof(v.Value, sc)
	if merged, ok := mergeErrors(tt, vt); ok {
		return merged
	}
	if _, isNull := vt.(types.NullType); isNull && types.IsReference(tt) {
		return tt
	}
	if !types.Matches(vt, tt) {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operands: %s = %s", tt.String(), vt.String()))
	}
	return tt
}

func typeofUnary(v *ast.UnaryExpr, sc *scope.Node) types.Type {
	ot := typeof(v.Operand, sc)
	if et, ok := ot.(types.ErrorType); ok {
		return et
	}
	switch v.Op {
	case token.Minus:
		switch ot.(type) {
		case types.IntType, types.DoubleType:
			return ot
		default:
			return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operand: -%s", ot.String()))
		}
	case token.Bang:
		if _, ok := ot.(types.BoolType); ok {
			return types.BoolType{}
		}
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operand: !%s", ot.String()))
	default:
		fatalf("typeofUnary: unexpected operator %v", v.Op)
		return nil
	}
}

func typeofBinary(v *ast.BinaryExpr, sc *scope.Node) types.Type {
	lt := typeof(v.Left, sc)
	rt := typeof(v.Right, sc)
	if merged, ok := mergeErrors(lt, rt); ok {
		return merged
	}
	switch v.Op {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent:
		return typeofArith(v, lt, rt)
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return typeofRelational(v, lt, rt)
	case token.EqEq, token.BangEq:
		return typeofEquality(v, lt, rt)
	case token.AndAnd, token.OrOr:
		return typeofLogical(v, lt, rt)
	default:
		fatalf("typeofBinary: unexpected operator %v", v.Op)
		return nil
	}
}

func numericKind(t types.Type) (double bool, ok bool) {
	switch t.(type) {
	case types.IntType:
		return false, true
	case types.DoubleType:
		return true, true
	default:
		return false, false
	}
}

func typeofArith(v *ast.BinaryExpr, lt, rt types.Type) types.Type {
	ld, lok := numericKind(lt)
	rd, rok := numericKind(rt)
	if !lok || !rok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operands: %s %s %s", lt.String(), opText(v.Op), rt.String()))
	}
	if ld || rd {
		return types.DoubleType{}
	}
	return types.IntType{}
}

func typeofRelational(v *ast.BinaryExpr, lt, rt types.Type) types.Type {
	_, lok := numericKind(lt)
	_, rok := numericKind(rt)
	if !lok || !rok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operands: %s %s %s", lt.String(), opText(v.Op), rt.String()))
	}
	return types.BoolType{}
}

func typeofEquality(v *ast.BinaryExpr, lt, rt types.Type) types.Type {
	_, lNull := lt.(types.NullType)
	_, rNull := rt.(types.NullType)
	if (lNull && types.IsReference(rt)) || (rNull && types.IsReference(lt)) {
		return types.BoolType{}
	}
	if !types.Matches(lt, rt) && !types.Matches(rt, lt) {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operands: %s %s %s", lt.String(), opText(v.Op), rt.String()))
	}
	return types.BoolType{}
}

func typeofLogical(v *ast.BinaryExpr, lt, rt types.Type) types.Type {
	_, lok := lt.(types.BoolType)
	_, rok := rt.(types.BoolType)
	if !lok || !rok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Incompatible operands: %s %s %s", lt.String(), opText(v.Op), rt.String()))
	}
	return types.BoolType{}
}

func opText(k token.Kind) string {
	switch k {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Percent:
		return "%"
	case token.Lt:
		return "<"
	case token.LtEq:
		return "<="
	case token.Gt:
		return ">"
	case token.GtEq:
		return ">="
	case token.EqEq:
		return "=="
	case token.BangEq:
		return "!="
	case token.AndAnd:
		return "&&"
	case token.OrOr:
		return "||"
	default:
		return "?"
	}
}

// resolveClassScope follows a NamedType back to the class's own scope, so
// member lookups can walk its (possibly inherited) table chain.
func resolveClassScope(sc *scope.Node, className string) (*scope.Node, bool) {
	ann, ok := sc.Table.Get(className)
	if !ok {
		return nil, false
	}
	ca, ok := ann.(types.ClassAnnotation)
	if !ok {
		return nil, false
	}
	cs, ok := ca.ClassScope.(*scope.Node)
	return cs, ok
}

func typeofCall(v *ast.CallExpr, sc *scope.Node) types.Type {
	var method types.MethodAnnotation
	var found bool

	if v.Receiver == nil {
		ann, ok := sc.Table.Get(v.Name)
		if ok {
			method, found = ann.(types.MethodAnnotation)
		}
		if !found {
			return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.Name, "function"))
		}
	} else {
		rt := typeof(v.Receiver, sc)
		if et, ok := rt.(types.ErrorType); ok {
			return et
		}
		nt, ok := rt.(types.NamedType)
		if !ok {
			return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** '%s' is not a class instance", rt.String()))
		}
		classScope, ok := resolveClassScope(sc, nt.Name)
		if !ok {
			return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(nt.Name, "class"))
		}
		ann, ok := classScope.Table.Get(v.Name)
		if ok {
			method, found = ann.(types.MethodAnnotation)
		}
		if !found {
			return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.Name, "method"))
		}
	}

	var diags []diag.Diagnostic
	if len(v.Args) != len(method.FormalTypes) {
		diags = append(diags, diag.Diagnostic{
			Severity: diag.SevError, Code: diag.SemaTypeError, Primary: v.Pos(),
			Message: fmt.Sprintf("*** Function '%s' expects %d arguments but %d given", v.Name, len(method.FormalTypes), len(v.Args)),
		})
	}
	for i, arg := range v.Args {
		at := typeof(arg, sc)
		if et, ok := at.(types.ErrorType); ok {
			diags = append(diags, et.Diagnostics...)
			continue
		}
		if i < len(method.FormalTypes) && !types.Matches(at, method.FormalTypes[i]) {
			diags = append(diags, diag.Diagnostic{
				Severity: diag.SevError, Code: diag.SemaTypeError, Primary: arg.Pos(),
				Message: fmt.Sprintf("*** Incompatible argument %d: %s given, %s expected", i+1, at.String(), method.FormalTypes[i].String()),
			})
		}
	}
	if len(diags) > 0 {
		return types.ErrorType{Diagnostics: diags}
	}
	return method.ReturnType
}

func typeofFieldAccess(v *ast.FieldAccessExpr, sc *scope.Node) types.Type {
	if v.Receiver == nil {
		ann, ok := sc.Table.Get(v.Name)
		if !ok {
			return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.Name, "variable"))
		}
		va, ok := ann.(types.VariableAnnotation)
		if !ok {
			return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** '%s' is not a field", v.Name))
		}
		return va.Type
	}
	rt := typeof(v.Receiver, sc)
	if et, ok := rt.(types.ErrorType); ok {
		return et
	}
	nt, ok := rt.(types.NamedType)
	if !ok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** '%s' is not a class instance", rt.String()))
	}
	classScope, ok := resolveClassScope(sc, nt.Name)
	if !ok {
		return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(nt.Name, "class"))
	}
	ann, ok := classScope.Table.Get(v.Name)
	if !ok {
		return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.Name, "field"))
	}
	va, ok := ann.(types.VariableAnnotation)
	if !ok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** '%s' is not a field", v.Name))
	}
	return va.Type
}

func typeofArrayAccess(v *ast.ArrayAccessExpr, sc *scope.Node) types.Type {
	at := typeof(v.Array, sc)
	it := typeof(v.Index, sc)
	if merged, ok := mergeErrors(at, it); ok {
		return merged
	}
	arr, ok := at.(types.ArrayType)
	if !ok {
		return errorAt(v.Pos(), diag.SemaTypeError, fmt.Sprintf("*** '%s' is not an array", at.String()))
	}
	if _, ok := it.(types.IntType); !ok {
		return errorAt(v.Index.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Array subscript must be an integer, given %s", it.String()))
	}
	return arr.Elem
}

func typeofNew(v *ast.NewExpr, sc *scope.Node) types.Type {
	ann, ok := sc.Table.Get(v.ClassName)
	if !ok {
		return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.ClassName, "class"))
	}
	if _, ok := ann.(types.ClassAnnotation); !ok {
		return errorAt(v.Pos(), diag.SemaUndeclaredType, msgUndeclaredType(v.ClassName, "class"))
	}
	return types.NamedType{Name: v.ClassName}
}

func typeofNewArray(v *ast.NewArrayExpr, sc *scope.Node) types.Type {
	st := typeof(v.Size, sc)
	if et, ok := st.(types.ErrorType); ok {
		return et
	}
	if _, ok := st.(types.IntType); !ok {
		return errorAt(v.Size.Pos(), diag.SemaTypeError, fmt.Sprintf("*** Array size must be an integer, given %s", st.String()))
	}
	return types.ArrayType{Elem: typeOfSyntax(v.ElemType)}
}
