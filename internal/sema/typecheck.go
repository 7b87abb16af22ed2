package sema

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/types"
)

// checkTypes is C8: statement- and declaration-level type checking over the
// whole program, using typeof (typeof.go) to compute expression types.
func checkTypes(program *ast.Program, rep diag.Reporter) {
	for _, d := range program.Decls {
		checkTopDeclTypes(d, rep)
	}
}

func checkTopDeclTypes(d ast.Decl, rep diag.Reporter) {
	switch v := d.(type) {
	case *ast.VarDecl:
		checkVarDeclType(v, rep)
	case *ast.FnDecl:
		checkFnDeclType(v, rep)
	case *ast.ClassDecl:
		for _, ifc := range v.Implements {
			checkTypeExists(v.Scope(), ifc.Pos(), types.NamedType{Name: ifc.Name}, "interface", rep)
		}
		for _, m := range v.Members {
			checkTopDeclTypes(m, rep)
		}
	case *ast.InterfaceDecl:
		for _, m := range v.Members {
			checkFnDeclType(m, rep)
		}
	}
}

func checkVarDeclType(v *ast.VarDecl, rep diag.Reporter) {
	checkTypeExists(v.Scope(), v.Type.Pos(), typeOfSyntax(v.Type), "type", rep)
}

func checkFnDeclType(f *ast.FnDecl, rep diag.Reporter) {
	checkTypeExists(f.Scope(), f.ReturnType.Pos(), typeOfSyntax(f.ReturnType), "type", rep)
	for _, formal := range f.Formals {
		checkVarDeclType(formal, rep)
	}
	if f.Body != nil {
		checkStmtBlock(f.Body, rep)
	}
}

// checkTypeExists reports SemaUndeclaredType when t is (or contains) a
// NamedType that does not resolve to a class or interface in sc's chain.
// Primitive, void, and null types always pass. Receiving an UndeclaredType
// or ErrorType as t is a caller bug — typeOfSyntax never produces either.
func checkTypeExists(sc *scope.Node, pos source.Position, t types.Type, kind string, rep diag.Reporter) bool {
	switch v := t.(type) {
	case types.VoidType, types.IntType, types.DoubleType, types.BoolType, types.StringType, types.NullType:
		return true
	case types.NamedType:
		ann, ok := sc.Table.Get(v.Name)
		if !ok {
			rep.Report(diag.SemaUndeclaredType, diag.SevError, pos, msgUndeclaredType(v.Name, kind), nil, nil)
			return false
		}
		switch ann.(type) {
		case types.ClassAnnotation, types.InterfaceAnnotation:
			return true
		default:
			rep.Report(diag.SemaUndeclaredType, diag.SevError, pos, msgUndeclaredType(v.Name, kind), nil, nil)
			return false
		}
	case types.ArrayType:
		return checkTypeExists(sc, pos, v.Elem, kind, rep)
	default:
		fatalf("checkTypeExists: unexpected type %T", t)
		return false
	}
}

func reportDiagnostic(rep diag.Reporter, d diag.Diagnostic) {
	rep.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
}

func unpackErrorType(et types.ErrorType, rep diag.Reporter) {
	for _, d := range et.Diagnostics {
		reportDiagnostic(rep, d)
	}
}

func checkStmtBlock(b *ast.StmtBlock, rep diag.Reporter) {
	for _, d := range b.Decls {
		checkVarDeclType(d, rep)
	}
	for _, s := range b.Stmts {
		checkStmt(s, rep)
	}
}

func checkStmt(s ast.Stmt, rep diag.Reporter) {
	switch v := s.(type) {
	case *ast.StmtBlock:
		checkStmtBlock(v, rep)
	case *ast.IfStmt:
		checkTestExpr(v.Test, v.Scope(), rep)
		checkStmt(v.Then, rep)
		if v.Else != nil {
			checkStmt(v.Else, rep)
		}
	case *ast.ForStmt:
		if v.Init != nil {
			checkExprStandalone(v.Init, v.Scope(), rep)
		}
		checkTestExpr(v.Test, v.Scope(), rep)
		if v.Step != nil {
			checkExprStandalone(v.Step, v.Scope(), rep)
		}
		checkStmt(v.Body, rep)
	case *ast.WhileStmt:
		checkTestExpr(v.Test, v.Scope(), rep)
		checkStmt(v.Body, rep)
	case *ast.ReturnStmt:
		checkReturnStmt(v, rep)
	case *ast.BreakStmt:
		if !v.Scope().InsideLoop() {
			rep.Report(diag.SemaBreakOutsideLoop, diag.SevError, v.Pos(), msgBreakOutsideLoop(), nil, nil)
		}
	case *ast.PrintStmt:
		checkPrintStmt(v, rep)
	case *ast.ExprStmt:
		checkExprStandalone(v.X, v.Scope(), rep)
	case *ast.SwitchStmt:
		checkExprStandalone(v.Scrutinee, v.Scope(), rep)
		for _, cs := range v.Cases {
			for _, s2 := range cs.Body {
				checkStmt(s2, rep)
			}
		}
	}
}

func checkTestExpr(test ast.Expr, sc *scope.Node, rep diag.Reporter) {
	t := typeof(test, sc)
	if et, ok := t.(types.ErrorType); ok {
		unpackErrorType(et, rep)
		return
	}
	if _, ok := t.(types.BoolType); !ok {
		rep.Report(diag.SemaInvalidTest, diag.SevError, test.Pos(), msgInvalidTest(), nil, nil)
	}
}

func checkExprStandalone(e ast.Expr, sc *scope.Node, rep diag.Reporter) {
	t := typeof(e, sc)
	if et, ok := t.(types.ErrorType); ok {
		unpackErrorType(et, rep)
	}
}

func checkPrintStmt(v *ast.PrintStmt, rep diag.Reporter) {
	for i, arg := range v.Args {
		t := typeof(arg, v.Scope())
		if et, ok := t.(types.ErrorType); ok {
			unpackErrorType(et, rep)
			continue
		}
		switch t.(type) {
		case types.IntType, types.BoolType, types.StringType:
			continue
		default:
			rep.Report(diag.SemaIncompatibleArgument, diag.SevError, arg.Pos(), msgIncompatibleArgument(i+1, t.String()), nil, nil)
		}
	}
}

// findEnclosingFnDecl climbs Parent links — not Scope links — to find the
// function or method a statement appears inside. A statement that is not
// nested inside any FnDecl is an internal invariant violation: every
// reachable statement comes from a parsed function or method body.
func findEnclosingFnDecl(n ast.Node) *ast.FnDecl {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if f, ok := p.(*ast.FnDecl); ok {
			return f
		}
	}
	return nil
}

func checkReturnStmt(v *ast.ReturnStmt, rep diag.Reporter) {
	fn := findEnclosingFnDecl(v)
	if fn == nil {
		fatalf("return statement at %s has no enclosing FnDecl", v.Pos())
	}
	want := typeOfSyntax(fn.ReturnType)

	if v.Value == nil {
		if _, ok := want.(types.VoidType); !ok {
			rep.Report(diag.SemaIncompatibleReturn, diag.SevError, v.Pos(), msgIncompatibleReturn("void", want.String()), nil, nil)
		}
		return
	}

	got := typeof(v.Value, v.Scope())
	if et, ok := got.(types.ErrorType); ok {
		unpackErrorType(et, rep)
		return
	}
	if _, isNull := got.(types.NullType); isNull && types.IsReference(want) {
		return
	}
	if !types.Matches(got, want) {
		rep.Report(diag.SemaIncompatibleReturn, diag.SevError, v.Pos(), msgIncompatibleReturn(got.String(), want.String()), nil, nil)
	}
}
