package diagfmt_test

import (
	"strings"
	"testing"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diagfmt"
)

func intType() *ast.TypeSyntax  { return &ast.TypeSyntax{Kind: ast.TypeSyntaxInt} }
func voidType() *ast.TypeSyntax { return &ast.TypeSyntax{Kind: ast.TypeSyntaxVoid} }

func sampleProgram() *ast.Program {
	main := &ast.FnDecl{
		Name:       "main",
		ReturnType: voidType(),
		Body: &ast.StmtBlock{
			Decls: []*ast.VarDecl{{Name: "x", Type: intType()}},
			Stmts: []ast.Stmt{
				&ast.PrintStmt{Args: []ast.Expr{&ast.IntLit{Value: 1}}},
			},
		},
	}
	class := &ast.ClassDecl{
		Name:    "Program",
		Members: []ast.Decl{main},
	}
	return &ast.Program{Decls: []ast.Decl{class}}
}

func TestFormatASTPrettyRendersNestedDecls(t *testing.T) {
	var buf strings.Builder
	if err := diagfmt.FormatASTPretty(&buf, sampleProgram()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"Program", "ClassDecl Program", "FnDecl void main()", "VarDecl int x", "Print(1)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestFormatASTJSONRendersNestedDecls(t *testing.T) {
	var buf strings.Builder
	if err := diagfmt.FormatASTJSON(&buf, sampleProgram()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{`"kind": "ClassDecl"`, `"kind": "FnDecl"`, `"name": "main"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected JSON output to contain %q, got:\n%s", want, got)
		}
	}
}
