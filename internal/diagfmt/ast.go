package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hodevin/decaf/internal/ast"
)

// FormatASTPretty renders prog as an indented tree: one declaration,
// statement or expression kind per line, children indented two spaces
// under their parent — the same indent convention FormatScopeTree uses for
// the scope tree.
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	fmt.Fprintln(w, "Program")
	for _, d := range prog.Decls {
		writeDeclPretty(w, d, 1)
	}
	return nil
}

func writeDeclPretty(w io.Writer, d ast.Decl, depth int) {
	ind := indentOf(depth)
	switch n := d.(type) {
	case *ast.VarDecl:
		fmt.Fprintf(w, "%sVarDecl %s %s\n", ind, n.Type.String(), n.Name)
	case *ast.FnDecl:
		fmt.Fprintf(w, "%sFnDecl %s %s(", ind, n.ReturnType.String(), n.Name)
		for i, f := range n.Formals {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%s %s", f.Type.String(), f.Name)
		}
		fmt.Fprintln(w, ")")
		if n.Body != nil {
			writeStmtPretty(w, n.Body, depth+1)
		}
	case *ast.ClassDecl:
		fmt.Fprintf(w, "%sClassDecl %s", ind, n.Name)
		if n.Extends != nil {
			fmt.Fprintf(w, " extends %s", n.Extends.String())
		}
		for i, impl := range n.Implements {
			if i == 0 {
				fmt.Fprint(w, " implements ")
			} else {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, impl.String())
		}
		fmt.Fprintln(w)
		for _, m := range n.Members {
			writeDeclPretty(w, m, depth+1)
		}
	case *ast.InterfaceDecl:
		fmt.Fprintf(w, "%sInterfaceDecl %s\n", ind, n.Name)
		for _, m := range n.Members {
			writeDeclPretty(w, m, depth+1)
		}
	}
}

func writeStmtPretty(w io.Writer, s ast.Stmt, depth int) {
	ind := indentOf(depth)
	switch n := s.(type) {
	case *ast.StmtBlock:
		fmt.Fprintf(w, "%sBlock\n", ind)
		for _, d := range n.Decls {
			writeDeclPretty(w, d, depth+1)
		}
		for _, st := range n.Stmts {
			writeStmtPretty(w, st, depth+1)
		}
	case *ast.IfStmt:
		fmt.Fprintf(w, "%sIf %s\n", ind, exprString(n.Test))
		writeStmtPretty(w, n.Then, depth+1)
		if n.Else != nil {
			fmt.Fprintf(w, "%sElse\n", ind)
			writeStmtPretty(w, n.Else, depth+1)
		}
	case *ast.ForStmt:
		fmt.Fprintf(w, "%sFor %s; %s; %s\n", ind, exprString(n.Init), exprString(n.Test), exprString(n.Step))
		writeStmtPretty(w, n.Body, depth+1)
	case *ast.WhileStmt:
		fmt.Fprintf(w, "%sWhile %s\n", ind, exprString(n.Test))
		writeStmtPretty(w, n.Body, depth+1)
	case *ast.ReturnStmt:
		fmt.Fprintf(w, "%sReturn %s\n", ind, exprString(n.Value))
	case *ast.BreakStmt:
		fmt.Fprintf(w, "%sBreak\n", ind)
	case *ast.PrintStmt:
		fmt.Fprintf(w, "%sPrint(", ind)
		for i, a := range n.Args {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, exprString(a))
		}
		fmt.Fprintln(w, ")")
	case *ast.SwitchStmt:
		fmt.Fprintf(w, "%sSwitch %s\n", ind, exprString(n.Scrutinee))
		for _, c := range n.Cases {
			if c.Value != nil {
				fmt.Fprintf(w, "%sCase %s\n", indentOf(depth+1), exprString(c.Value))
			} else {
				fmt.Fprintf(w, "%sDefault\n", indentOf(depth+1))
			}
			for _, st := range c.Body {
				writeStmtPretty(w, st, depth+2)
			}
		}
	case *ast.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt %s\n", ind, exprString(n.X))
	}
}

// exprString renders an expression inline; full-fidelity pretty-printing of
// expressions (not just their statement/declaration context) is not a
// planned output, so this stays a single flattened line.
func exprString(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch n := e.(type) {
	case *ast.IntLit:
		return fmt.Sprintf("%d", n.Value)
	case *ast.DoubleLit:
		return fmt.Sprintf("%g", n.Value)
	case *ast.BoolLit:
		return fmt.Sprintf("%t", n.Value)
	case *ast.StringLit:
		return fmt.Sprintf("%q", n.Value)
	case *ast.NullLit:
		return "null"
	case *ast.ThisExpr:
		return "this"
	case *ast.IdentExpr:
		return n.Name
	case *ast.AssignExpr:
		return exprString(n.Target) + " = " + exprString(n.Value)
	case *ast.BinaryExpr:
		return exprString(n.Left) + " " + n.Op.String() + " " + exprString(n.Right)
	case *ast.UnaryExpr:
		return n.Op.String() + exprString(n.Operand)
	case *ast.CallExpr:
		s := ""
		if n.Receiver != nil {
			s = exprString(n.Receiver) + "."
		}
		s += n.Name + "("
		for i, a := range n.Args {
			if i > 0 {
				s += ", "
			}
			s += exprString(a)
		}
		return s + ")"
	case *ast.FieldAccessExpr:
		if n.Receiver != nil {
			return exprString(n.Receiver) + "." + n.Name
		}
		return n.Name
	case *ast.ArrayAccessExpr:
		return exprString(n.Array) + "[" + exprString(n.Index) + "]"
	case *ast.NewExpr:
		return "new " + n.ClassName
	case *ast.NewArrayExpr:
		return "NewArray(" + exprString(n.Size) + ", " + n.ElemType.String() + ")"
	case *ast.ReadIntegerExpr:
		return "ReadInteger()"
	case *ast.ReadLineExpr:
		return "ReadLine()"
	default:
		return "?"
	}
}

// astNodeOutput is the JSON projection of an AST node: its kind tag plus
// whichever of these fields that kind uses. Unlike ast.Node itself it
// carries no scope/parent back-references, so it marshals as a plain tree.
type astNodeOutput struct {
	Kind     string          `json:"kind"`
	Name     string          `json:"name,omitempty"`
	Type     string          `json:"type,omitempty"`
	Op       string          `json:"op,omitempty"`
	Value    any             `json:"value,omitempty"`
	Children []astNodeOutput `json:"children,omitempty"`
	Extra    map[string]any  `json:"extra,omitempty"`
}

// FormatASTJSON renders prog's declarations as an indented JSON tree.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	out := make([]astNodeOutput, 0, len(prog.Decls))
	for _, d := range prog.Decls {
		out = append(out, declJSON(d))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func declJSON(d ast.Decl) astNodeOutput {
	switch n := d.(type) {
	case *ast.VarDecl:
		return astNodeOutput{Kind: "VarDecl", Name: n.Name, Type: n.Type.String()}
	case *ast.FnDecl:
		out := astNodeOutput{Kind: "FnDecl", Name: n.Name, Type: n.ReturnType.String()}
		for _, f := range n.Formals {
			out.Children = append(out.Children, declJSON(f))
		}
		if n.Body != nil {
			out.Children = append(out.Children, astNodeOutput{Kind: "Body", Value: blockSummary(n.Body)})
		}
		return out
	case *ast.ClassDecl:
		out := astNodeOutput{Kind: "ClassDecl", Name: n.Name}
		if n.Extends != nil {
			out.Extra = map[string]any{"extends": n.Extends.String()}
		}
		for _, m := range n.Members {
			out.Children = append(out.Children, declJSON(m))
		}
		return out
	case *ast.InterfaceDecl:
		out := astNodeOutput{Kind: "InterfaceDecl", Name: n.Name}
		for _, m := range n.Members {
			out.Children = append(out.Children, declJSON(m))
		}
		return out
	default:
		return astNodeOutput{Kind: "Unknown"}
	}
}

func blockSummary(b *ast.StmtBlock) string {
	return fmt.Sprintf("%d decls, %d stmts", len(b.Decls), len(b.Stmts))
}
