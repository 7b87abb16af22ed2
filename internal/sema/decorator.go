package sema

import (
	"fmt"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/scope"
)

// decorate is C4: it walks program once, assigning every node's Scope and
// Parent back-references exactly once. Per spec.md §4.2, only the shapes
// named there open a new child scope; every other node inherits the scope
// of whichever call decorated it. decorate also wires ast.Node.Parent
// (distinct from Scope) throughout, since C8's findEnclosingFnDecl climbs
// Parent links rather than Scope links.
func decorate(program *ast.Program, root *scope.Node) {
	program.SetParent(nil)
	program.SetScope(root)
	for _, d := range program.Decls {
		decorateTopDecl(d, program, root)
	}
}

func decorateTopDecl(d ast.Decl, parent ast.Node, sc *scope.Node) {
	switch v := d.(type) {
	case *ast.VarDecl:
		v.SetParent(parent)
		v.SetScope(sc)
		decorateGeneric(v.Type, v, sc)
	case *ast.FnDecl:
		decorateFnDecl(v, parent, sc)
	case *ast.ClassDecl:
		v.SetParent(parent)
		classSc := sc.Child("Class Declaration of "+v.Name, v)
		v.SetScope(classSc)
		if v.Extends != nil {
			decorateGeneric(v.Extends, v, classSc)
		}
		for _, iface := range v.Implements {
			decorateGeneric(iface, v, classSc)
		}
		for _, m := range v.Members {
			decorateClassMember(m, v, classSc)
		}
	case *ast.InterfaceDecl:
		v.SetParent(parent)
		ifaceSc := sc.Child("Interface Declaration of "+v.Name, v)
		v.SetScope(ifaceSc)
		for _, m := range v.Members {
			decorateFnDecl(m, v, ifaceSc)
		}
	}
}

func decorateClassMember(m ast.Decl, parent ast.Node, classSc *scope.Node) {
	switch v := m.(type) {
	case *ast.VarDecl:
		v.SetParent(parent)
		v.SetScope(classSc)
		decorateGeneric(v.Type, v, classSc)
	case *ast.FnDecl:
		decorateFnDecl(v, parent, classSc)
	}
}

// decorateFnDecl sets f's own Scope to enclosing (per spec.md §4.3's
// explicit distinction between "enclosing" and "the formals scope"), then
// opens the formals sub-scope and, if a body is present, the nested body
// sub-scope.
func decorateFnDecl(f *ast.FnDecl, parent ast.Node, enclosing *scope.Node) {
	f.SetParent(parent)
	f.SetScope(enclosing)
	decorateGeneric(f.ReturnType, f, enclosing)

	formalsSc := enclosing.Child(fmt.Sprintf("FnDecl (formals) %s", f.Name), f)
	for _, formal := range f.Formals {
		formal.SetParent(f)
		formal.SetScope(formalsSc)
		decorateGeneric(formal.Type, formal, formalsSc)
	}

	if f.Body != nil {
		bodySc := formalsSc.Child(fmt.Sprintf("FnDecl (body) %s", f.Name), f.Body)
		decorateStmtBlockContents(f.Body, f, bodySc)
	}
}

// decorateStmtBlockContents decorates b's own Decls/Stmts using a scope
// that has already been created for b (either a fn-body scope, a loop/test
// body scope, or a Subblock scope) — b itself never opens a further scope.
func decorateStmtBlockContents(b *ast.StmtBlock, parent ast.Node, sc *scope.Node) {
	b.SetParent(parent)
	b.SetScope(sc)
	for _, d := range b.Decls {
		d.SetParent(b)
		d.SetScope(sc)
		decorateGeneric(d.Type, d, sc)
	}
	for _, s := range b.Stmts {
		decorateStmt(s, b, sc)
	}
}

// decorateStmt decorates one statement appearing directly inside a block at
// the ambient scope sc (i.e. not itself the body of an if/for/while, which
// have their own decorateBody/decorateElseBody treatment).
func decorateStmt(s ast.Stmt, parent ast.Node, sc *scope.Node) {
	switch v := s.(type) {
	case *ast.StmtBlock:
		sub := sc.Child("Subblock", v)
		decorateStmtBlockContents(v, parent, sub)
	case *ast.IfStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		decorateGeneric(v.Test, v, sc)
		decorateBody(v.Then, v, sc, "Test body")
		if v.Else != nil {
			decorateElseBody(v.Else, v, sc)
		}
	case *ast.ForStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		if v.Init != nil {
			decorateGeneric(v.Init, v, sc)
		}
		decorateGeneric(v.Test, v, sc)
		if v.Step != nil {
			decorateGeneric(v.Step, v, sc)
		}
		decorateBody(v.Body, v, sc, "Loop body")
	case *ast.WhileStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		decorateGeneric(v.Test, v, sc)
		decorateBody(v.Body, v, sc, "Loop body")
	case *ast.ReturnStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		if v.Value != nil {
			decorateGeneric(v.Value, v, sc)
		}
	case *ast.BreakStmt:
		v.SetParent(parent)
		v.SetScope(sc)
	case *ast.PrintStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		for _, a := range v.Args {
			decorateGeneric(a, v, sc)
		}
	case *ast.ExprStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		decorateGeneric(v.X, v, sc)
	case *ast.SwitchStmt:
		v.SetParent(parent)
		v.SetScope(sc)
		decorateGeneric(v.Scrutinee, v, sc)
		for _, cs := range v.Cases {
			cs.SetParent(v)
			cs.SetScope(sc)
			if cs.Value != nil {
				decorateGeneric(cs.Value, cs, sc)
			}
			for _, s2 := range cs.Body {
				decorateStmt(s2, cs, sc)
			}
		}
	}
}

// decorateBody always opens a new child scope named boundName for an
// if-then or loop body, per spec.md §4.2's table — unconditionally, whether
// the body is itself a StmtBlock or a single bare statement.
func decorateBody(s ast.Stmt, parent ast.Node, enclosing *scope.Node, boundName string) {
	sub := enclosing.Child(boundName, s)
	if blk, ok := s.(*ast.StmtBlock); ok {
		decorateStmtBlockContents(blk, parent, sub)
		return
	}
	decorateStmt(s, parent, sub)
}

// decorateElseBody opens a "Subblock" scope only when the else-clause is
// itself a StmtBlock; a bare statement else (e.g. an else-if chain) simply
// inherits the enclosing scope, per spec.md §4.2's table.
func decorateElseBody(s ast.Stmt, parent ast.Node, enclosing *scope.Node) {
	if blk, ok := s.(*ast.StmtBlock); ok {
		sub := enclosing.Child("Subblock", blk)
		decorateStmtBlockContents(blk, parent, sub)
		return
	}
	decorateStmt(s, parent, enclosing)
}

// decorateGeneric handles the closed set of nodes that never open a scope
// of their own — expressions and type syntax — by setting Parent/Scope and
// recursing uniformly over ast.Children. Neither ever appears in spec.md
// §4.2's scope-opening table, so "inherit the enclosing scope" is the only
// rule needed, with no special-casing for e.g. a unary expression's
// missing left operand (spec.md §9's open question 4).
func decorateGeneric(n ast.Node, parent ast.Node, sc *scope.Node) {
	if n == nil {
		return
	}
	n.SetParent(parent)
	n.SetScope(sc)
	for _, c := range ast.Children(n) {
		decorateGeneric(c, n, sc)
	}
}
