package sema

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/types"
)

// collect is C5: it walks the decorated tree and populates every scope's
// table with the names declared directly in it, at every nesting depth —
// not just Program-level declarations (spec.md §9, open question 2).
func collect(program *ast.Program, rep diag.Reporter) {
	for _, d := range program.Decls {
		processTopDecl(d, rep)
	}
}

func processTopDecl(d ast.Decl, rep diag.Reporter) {
	switch v := d.(type) {
	case *ast.VarDecl:
		processVarDecl(v, rep)
	case *ast.FnDecl:
		processFnDecl(v, rep)
	case *ast.ClassDecl:
		processClassDecl(v, rep)
	case *ast.InterfaceDecl:
		processInterfaceDecl(v, rep)
	}
}

// localConflict reports whether name is already bound in sc's own layer
// (ignoring the parent chain), returning the existing binding if so.
func localConflict(sc *scope.Node, name string) (types.TypeAnnotation, bool) {
	if !sc.Table.Contains(name) {
		return nil, false
	}
	v, _ := sc.Table.Get(name)
	return v, true
}

func processVarDecl(v *ast.VarDecl, rep diag.Reporter) {
	sc := v.Scope()
	if existing, ok := localConflict(sc, v.Name); ok {
		rep.Report(diag.SemaConflictingDecl, diag.SevError, v.Pos(), msgConflictingDecl(v.Name, existing.Where().Line), nil, nil)
		return
	}
	sc.Table.Put(v.Name, types.VariableAnnotation{Name: v.Name, Type: typeOfSyntax(v.Type), Pos: v.Pos()})
}

func processFnDecl(f *ast.FnDecl, rep diag.Reporter) {
	sc := f.Scope()
	if existing, ok := localConflict(sc, f.Name); ok {
		rep.Report(diag.SemaConflictingDecl, diag.SevError, f.Pos(), msgConflictingDecl(f.Name, existing.Where().Line), nil, nil)
		return
	}
	formalTypes := make([]types.Type, len(f.Formals))
	for i, formal := range f.Formals {
		formalTypes[i] = typeOfSyntax(formal.Type)
	}
	sc.Table.Put(f.Name, types.MethodAnnotation{
		Name:        f.Name,
		ReturnType:  typeOfSyntax(f.ReturnType),
		FormalTypes: formalTypes,
		Pos:         f.Pos(),
	})
	for _, formal := range f.Formals {
		processVarDecl(formal, rep)
	}
	if f.Body != nil {
		collectStmtBlock(f.Body, rep)
	}
}

func processClassDecl(c *ast.ClassDecl, rep diag.Reporter) {
	classSc := c.Scope() // C4 assigned the class's own scope here.
	parentSc := classSc.Parent

	if classSc.Table.Contains("this") {
		fatalf("class scope for %q already bound \"this\" before declaration collection", c.Name)
	}
	classSc.Table.Put("this", types.VariableAnnotation{
		Name: "this", Type: types.NamedType{Name: c.Name}, Pos: c.Pos(),
	})

	for _, m := range c.Members {
		processTopDecl(m, rep)
	}

	var extends *types.NamedType
	if c.Extends != nil {
		n := types.NamedType{Name: c.Extends.Name}
		extends = &n
	}
	implements := make([]types.NamedType, len(c.Implements))
	for i, ifc := range c.Implements {
		implements[i] = types.NamedType{Name: ifc.Name}
	}

	if existing, ok := localConflict(parentSc, c.Name); ok {
		rep.Report(diag.SemaConflictingDecl, diag.SevError, c.Pos(), msgConflictingDecl(c.Name, existing.Where().Line), nil, nil)
		return
	}
	parentSc.Table.Put(c.Name, types.ClassAnnotation{
		Type: types.NamedType{Name: c.Name}, Extends: extends, Implements: implements,
		ClassScope: classSc, Pos: c.Pos(),
	})
}

func processInterfaceDecl(i *ast.InterfaceDecl, rep diag.Reporter) {
	ifaceSc := i.Scope()
	parentSc := ifaceSc.Parent

	for _, m := range i.Members {
		processFnDecl(m, rep)
	}

	if existing, ok := localConflict(parentSc, i.Name); ok {
		rep.Report(diag.SemaConflictingDecl, diag.SevError, i.Pos(), msgConflictingDecl(i.Name, existing.Where().Line), nil, nil)
		return
	}
	parentSc.Table.Put(i.Name, types.InterfaceAnnotation{
		Type: types.NamedType{Name: i.Name}, InterfaceScope: ifaceSc, Pos: i.Pos(),
	})
}

// collectStmtBlock recurses into a block's own local declarations and,
// transitively, every nested block's (if/for/while bodies, switch cases,
// subblocks) — declarations inside expressions never occur, so expression
// trees are not walked here.
func collectStmtBlock(b *ast.StmtBlock, rep diag.Reporter) {
	for _, d := range b.Decls {
		processVarDecl(d, rep)
	}
	for _, s := range b.Stmts {
		collectStmt(s, rep)
	}
}

func collectStmt(s ast.Stmt, rep diag.Reporter) {
	switch v := s.(type) {
	case *ast.StmtBlock:
		collectStmtBlock(v, rep)
	case *ast.IfStmt:
		collectStmt(v.Then, rep)
		if v.Else != nil {
			collectStmt(v.Else, rep)
		}
	case *ast.ForStmt:
		collectStmt(v.Body, rep)
	case *ast.WhileStmt:
		collectStmt(v.Body, rep)
	case *ast.SwitchStmt:
		for _, cs := range v.Cases {
			for _, s2 := range cs.Body {
				collectStmt(s2, rep)
			}
		}
	}
}
