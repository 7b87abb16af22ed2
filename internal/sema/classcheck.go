package sema

import (
	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/types"
)

// checkClasses is C7: cyclic-inheritance detection, extends well-formedness,
// interface conformance, and override signature checking.
func checkClasses(program *ast.Program, rep diag.Reporter) {
	reportedCycles := map[string]bool{}
	for _, d := range program.Decls {
		c, ok := d.(*ast.ClassDecl)
		if !ok {
			continue
		}
		checkCyclicInheritance(c, reportedCycles, rep)
		checkExtendsWellFormed(c, rep)
		checkImplementsConformance(c, rep)
		checkOverrides(c, rep)
	}
}

// checkCyclicInheritance walks the extends chain starting at c, following
// each class's Extends name through the program's root table. A name that
// repeats closes a cycle; the diagnostic is attributed to that name's own
// declaration (the "seen-head"), deduplicated across every class whose
// chain passes through it, so a cycle of several classes is reported once.
func checkCyclicInheritance(c *ast.ClassDecl, reported map[string]bool, rep diag.Reporter) {
	root := rootOf(c.Scope())
	seen := map[string]bool{c.Name: true}
	var cur *types.NamedType
	if c.Extends != nil {
		cur = &types.NamedType{Name: c.Extends.Name}
	}
	for cur != nil {
		name := cur.Name
		if seen[name] {
			if !reported[name] {
				reported[name] = true
				pos := c.Pos()
				if ann, ok := root.Table.Get(name); ok {
					pos = ann.Where()
				}
				rep.Report(diag.SemaIllegalClassInheritanceCycle, diag.SevError, pos, msgIllegalCycle(name, pos.Line), nil, nil)
			}
			return
		}
		seen[name] = true
		ann, ok := root.Table.Get(name)
		if !ok {
			return
		}
		ca, ok := ann.(types.ClassAnnotation)
		if !ok {
			return
		}
		cur = ca.Extends
	}
}

func checkExtendsWellFormed(c *ast.ClassDecl, rep diag.Reporter) {
	if c.Extends == nil {
		return
	}
	checkTypeExists(c.Scope(), c.Extends.Pos(), types.NamedType{Name: c.Extends.Name}, "class", rep)
}

// checkImplementsConformance mirrors spec.md §9's open-question-1
// resolution: a missing method is silently skipped (preserving the
// original compiler's behavior), but a method present with a mismatched
// signature is reported twice, once naming the bad signature and once
// naming the unmet interface.
func checkImplementsConformance(c *ast.ClassDecl, rep diag.Reporter) {
	classSc := c.Scope()
	for _, ifaceTS := range c.Implements {
		ann, ok := classSc.Table.Get(ifaceTS.Name)
		if !ok {
			continue
		}
		ifaceAnn, ok := ann.(types.InterfaceAnnotation)
		if !ok {
			continue
		}
		ifaceScope, ok := ifaceAnn.InterfaceScope.(*scope.Node)
		if !ok {
			continue
		}
		for _, entry := range ifaceScope.Table.Local() {
			found, ok := classSc.Table.Get(entry.Key)
			if !ok {
				continue
			}
			if entry.Value.Matches(found) {
				continue
			}
			rep.Report(diag.SemaTypeSignature, diag.SevError, c.Pos(), msgTypeSignature(entry.Key), nil, nil)
			rep.Report(diag.SemaUnimplementedInterface, diag.SevError, c.Pos(), msgUnimplementedInterface(c.Name, ifaceTS.Name), nil, nil)
		}
	}
}

// CheckFullInterfaceConformance is the secondary, opt-in pass spec.md §9's
// open question 1 describes: unlike checkImplementsConformance, a method
// the interface declares but the class never defines is itself reported,
// rather than silently skipped. Callers that want strict conformance
// checking (e.g. a linter mode) run this instead of, or in addition to,
// the default pass.
func CheckFullInterfaceConformance(program *ast.Program) []diag.Diagnostic {
	bag := diag.NewBag(1 << 16)
	rep := diag.BagReporter{Bag: bag}
	for _, d := range program.Decls {
		c, ok := d.(*ast.ClassDecl)
		if !ok {
			continue
		}
		classSc := c.Scope()
		for _, ifaceTS := range c.Implements {
			ann, ok := classSc.Table.Get(ifaceTS.Name)
			if !ok {
				continue
			}
			ifaceAnn, ok := ann.(types.InterfaceAnnotation)
			if !ok {
				continue
			}
			ifaceScope, ok := ifaceAnn.InterfaceScope.(*scope.Node)
			if !ok {
				continue
			}
			for _, entry := range ifaceScope.Table.Local() {
				found, ok := classSc.Table.Get(entry.Key)
				if !ok || !entry.Value.Matches(found) {
					rep.Report(diag.SemaUnimplementedInterface, diag.SevError, c.Pos(), msgUnimplementedInterface(c.Name, ifaceTS.Name), nil, nil)
				}
			}
		}
	}
	return bag.Items()
}

// checkOverrides only applies to classes that extend another class; a
// class scope always has a non-nil table parent (it was forked from its
// enclosing scope even with no extends clause), so the guard keeps a
// coincidental name collision with an unrelated outer declaration from
// being mistaken for an override mismatch.
func checkOverrides(c *ast.ClassDecl, rep diag.Reporter) {
	if c.Extends == nil {
		return
	}
	classSc := c.Scope()
	parentTable := classSc.Table.Parent()
	if parentTable == nil {
		return
	}
	for _, entry := range classSc.Table.Local() {
		if entry.Key == "this" {
			continue
		}
		inherited, ok := parentTable.Get(entry.Key)
		if !ok {
			continue
		}
		if !entry.Value.Matches(inherited) {
			rep.Report(diag.SemaTypeSignature, diag.SevError, c.Pos(), msgTypeSignature(entry.Key), nil, nil)
		}
	}
}
