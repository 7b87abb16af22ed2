// Package sema implements the semantic analysis core of the Decaf compiler
// front end: the scope decorator, declaration collector, inheritance
// linker, class checker, and type checker (C4 through C8).
package sema

import (
	"fmt"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
)

// Analyze runs the full semantic analysis pipeline over program: build the
// root scope, decorate it (C4), collect declarations (C5), link inheritance
// (C6), check classes (C7), and check types (C8). It never panics on a
// user-facing error; diagnostics accumulate in the returned slice and every
// pass runs to completion regardless of earlier failures.
func Analyze(program *ast.Program) (*scope.Node, []diag.Diagnostic) {
	root := scope.NewRoot(program)
	bag := diag.NewBag(1 << 16)
	rep := diag.BagReporter{Bag: bag}

	decorate(program, root)
	collect(program, rep)
	link(program, rep)
	checkClasses(program, rep)
	checkTypes(program, rep)

	return root, bag.Items()
}

// fatalf aborts on an internal invariant violation — never a user-facing
// error. Reserved for parser output that could not have reached this pass,
// or a pass running before an earlier required pass.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf("sema: internal invariant violated: "+format, args...))
}
