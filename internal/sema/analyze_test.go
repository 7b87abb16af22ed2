package sema_test

import (
	"testing"

	"github.com/hodevin/decaf/internal/ast"
	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/lexer"
	"github.com/hodevin/decaf/internal/parser"
	"github.com/hodevin/decaf/internal/sema"
	"github.com/hodevin/decaf/internal/source"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.decaf", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	prog := parser.ParseProgram(lx, parser.Options{})
	return prog
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func hasCode(diags []diag.Diagnostic, code diag.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func countCode(diags []diag.Diagnostic, code diag.Code) int {
	n := 0
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}

func TestAnalyzeCleanProgramHasNoDiagnostics(t *testing.T) {
	prog := parseProgram(t, `
class Animal {
    string name;
    void speak() {
        Print("...");
    }
}

void main() {
    Animal a;
    a = new Animal;
}`)
	_, diags := sema.Analyze(prog)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", codes(diags))
	}
}

func TestAnalyzeConflictingDecl(t *testing.T) {
	prog := parseProgram(t, `
int x;
int x;`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaConflictingDecl) {
		t.Fatalf("expected SemaConflictingDecl, got %v", codes(diags))
	}
}

func TestAnalyzeCyclicInheritanceReportedExactlyOnce(t *testing.T) {
	prog := parseProgram(t, `
class A {}
class B extends A {}
class C extends B {}
class D extends A {}
class Q extends Q {}
class R extends Q {}`)
	_, diags := sema.Analyze(prog)
	if n := countCode(diags, diag.SemaIllegalClassInheritanceCycle); n != 1 {
		t.Fatalf("expected exactly one IllegalClassInheritanceCycle, got %d: %v", n, codes(diags))
	}
}

func TestAnalyzeUndeclaredBaseClass(t *testing.T) {
	prog := parseProgram(t, `
class Dog extends Ghost {}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaUndeclaredType) {
		t.Fatalf("expected SemaUndeclaredType, got %v", codes(diags))
	}
}

func TestAnalyzeIncompatibleReturn(t *testing.T) {
	prog := parseProgram(t, `
int f() {
    return true;
}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaIncompatibleReturn) {
		t.Fatalf("expected SemaIncompatibleReturn, got %v", codes(diags))
	}
}

func TestAnalyzeInvalidTest(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    if (1) {
        Print("no");
    }
}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaInvalidTest) {
		t.Fatalf("expected SemaInvalidTest, got %v", codes(diags))
	}
}

func TestAnalyzeBreakOutsideLoop(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    break;
}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaBreakOutsideLoop) {
		t.Fatalf("expected SemaBreakOutsideLoop, got %v", codes(diags))
	}
}

func TestAnalyzeBreakInsideLoopOK(t *testing.T) {
	prog := parseProgram(t, `
void f() {
    while (true) {
        break;
    }
}`)
	_, diags := sema.Analyze(prog)
	if hasCode(diags, diag.SemaBreakOutsideLoop) {
		t.Fatalf("unexpected SemaBreakOutsideLoop: %v", codes(diags))
	}
}

func TestAnalyzeInterfaceNonConformance(t *testing.T) {
	prog := parseProgram(t, `
interface I {
    void m();
}
class C implements I {
    int m() {
        return 0;
    }
}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaTypeSignature) {
		t.Fatalf("expected SemaTypeSignature, got %v", codes(diags))
	}
	if !hasCode(diags, diag.SemaUnimplementedInterface) {
		t.Fatalf("expected SemaUnimplementedInterface, got %v", codes(diags))
	}
}

func TestAnalyzeInterfaceMissingMethodSilentlySkipped(t *testing.T) {
	prog := parseProgram(t, `
interface I {
    void m();
}
class C implements I {}`)
	_, diags := sema.Analyze(prog)
	if hasCode(diags, diag.SemaUnimplementedInterface) {
		t.Fatalf("expected missing interface method to be silently skipped, got %v", codes(diags))
	}
}

func TestCheckFullInterfaceConformanceCatchesMissingMethod(t *testing.T) {
	prog := parseProgram(t, `
interface I {
    void m();
}
class C implements I {}`)
	sema.Analyze(prog)
	diags := sema.CheckFullInterfaceConformance(prog)
	if !hasCode(diags, diag.SemaUnimplementedInterface) {
		t.Fatalf("expected strict conformance pass to report the missing method, got %v", codes(diags))
	}
}

func TestAnalyzeOverrideSignatureMismatch(t *testing.T) {
	prog := parseProgram(t, `
class Animal {
    void speak() {
        Print("...");
    }
}
class Dog extends Animal {
    int speak() {
        return 0;
    }
}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaTypeSignature) {
		t.Fatalf("expected SemaTypeSignature for overriding method, got %v", codes(diags))
	}
}

func TestAnalyzeIntWidensToDoubleReturn(t *testing.T) {
	prog := parseProgram(t, `
double f() {
    return 1;
}`)
	_, diags := sema.Analyze(prog)
	if len(diags) != 0 {
		t.Fatalf("expected int->double widening to be accepted, got %v", codes(diags))
	}
}

func TestAnalyzeNullAssignableToReferenceType(t *testing.T) {
	prog := parseProgram(t, `
class Animal {}
void f() {
    Animal a;
    a = null;
}`)
	_, diags := sema.Analyze(prog)
	if len(diags) != 0 {
		t.Fatalf("expected null to be assignable to a class type, got %v", codes(diags))
	}
}

func TestAnalyzeScopeTreeBoundNames(t *testing.T) {
	prog := parseProgram(t, `
class Animal {
    void speak() {
        if (true) {
            Print("yes");
        } else {
            Print("no");
        }
    }
}`)
	root, diags := sema.Analyze(prog)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", codes(diags))
	}
	if len(root.Children) != 1 || root.Children[0].BoundName != "Class Declaration of Animal" {
		t.Fatalf("unexpected root children: %+v", root.Children)
	}
	classSc := root.Children[0]
	if len(classSc.Children) != 1 {
		t.Fatalf("expected formals scope under class scope, got %+v", classSc.Children)
	}
}

func TestAnalyzePrintRejectsNonPrimitiveArgument(t *testing.T) {
	prog := parseProgram(t, `
class Animal {}
void f() {
    Animal a;
    a = new Animal;
    Print(a);
}`)
	_, diags := sema.Analyze(prog)
	if !hasCode(diags, diag.SemaIncompatibleArgument) {
		t.Fatalf("expected SemaIncompatibleArgument, got %v", codes(diags))
	}
}
