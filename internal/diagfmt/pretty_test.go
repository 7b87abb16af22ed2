package diagfmt_test

import (
	"strings"
	"testing"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/diagfmt"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/types"
)

func TestPrettyFormatsSingleDiagnosticExactly(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.decaf", []byte("int x;\nint x;\n"))
	file := fs.Get(id)
	pos := file.PositionFor(11) // second "x" declaration

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemaConflictingDecl,
		Message:  "*** Identifier x already declared in this scope",
		Primary:  pos,
	})

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	got := buf.String()
	wantHeader := "*** Error line 2.\n"
	if !strings.HasPrefix(got, wantHeader) {
		t.Fatalf("expected output to start with %q, got %q", wantHeader, got)
	}
	if !strings.Contains(got, pos.LongString) {
		t.Fatalf("expected output to contain the caret excerpt %q, got %q", pos.LongString, got)
	}
	if !strings.HasSuffix(got, "*** Identifier x already declared in this scope\n") {
		t.Fatalf("expected output to end with the message line, got %q", got)
	}
}

func TestPrettySkipsPathHeaderForSingleFileBag(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.decaf", []byte("int x;\n"))
	file := fs.Get(id)
	pos := file.PositionFor(0)

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaUndeclaredType, Message: "boom", Primary: pos})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaUndeclaredType, Message: "boom again", Primary: pos})

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	if strings.Contains(buf.String(), "test.decaf:\n") {
		t.Fatalf("expected no path header for a single-file bag, got %q", buf.String())
	}
}

func TestPrettyEmitsPathHeaderPerFileForMultiFileBag(t *testing.T) {
	fs := source.NewFileSet()
	idA := fs.AddVirtual("a.decaf", []byte("int x;\n"))
	idB := fs.AddVirtual("b.decaf", []byte("int y;\n"))
	fileA, fileB := fs.Get(idA), fs.Get(idB)

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaUndeclaredType, Message: "boom a", Primary: fileA.PositionFor(0)})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaUndeclaredType, Message: "boom b", Primary: fileB.PositionFor(0)})

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	got := buf.String()
	if !strings.Contains(got, "a.decaf:\n") || !strings.Contains(got, "b.decaf:\n") {
		t.Fatalf("expected a path header before each file's block, got %q", got)
	}
}

func TestPrettyShowsNotesAndFixesWhenEnabled(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.decaf", []byte("int x;\n"))
	file := fs.Get(id)
	pos := file.PositionFor(0)

	bag := diag.NewBag(4)
	d := diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaConflictingDecl, Message: "boom", Primary: pos}
	d = d.WithNote(pos, "previously declared here")
	d = d.WithFix("rename the duplicate", diag.FixEdit{Pos: pos, NewText: "y"})
	bag.Add(d)

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true, ShowFixes: true})

	got := buf.String()
	if !strings.Contains(got, "note: previously declared here") {
		t.Fatalf("expected a rendered note, got %q", got)
	}
	if !strings.Contains(got, "fix: rename the duplicate") {
		t.Fatalf("expected a rendered fix, got %q", got)
	}
}

func TestFormatScopeTreeNestsChildrenWithDelimiters(t *testing.T) {
	root := scope.NewRoot(nil)
	root.Table.Put("x", types.VariableAnnotation{Name: "x", Type: types.IntType{}})
	child := root.Child("Class Declaration of Animal", nil)
	child.Table.Put("name", types.VariableAnnotation{Name: "name", Type: types.StringType{}})

	var buf strings.Builder
	diagfmt.FormatScopeTree(&buf, root)

	got := buf.String()
	want := "Program:\n" +
		"  x ==> int\n" +
		"\\\\\n" +
		"  Class Declaration of Animal:\n" +
		"    name ==> string\n" +
		"//\n"
	if got != want {
		t.Fatalf("scope tree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatScopeTreeLeafHasNoDelimiters(t *testing.T) {
	root := scope.NewRoot(nil)
	root.Table.Put("x", types.VariableAnnotation{Name: "x", Type: types.IntType{}})

	var buf strings.Builder
	diagfmt.FormatScopeTree(&buf, root)

	got := buf.String()
	if strings.Contains(got, "\\\\") || strings.Contains(got, "//\n") {
		t.Fatalf("expected no child delimiters for a leaf scope, got %q", got)
	}
}

