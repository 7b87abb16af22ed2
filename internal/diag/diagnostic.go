package diag

import (
	"github.com/hodevin/decaf/internal/source"
)

// Note attaches secondary context to a Diagnostic, e.g. the location of a
// conflicting earlier declaration.
type Note struct {
	Pos source.Position
	Msg string
}

// FixEdit and Fix are kept for structural parity with the teacher's fix
// model; Decaf's CLI never materializes them, since nothing in the spec
// calls for automated correction.
type FixEdit struct {
	Pos     source.Position
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one finding produced by the lexer, parser, or sema passes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Position
	Notes    []Note
	Fixes    []Fix
}

func (d Diagnostic) WithNote(pos source.Position, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Pos: pos, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
