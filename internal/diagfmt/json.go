package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/source"
)

// DiagnosticOutput is one diagnostic's JSON projection for
// `decafc check --format json`.
type DiagnosticOutput struct {
	Severity string          `json:"severity"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Pos      source.Position `json:"pos"`
	Notes    []noteOutput    `json:"notes,omitempty"`
	Fixes    []fixOutput     `json:"fixes,omitempty"`
}

type noteOutput struct {
	Pos source.Position `json:"pos"`
	Msg string          `json:"msg"`
}

type fixOutput struct {
	Title string `json:"title"`
}

func toDiagnosticOutput(d diag.Diagnostic, opts PrettyOpts) DiagnosticOutput {
	out := DiagnosticOutput{
		Severity: severityLabel(d.Severity),
		Code:     d.Code.String(),
		Message:  d.Message,
		Pos:      d.Primary,
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, noteOutput{Pos: n.Pos, Msg: n.Msg})
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			out.Fixes = append(out.Fixes, fixOutput{Title: f.Title})
		}
	}
	return out
}

// JSON renders bag's diagnostics as an indented JSON array, honoring the
// same ShowNotes/ShowFixes opts Pretty does.
func JSON(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	items := bag.Items()
	out := make([]DiagnosticOutput, 0, len(items))
	for _, d := range items {
		out = append(out, toDiagnosticOutput(d, opts))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
