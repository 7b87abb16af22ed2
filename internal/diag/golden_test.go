package diag

import (
	"testing"

	"github.com/hodevin/decaf/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.decaf", []byte("a\nb\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Position{File: userFile, Line: 1, Column: 1},
			Notes: []Note{
				{Pos: source.Position{File: userFile, Line: 2, Column: 1}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SemaTypeError,
			Message:  "another",
			Primary:  source.Position{File: userFile, Line: 2, Column: 1},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.decaf:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.decaf:2:1 note line\n" +
		"warning SEM3010 testdata/golden/sample.decaf:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
