// Package diagfmt renders the two outputs spec.md §6 requires of the CLI
// collaborator: diagnostics (Pretty) and the annotated scope tree
// (FormatScopeTree).
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/unicode/norm"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/source"
)

// severityLabel renders the word spec.md §6's diagnostic header substitutes
// for "Error" on a non-error diagnostic.
func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevWarning:
		return "Warning"
	case diag.SevInfo:
		return "Info"
	default:
		return "Error"
	}
}

// severityColor mirrors internal/version's color.New(...).Sprint pattern for
// accenting the "*** <Severity>" header when PrettyOpts.Color is set.
func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	case diag.SevInfo:
		return color.New(color.FgCyan, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// Pretty writes bag's diagnostics in spec.md §6's bit-exact format:
//
//	*** Error line <N>.
//	<pos.LongString>
//	<message>
//
// one block per diagnostic. When bag spans more than one file — the
// directory-batching case spec.md's single-file contract doesn't itself
// cover — each new file's first block is preceded by a path header line,
// so a single-file bag (the golden-test case) renders exactly the three
// lines above with no extra header. Pretty neither sorts nor dedups; a
// caller wanting deterministic ordering calls bag.Sort() first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	multiFile := false
	if len(items) > 0 {
		first := items[0].Primary.File
		for _, d := range items {
			if d.Primary.File != first {
				multiFile = true
				break
			}
		}
	}

	lastFile := source.NoFileID
	for i, d := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if multiFile && fs != nil && d.Primary.File != lastFile {
			if file := fs.Get(d.Primary.File); file != nil {
				fmt.Fprintf(w, "%s:\n", file.FormatPath(pathModeString(opts.PathMode), fs.BaseDir()))
			}
			lastFile = d.Primary.File
		}
		header := fmt.Sprintf("*** %s line %d.", severityLabel(d.Severity), d.Primary.Line)
		if opts.Color {
			header = severityColor(d.Severity).Sprint(header)
		}
		fmt.Fprintln(w, header)
		if d.Primary.LongString != "" {
			// NFC-normalize the quoted source line: a source file with
			// decomposed unicode (combining marks split from their base
			// rune) would otherwise misalign the caret a fix suggestion
			// draws under it.
			fmt.Fprintln(w, norm.NFC.String(d.Primary.LongString))
		}
		fmt.Fprintln(w, d.Message)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "    note: %s (line %d)\n", note.Msg, note.Pos.Line)
			}
		}
		if opts.ShowFixes {
			for _, fix := range d.Fixes {
				fmt.Fprintf(w, "    fix: %s\n", fix.Title)
			}
		}
	}
}

func pathModeString(m PathMode) string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeBasename:
		return "basename"
	case PathModeRelative:
		return "relative"
	default:
		return "auto"
	}
}

// FormatScopeTree renders root per spec.md §6: 2-space indentation per
// nesting level, each node printing "<indent><boundName>:" followed by its
// table's own entries as "<key> ==> <value>", then its children wrapped in
// "\\" / "//" delimiter lines.
func FormatScopeTree(w io.Writer, root *scope.Node) {
	writeScopeNode(w, root, 0)
}

func writeScopeNode(w io.Writer, n *scope.Node, depth int) {
	indent := indentOf(depth)
	fmt.Fprintf(w, "%s%s:\n", indent, n.BoundName)
	for _, entry := range n.Table.Local() {
		fmt.Fprintf(w, "%s%s ==> %s\n", indentOf(depth+1), entry.Key, entry.Value)
	}
	if len(n.Children) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\\\\\n", indent)
	for _, child := range n.Children {
		writeScopeNode(w, child, depth+1)
	}
	fmt.Fprintf(w, "%s//\n", indent)
}

func indentOf(depth int) string {
	buf := make([]byte, depth*2)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}
