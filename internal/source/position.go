package source

import (
	"fmt"
	"strings"
)

// Position locates a single point in a source file, carrying the source
// excerpt the diagnostic printer needs rather than making every consumer
// re-resolve it from a FileSet. Line and Column are 1-based.
type Position struct {
	File       FileID
	Line       uint32
	Column     uint32
	LongString string // source line plus a caret line pointing at Column
}

// NoPosition is returned for synthetic nodes that never reached the lexer.
var NoPosition = Position{}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// collapseBlankLines replaces runs of 2+ consecutive blank lines with a
// single blank line, per the diagnostic formatting rule in the spec.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		isBlank := strings.TrimSpace(line) == ""
		if isBlank && blank {
			continue
		}
		out = append(out, line)
		blank = isBlank
	}
	return strings.Join(out, "\n")
}
