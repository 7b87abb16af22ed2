package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// File holds the content of one loaded source file plus a byte-offset line
// index used to resolve Positions.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	lineIdx []uint32 // offsets of '\n' bytes
}

// NewFile wraps raw content into a File, building its line index once.
func NewFile(id FileID, path string, content []byte) *File {
	return &File{
		ID:      id,
		Path:    path,
		Content: content,
		lineIdx: buildLineIndex(content),
	}
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			idx, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("source: line index overflow: %w", err))
			}
			out = append(out, idx)
		}
	}
	return out
}

// lineCol converts a byte offset into a 1-based (line, column) pair.
func (f *File) lineCol(offset uint32) (line, col uint32) {
	if len(f.lineIdx) == 0 {
		return 1, offset + 1
	}
	// Binary search for the largest lineIdx[i] <= offset.
	lo, hi := 0, len(f.lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if f.lineIdx[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	lineNum := hi // 0-based index of the '\n' ending the line before offset
	if lineNum < 0 {
		return 1, offset + 1
	}
	start := f.lineIdx[lineNum] + 1
	return uint32(lineNum + 2), offset - start + 1
}

// GetLine returns the 1-based line's raw text, without its terminating '\n'.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(f.lineIdx):
		start = f.lineIdx[lineNum-2] + 1
	default:
		return ""
	}
	contentLen := uint32(len(f.Content))
	if int(lineNum-1) < len(f.lineIdx) {
		end = f.lineIdx[lineNum-1]
	} else {
		end = contentLen
	}
	if start >= contentLen {
		return ""
	}
	if end > contentLen {
		end = contentLen
	}
	if end < start {
		end = start
	}
	return string(f.Content[start:end])
}

// PositionFor builds a Position for a byte offset, including the caret-
// annotated source excerpt the diagnostic printer embeds verbatim.
func (f *File) PositionFor(offset uint32) Position {
	line, col := f.lineCol(offset)
	text := f.GetLine(line)
	caret := make([]byte, 0, col)
	for i := uint32(1); i < col; i++ {
		if i-1 < uint32(len(text)) && text[i-1] == '\t' {
			caret = append(caret, '\t')
		} else {
			caret = append(caret, ' ')
		}
	}
	caret = append(caret, '^')
	long := collapseBlankLines(text + "\n" + string(caret))
	return Position{File: f.ID, Line: line, Column: col, LongString: long}
}

// FormatPath renders f.Path relative to base when possible, falling back to
// the raw path. mode mirrors the CLI's --fullpath-style toggle.
func (f *File) FormatPath(mode, base string) string {
	if mode == "absolute" {
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	}
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			base = wd
		}
	}
	if rel, err := filepath.Rel(base, f.Path); err == nil {
		return rel
	}
	return f.Path
}
