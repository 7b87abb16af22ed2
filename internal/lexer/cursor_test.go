package lexer

import (
	"testing"

	"github.com/hodevin/decaf/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.decaf", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if cursor.EOF() {
		t.Error("expected not EOF at start")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("expected peek 'a', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("expected bump 'a', got %c", b)
	}

	if cursor.Peek() != '\n' {
		t.Errorf("expected peek '\\n', got %c", cursor.Peek())
	}
	cursor.Bump()

	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b', got %c", cursor.Peek())
	}
	cursor.Bump()

	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("expected peek 0 at EOF, got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 0 {
		t.Errorf("expected bump 0 at EOF, got %c", b)
	}
}

func TestPeek2(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("expected Peek2('a','b'), got ('%c','%c',%v)", b0, b1, ok)
	}

	cursor.Bump()
	b0, b1, ok = cursor.Peek2()
	if !ok || b0 != 'b' || b1 != 'c' {
		t.Errorf("expected Peek2('b','c'), got ('%c','%c',%v)", b0, b1, ok)
	}

	cursor.Bump()
	b0, b1, ok = cursor.Peek2()
	if ok || b0 != 0 || b1 != 0 {
		t.Errorf("expected Peek2 to fail at end, got ('%c','%c',%v)", b0, b1, ok)
	}
}

func TestTextFromAndPosFrom(t *testing.T) {
	file := createFile("foo bar")
	cursor := NewCursor(file)

	mark := cursor.Mark()
	for cursor.Peek() != ' ' {
		cursor.Bump()
	}
	if got := cursor.TextFrom(mark); got != "foo" {
		t.Errorf("expected TextFrom %q, got %q", "foo", got)
	}
	pos := cursor.PosFrom(mark)
	if pos.Line != 1 || pos.Column != 1 {
		t.Errorf("expected position 1:1, got %d:%d", pos.Line, pos.Column)
	}
}

func TestEatNewline(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if !cursor.Eat('a') {
		t.Error("expected Eat('a') to succeed")
	}
	if !cursor.Eat('\n') {
		t.Error("expected Eat('\\n') to succeed")
	}
	if !cursor.Eat('b') {
		t.Error("expected Eat('b') to succeed")
	}
	if !cursor.EOF() {
		t.Error("expected EOF after consuming all bytes")
	}
	if cursor.Eat('x') {
		t.Error("expected Eat('x') at EOF to fail")
	}

	cursor.Reset(Mark(0))
	if cursor.Eat('x') {
		t.Error("expected Eat('x') to fail when current char is 'a'")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("expected cursor unchanged after failed Eat, got %c", cursor.Peek())
	}
}

func TestMarkReset(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	mark1 := cursor.Mark()
	cursor.Bump()
	mark2 := cursor.Mark()
	cursor.Bump()

	cursor.Reset(mark2)
	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b' after reset to mark2, got %c", cursor.Peek())
	}

	cursor.Reset(mark1)
	if cursor.Peek() != 'a' {
		t.Errorf("expected peek 'a' after reset to mark1, got %c", cursor.Peek())
	}
}
