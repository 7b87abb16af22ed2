package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hodevin/decaf/internal/scope"
	"github.com/hodevin/decaf/internal/types"
)

func sampleScopeTree() *scope.Node {
	root := scope.NewRoot(nil)
	root.Table.Put("x", types.VariableAnnotation{Name: "x", Type: types.IntType{}})
	child := root.Child("FnDecl (body) main", nil)
	child.Table.Put("y", types.VariableAnnotation{Name: "y", Type: types.BoolType{}})
	return root
}

func TestFlattenScopeOrdersHeadersBeforeEntries(t *testing.T) {
	var rows []browseRow
	flattenScope(sampleScopeTree(), 0, &rows)

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows (root header, root entry, child header, child entry), got %d", len(rows))
	}
	if !rows[0].header || rows[0].node.BoundName != "Program" {
		t.Fatalf("expected row 0 to be the root header, got %+v", rows[0])
	}
	if rows[1].header || rows[1].key != "x" {
		t.Fatalf("expected row 1 to be the root's x entry, got %+v", rows[1])
	}
}

func TestMoveCursorClampsToBounds(t *testing.T) {
	m := NewBrowseModel("test", sampleScopeTree()).(*browseModel)

	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.cursor)
	}

	m.moveCursor(1000)
	if m.cursor != len(m.rows)-1 {
		t.Fatalf("expected cursor clamped to last row, got %d", m.cursor)
	}
}

func TestBrowseUpdateQuitsOnQ(t *testing.T) {
	m := NewBrowseModel("test", sampleScopeTree()).(*browseModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a quit command on 'q'")
	}
}

func TestBrowseViewShowsBoundNamesAndEntries(t *testing.T) {
	m := NewBrowseModel("test", sampleScopeTree()).(*browseModel)
	view := m.View()
	if !strings.Contains(view, "Program:") || !strings.Contains(view, "x ==> int") {
		t.Fatalf("expected view to show the root scope, got:\n%s", view)
	}
}
