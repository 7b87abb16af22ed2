package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hodevin/decaf/internal/scope"
)

// browseRow is one flattened line of the scope tree: either a node header
// or one of its table's local entries, indented to its node's depth.
type browseRow struct {
	node   *scope.Node
	depth  int
	header bool
	key    string
	value  string
}

type browseModel struct {
	title   string
	rows    []browseRow
	cursor  int
	height  int
	viewTop int
}

// NewBrowseModel returns a Bubble Tea model that lets a user move a cursor
// up and down decafc browse's flattened scope tree, one row per node and
// per locally-bound name, collapsed to a scrollable window of height rows.
func NewBrowseModel(title string, root *scope.Node) tea.Model {
	var rows []browseRow
	flattenScope(root, 0, &rows)
	return &browseModel{title: title, rows: rows, height: 20}
}

func flattenScope(n *scope.Node, depth int, rows *[]browseRow) {
	*rows = append(*rows, browseRow{node: n, depth: depth, header: true})
	for _, entry := range n.Table.Local() {
		*rows = append(*rows, browseRow{
			node: n, depth: depth + 1,
			key: entry.Key, value: fmt.Sprint(entry.Value),
		})
	}
	for _, child := range n.Children {
		flattenScope(child, depth+1, rows)
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.height = msg.Height - 4
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "pgup":
			m.moveCursor(-m.height)
		case "pgdown":
			m.moveCursor(m.height)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *browseModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < m.viewTop {
		m.viewTop = m.cursor
	}
	if m.cursor >= m.viewTop+m.height {
		m.viewTop = m.cursor - m.height + 1
	}
}

func (m *browseModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
	entryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	end := m.viewTop + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.viewTop; i < end; i++ {
		row := m.rows[i]
		indent := strings.Repeat("  ", row.depth)
		var line string
		if row.header {
			line = indent + headerStyle.Render(row.node.BoundName+":")
		} else {
			line = indent + entryStyle.Render(row.key+" ==> "+row.value)
		}
		if i == m.cursor {
			line = cursorStyle.Render(indent + rowPlainText(row))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(entryStyle.Render("↑/↓ move  pgup/pgdn page  q quit"))
	return b.String()
}

func rowPlainText(row browseRow) string {
	if row.header {
		return row.node.BoundName + ":"
	}
	return row.key + " ==> " + row.value
}
