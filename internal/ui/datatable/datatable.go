// Package datatable provides a generic scrollable table with fuzzy filtering.
package datatable

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmercier/leadline/internal/filter"
	"github.com/tmercier/leadline/internal/ui"
	"github.com/tmercier/leadline/internal/ui/render"
	"github.com/tmercier/leadline/internal/ui/styles"
)

// Row is implemented by anything the table can display.
type Row interface {
	// Columns returns cell values in column order.
	Columns() []string
	// FilterValue returns the text the fuzzy filter matches against.
	FilterValue() string
}

// Column describes one table column.
type Column struct {
	Title string
	Width int  // fixed width; ignored when Flex
	Flex  bool // absorbs remaining width (at most one per table)
}

// Model is a scrollable, filterable table of rows.
type Model[T Row] struct {
	ui.Base
	columns []Column
	rows    []T
	visible []int // indexes into rows after filtering
	query   string
	cursor  int // index into visible
	offset  int
}

// New creates an empty table with the given columns.
func New[T Row](columns []Column) Model[T] {
	return Model[T]{columns: columns}
}

// SetRows replaces the table contents, reapplying any active filter. The
// cursor is clamped rather than reset so a refresh keeps the user's place.
func (m *Model[T]) SetRows(rows []T) {
	m.rows = rows
	m.applyFilter()
}

// SetFilter applies a fuzzy filter query ("" clears it).
func (m *Model[T]) SetFilter(query string) {
	m.query = query
	m.applyFilter()
}

// Filter returns the active filter query.
func (m Model[T]) Filter() string {
	return m.query
}

// Len returns the number of visible rows.
func (m Model[T]) Len() int {
	return len(m.visible)
}

// Selected returns the row under the cursor.
func (m Model[T]) Selected() (T, bool) {
	var zero T
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return zero, false
	}
	return m.rows[m.visible[m.cursor]], true
}

func (m *Model[T]) applyFilter() {
	if m.query == "" {
		m.visible = make([]int, len(m.rows))
		for i := range m.rows {
			m.visible[i] = i
		}
	} else {
		texts := make([]string, len(m.rows))
		for i, r := range m.rows {
			texts[i] = r.FilterValue()
		}
		matches := filter.NewMatcher(texts).Search(m.query)
		m.visible = make([]int, len(matches))
		for i, match := range matches {
			m.visible[i] = match.Index
		}
	}
	m.clampCursor()
}

func (m *Model[T]) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollIntoView()
}

// Update handles movement keys.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "pgdown":
		m.move(m.pageSize())
	case "pgup":
		m.move(-m.pageSize())
	case "home":
		m.cursor = 0
		m.scrollIntoView()
	case "end":
		m.cursor = len(m.visible) - 1
		m.clampCursor()
	}
	return m, nil
}

func (m *Model[T]) move(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model[T]) pageSize() int {
	return max(m.listHeight(), 1)
}

func (m *Model[T]) listHeight() int {
	return m.ListHeight(2) // header row + separator
}

func (m *Model[T]) scrollIntoView() {
	h := m.listHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the table.
func (m Model[T]) View() string {
	t := styles.T()
	widths := m.columnWidths()

	out := m.renderRow(headerCells(m.columns), widths, t.S().Title)
	out += "\n" + t.S().Subtle.Render(render.Separator(m.Width()))

	h := m.listHeight()
	for i := m.offset; i < len(m.visible) && i < m.offset+h; i++ {
		style := t.S().Base
		if i == m.cursor {
			style = t.S().Cursor
		}
		out += "\n" + m.renderRow(m.rows[m.visible[i]].Columns(), widths, style)
	}

	if len(m.visible) == 0 {
		msg := "nothing here"
		if m.query != "" {
			msg = "no matches for " + m.query
		}
		out += "\n" + t.S().Muted.Render(msg)
	}

	return out
}

func (m Model[T]) renderRow(cells []string, widths []int, style styleRenderer) string {
	line := ""
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			line += "  "
		}
		line += render.TruncateAndPad(cell, w)
	}
	return style.Render(line)
}

// styleRenderer is the part of lipgloss.Style the table needs.
type styleRenderer interface {
	Render(...string) string
}

func (m Model[T]) columnWidths() []int {
	widths := make([]int, len(m.columns))
	fixed := 0
	flexIdx := -1
	for i, c := range m.columns {
		if c.Flex {
			flexIdx = i
			continue
		}
		widths[i] = c.Width
		fixed += c.Width
	}
	if flexIdx >= 0 {
		gaps := 2 * (len(m.columns) - 1)
		widths[flexIdx] = max(m.Width()-fixed-gaps, 8)
	}
	return widths
}

func headerCells(columns []Column) []string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = c.Title
	}
	return cells
}
