package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// TableColumn represents a column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// TableRow represents a row of data. Styles, when set, colour individual cells.
type TableRow struct {
	Data   []string
	Styles map[int]lipgloss.Style
}

// Table represents a data table component
type Table struct {
	columns     []TableColumn
	rows        []TableRow
	width       int
	selectedRow int
	selectable  bool

	headerStyle      lipgloss.Style
	rowStyle         lipgloss.Style
	selectedRowStyle lipgloss.Style
	borderStyle      lipgloss.Style
	emptyStyle       lipgloss.Style

	emptyText string
}

// NewTable creates a new table component
func NewTable() *Table {
	return &Table{
		selectable:       true,
		headerStyle:      style.TableHeaderStyle,
		rowStyle:         style.TableRowStyle,
		selectedRowStyle: style.TableRowSelectedStyle,
		borderStyle:      style.TableBorderStyle,
		emptyStyle:       style.TableEmptyStyle,
	}
}

// AddColumn adds a column to the table
func (t *Table) AddColumn(header string, width int, align lipgloss.Position) *Table {
	t.columns = append(t.columns, TableColumn{
		Header: header,
		Width:  width,
		Align:  align,
	})
	return t
}

// SetRows replaces all rows, keeping the selection in range.
func (t *Table) SetRows(rows []TableRow) *Table {
	t.rows = rows
	if t.selectedRow >= len(t.rows) {
		t.selectedRow = len(t.rows) - 1
	}
	if t.selectedRow < 0 {
		t.selectedRow = 0
	}
	return t
}

// SetEmptyText sets the text shown when the table has no rows.
func (t *Table) SetEmptyText(text string) *Table {
	t.emptyText = text
	return t
}

// SetSelectable enables/disables row selection
func (t *Table) SetSelectable(selectable bool) *Table {
	t.selectable = selectable
	return t
}

// SetWidth sets the total table width used for auto-sized columns.
func (t *Table) SetWidth(width int) *Table {
	t.width = width
	return t
}

// MoveUp moves selection up
func (t *Table) MoveUp() *Table {
	if t.selectable && t.selectedRow > 0 {
		t.selectedRow--
	}
	return t
}

// MoveDown moves selection down
func (t *Table) MoveDown() *Table {
	if t.selectable && t.selectedRow < len(t.rows)-1 {
		t.selectedRow++
	}
	return t
}

// SelectedRow returns the selected row index, or -1 when there are no rows.
func (t *Table) SelectedRow() int {
	if len(t.rows) == 0 {
		return -1
	}
	return t.selectedRow
}

// View renders the table
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	var content strings.Builder

	header := make([]string, len(t.columns))
	separator := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = renderCell(col.Header, widths[i], col.Align, t.headerStyle)
		separator[i] = strings.Repeat("─", widths[i])
	}
	content.WriteString(strings.Join(header, "│"))
	content.WriteString("\n")
	content.WriteString(strings.Join(separator, "┼"))

	if len(t.rows) == 0 && t.emptyText != "" {
		content.WriteString("\n")
		content.WriteString(t.emptyStyle.Render(t.emptyText))
	}

	for rowIndex, row := range t.rows {
		selected := t.selectable && rowIndex == t.selectedRow
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			data := ""
			if i < len(row.Data) {
				data = row.Data[i]
			}
			cellStyle := t.rowStyle
			if selected {
				cellStyle = t.selectedRowStyle
			} else if s, ok := row.Styles[i]; ok {
				cellStyle = s.Padding(0, 1)
			}
			cells[i] = renderCell(data, widths[i], col.Align, cellStyle)
		}
		content.WriteString("\n")
		content.WriteString(strings.Join(cells, "│"))
	}

	return t.borderStyle.Render(content.String())
}

// renderCell renders a single table cell, truncating content that does not fit.
func renderCell(content string, width int, align lipgloss.Position, cellStyle lipgloss.Style) string {
	inner := width - 2
	runes := []rune(content)
	if inner > 0 && len(runes) > inner {
		if inner > 3 {
			content = string(runes[:inner-3]) + "..."
		} else {
			content = string(runes[:inner])
		}
	}
	return cellStyle.Width(width).Align(align).Render(content)
}

// columnWidths spreads the remaining width over columns without an explicit width.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	explicit, auto := 0, 0
	for i, col := range t.columns {
		widths[i] = col.Width
		if col.Width > 0 {
			explicit += col.Width
		} else {
			auto++
		}
	}
	if auto == 0 {
		return widths
	}

	available := t.width - explicit - (len(t.columns) - 1) - 4
	each := 12
	if available > 0 && available/auto > each {
		each = available / auto
	}
	for i := range widths {
		if widths[i] <= 0 {
			widths[i] = each
		}
	}
	return widths
}
