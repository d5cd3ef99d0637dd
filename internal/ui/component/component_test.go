package component

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func typeInto(f *Form, text string) *Form {
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return f
}

func TestFormFocusAndValues(t *testing.T) {
	f := NewForm().
		AddField("email", TextInput, "Email", true, "").
		AddField("password", PasswordInput, "Password", true, "")

	assert.Equal(t, "email", f.Focused())
	f = typeInto(f, "a@b.c")
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "password", f.Focused())
	f = typeInto(f, "secret")

	assert.Equal(t, "a@b.c", f.GetValue("email"))
	assert.Equal(t, "secret", f.GetValue("password"))
	assert.NotContains(t, f.View(), "secret")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "email", f.Focused())
}

func TestFormValidate(t *testing.T) {
	f := NewForm().
		AddField("symbol", TextInput, "Symbol", true, "").
		AddField("qty", NumberInput, "Quantity", false, "").
		SetFieldValidation("qty", func(v string) error {
			if v != "1" {
				return errors.New("bad quantity")
			}
			return nil
		})

	assert.False(t, f.Validate())
	view := f.View()
	assert.Contains(t, view, "This field is required")
	assert.Contains(t, view, "Bad quantity")

	f.SetFieldValue("symbol", "AAPL").SetFieldValue("qty", "1")
	assert.True(t, f.Validate())

	f.Reset()
	assert.Empty(t, f.GetValue("symbol"))
	assert.Equal(t, "symbol", f.Focused())
}

func TestTableSelection(t *testing.T) {
	tbl := NewTable().
		AddColumn("Symbol", 10, lipgloss.Left).
		AddColumn("Price", 12, lipgloss.Right).
		SetEmptyText("nothing here")

	assert.Equal(t, -1, tbl.SelectedRow())
	assert.Contains(t, tbl.View(), "nothing here")

	tbl.SetRows([]TableRow{{Data: []string{"AAPL", "$1.00"}}, {Data: []string{"MSFT", "$2.00"}}})
	assert.Equal(t, 0, tbl.SelectedRow())
	tbl.MoveDown().MoveDown()
	assert.Equal(t, 1, tbl.SelectedRow())
	tbl.MoveUp()
	assert.Equal(t, 0, tbl.SelectedRow())

	tbl.MoveDown()
	tbl.SetRows([]TableRow{{Data: []string{"AAPL", "$1.00"}}})
	assert.Equal(t, 0, tbl.SelectedRow())

	view := tbl.View()
	assert.Contains(t, view, "Symbol")
	assert.Contains(t, view, "AAPL")
	assert.NotContains(t, view, "MSFT")
}

func TestRenderCellTruncates(t *testing.T) {
	cell := renderCell("A VERY LONG COMPANY NAME", 10, lipgloss.Left, lipgloss.NewStyle().Padding(0, 1))
	assert.Contains(t, cell, "A VER...")
	assert.Equal(t, 10, lipgloss.Width(cell))
}

func TestSparkline(t *testing.T) {
	s := NewSparkline(3).SetData([]float64{100, 50, 100, 150})
	assert.Equal(t, 3, s.Len())
	assert.InDelta(t, 200.0, s.GetChangePercent(), 1e-9)
	assert.Equal(t, "▁▄█", s.blocks())

	flat := NewSparkline(5).SetData([]float64{2, 2})
	assert.Equal(t, "▄▄", flat.blocks())
	assert.Zero(t, flat.GetChangePercent())

	assert.Zero(t, NewSparkline(5).Len())
}

func TestNotice(t *testing.T) {
	assert.True(t, Notice{}.Empty())
	assert.False(t, Error("boom").Empty())
	assert.Contains(t, Error("boom").View(), "boom")
	assert.Contains(t, Success("done").View(), "done")
	assert.Equal(t, NoticeWarning, Warning("w").Kind)
	assert.Equal(t, NoticeInfo, Info("i").Kind)
}

func TestStatusHeader(t *testing.T) {
	h := NewStatusHeader([]NavItem{{Key: "F1", Title: "Dashboard"}, {Key: "F2", Title: "Quote Lookup"}})
	h.SetWidth(100)
	h.SetUser("demo@tinystock.app")
	h.SetActive(1)

	view := h.View()
	assert.Contains(t, view, "TinyStock")
	assert.Contains(t, view, "Logged in as demo@tinystock.app")
	assert.Contains(t, view, "F2 Quote Lookup")
}

func TestTileDelta(t *testing.T) {
	assert.NotContains(t, Tile{Label: "AAPL", Value: "N/A"}.View(), "%")
	assert.Contains(t, Tile{Label: "AAPL", Value: "$1.00", Delta: "+1.00%"}.View(), "+1.00%")
}
