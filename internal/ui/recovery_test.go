package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// panicModel panics on demand.
type panicModel struct {
	panicOnInit   bool
	panicOnUpdate bool
	panicOnView   bool
	updates       int
}

func (m *panicModel) Init() tea.Cmd {
	if m.panicOnInit {
		panic("init panic test")
	}
	return tea.Quit
}

func (m *panicModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	if m.panicOnUpdate {
		panic("update panic test")
	}
	m.updates++
	return m, tea.Quit
}

func (m *panicModel) View() string {
	if m.panicOnView {
		panic("view panic test")
	}
	return "ok"
}

func TestSafeModelPassesThrough(t *testing.T) {
	inner := &panicModel{}
	sm := NewSafeModel(inner, zaptest.NewLogger(t))

	assert.NotNil(t, sm.Init())
	next, cmd := sm.Update(nil)
	assert.Same(t, sm, next)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, inner.updates)
	assert.Equal(t, "ok", sm.View())
	assert.Same(t, inner, sm.Unwrap())
}

func TestSafeModelRecovers(t *testing.T) {
	inner := &panicModel{panicOnInit: true, panicOnUpdate: true, panicOnView: true}
	sm := NewSafeModel(inner, zaptest.NewLogger(t))

	require.NotPanics(t, func() {
		assert.Nil(t, sm.Init())
		next, cmd := sm.Update(nil)
		assert.Same(t, sm, next)
		assert.Nil(t, cmd)
		assert.Equal(t, CrashView, sm.View())
	})
	assert.Same(t, inner, sm.Unwrap())
}
