package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// panicModel panics on any key named "boom"
type panicModel struct {
	updates   int
	panicView bool
}

func (m *panicModel) Init() tea.Cmd { return nil }

func (m *panicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "boom" {
		panic("kaboom")
	}
	m.updates++
	return m, tea.Quit
}

func (m *panicModel) View() string {
	if m.panicView {
		panic("view")
	}
	return "ok"
}

func TestSafeModelPassesThrough(t *testing.T) {
	inner := &panicModel{}
	sm := NewSafeModel(inner, zap.NewNop())

	model, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Same(t, sm, model)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, inner.updates)
	assert.Equal(t, "ok", sm.View())
	assert.Zero(t, sm.Panics())
}

func TestSafeModelRecoversUpdate(t *testing.T) {
	sm := NewSafeModel(&panicModel{}, zap.NewNop())

	model, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("boom")})
	assert.Same(t, sm, model)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, sm.Panics())
	assert.Contains(t, sm.View(), "kaboom")

	// still usable
	_, cmd = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestSafeModelRecoversView(t *testing.T) {
	sm := NewSafeModel(&panicModel{panicView: true}, zap.NewNop())

	assert.Contains(t, sm.View(), "Rendering failed")
	assert.Equal(t, 1, sm.Panics())
	assert.IsType(t, &panicModel{}, sm.Unwrap())
}
