package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/critter-catcher/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionCatch, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"plus", runeKey('+'), core.ActionFaster, false},
		{"equals", runeKey('='), core.ActionFaster, false},
		{"minus", runeKey('-'), core.ActionSlower, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, &frame)
	assert.Equal(t, core.Pointer{X: 3, Y: 4, Valid: true}, frame.Pointer)

	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	assert.True(t, frame.Pointer.Down)
	assert.Equal(t, 5, frame.Pointer.X)

	// Dragging keeps the button held.
	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &frame)
	assert.True(t, frame.Pointer.Down)
	assert.Equal(t, 7, frame.Pointer.X)

	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, &frame)
	assert.False(t, frame.Pointer.Down)

	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	assert.False(t, frame.Pointer.Down, "only the left button closes the net")
	assert.Equal(t, 1, frame.Pointer.X)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEscape}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('x')))
}
