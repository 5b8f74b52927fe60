package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJumpPressed, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJumpPressed, false},
		{"w", runeKey('w'), core.ActionJumpPressed, false},
		{"m", runeKey('m'), core.ActionSlowMode, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionMenu, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q", runeKey('q'), MenuActionQuit},
		{"x", runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
			}
		})
	}
}
