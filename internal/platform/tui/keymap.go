package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Jump keys map to ActionJumpPressed; releases are synthesized by HoldTracker.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w", "k":
		return core.ActionJumpPressed, false
	case "m":
		return core.ActionSlowMode, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionMenu, false
	}

	return core.ActionNone, false
}

// IsJump reports whether the key is one of the jump keys.
func (km *KeyMapper) IsJump(msg tea.KeyMsg) bool {
	action, _ := km.MapKey(msg)
	return action == core.ActionJumpPressed
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
