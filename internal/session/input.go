package session

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested inventory action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionTogglePanel
	ActionActivate // swap in the grid, equip in the equipment panel
	ActionDrop
	ActionPickup
	ActionRoll
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyTab, tcell.KeyBacktab:
		return ActionTogglePanel
	case tcell.KeyEnter:
		return ActionActivate
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveUp
	case 'j', 'J':
		return ActionMoveDown
	case 'l', 'L':
		return ActionMoveRight
	case 'h', 'H':
		return ActionMoveLeft
	case ' ':
		return ActionActivate
	case 'd', 'D':
		return ActionDrop
	case 'g', 'G':
		return ActionPickup
	case 'r', 'R':
		return ActionRoll
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (drow, dcol).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveUp:
		return -1, 0
	case ActionMoveDown:
		return 1, 0
	case ActionMoveLeft:
		return 0, -1
	case ActionMoveRight:
		return 0, 1
	}
	return 0, 0
}
