package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/snapshot"
)

// KeyToDirection converts a key event to a movement direction.
// For Pong, only up/down movement is allowed.
func KeyToDirection(key tcell.Key, r rune) snapshot.Direction {
	switch key {
	case tcell.KeyUp:
		return snapshot.DirUp
	case tcell.KeyDown:
		return snapshot.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return snapshot.DirUp
		case 's', 'S':
			return snapshot.DirDown
		}
	}
	return snapshot.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsServeKey returns true if the key serves the ball (or starts a rematch).
func IsServeKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEnter {
		return true
	}
	return key == tcell.KeyRune && r == ' '
}
