// Package tcellui is a lightweight frontend that draws straight onto a
// tcell screen, without Bubble Tea. It plays a single game with no menu.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyAction maps a key event to a game action.
// Mirrors the Bubble Tea key map: space/w/up flap, p/esc pause,
// r restart, q/ctrl+c quit.
func KeyAction(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			return core.ActionJump
		case 'p', 'P':
			return core.ActionPause
		case 'r', 'R':
			return core.ActionRestart
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// isScreenshot reports whether ev asks for a screenshot.
func isScreenshot(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlS
}

// styles maps each core color to its tcell style.
var styles = func() map[core.Color]tcell.Style {
	m := make(map[core.Color]tcell.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		st := tcell.StyleDefault
		if code := c.ANSI(); code >= 0 {
			st = st.Foreground(tcell.PaletteColor(code))
		}
		m[c] = st
	}
	return m
}()

func styleFor(c core.Color) tcell.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return tcell.StyleDefault
}
