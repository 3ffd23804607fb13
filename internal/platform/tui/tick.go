// Package tui provides the Bubble Tea frontend: local play, the variant
// menu, the score table and SSH sessions served through Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// lastID hands out tick chain IDs.
var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is sent to trigger a game simulation tick.
// ID ties the message to the model that scheduled it, so a chain left
// behind by a finished game never drives the next one.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message for chain id
// after one interval at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	return tea.Tick(engine.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
