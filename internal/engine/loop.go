// Package engine drives a registered game at a fixed tick rate,
// independent of which frontend delivers input and presents frames.
package engine

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Loop owns one game session: it buffers input between ticks, steps the
// game, draws it onto a surface and reports finished runs.
//
// Input pressed between two ticks is applied at the start of the next Step.
// A Loop is not safe for concurrent use; frontends call it from one goroutine.
type Loop struct {
	game    registry.Game
	surface core.Surface
	input   core.InputFrame
	state   core.GameState

	onGameOver func(score int)
	reported   bool // onGameOver already fired for the current run
}

// NewLoop creates a loop for game, drawing onto surface.
// The game must already be Reset.
func NewLoop(game registry.Game, surface core.Surface) *Loop {
	return &Loop{
		game:    game,
		surface: surface,
		input:   core.NewInputFrame(),
		state:   game.State(),
	}
}

// OnGameOver registers fn to be called once per finished run with its score.
func (l *Loop) OnGameOver(fn func(score int)) {
	l.onGameOver = fn
}

// Game returns the game being driven.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Surface returns the surface frames are drawn onto.
func (l *Loop) Surface() core.Surface {
	return l.surface
}

// SetSurface replaces the draw target, e.g. after the terminal was resized.
func (l *Loop) SetSurface(s core.Surface) {
	l.surface = s
}

// State returns the game state after the most recent Step.
func (l *Loop) State() core.GameState {
	return l.state
}

// Press queues an action for the next Step. Repeated presses within one
// tick collapse into one.
func (l *Loop) Press(a core.Action) {
	l.input.Set(a)
}

// Step advances the game by one tick using the queued input.
func (l *Loop) Step() core.StepResult {
	res := l.game.Step(l.input)
	l.input.Clear()
	l.state = res.State

	if res.Restarted || !res.State.GameOver {
		l.reported = false
	}
	if res.State.GameOver && !l.reported {
		l.reported = true
		if l.onGameOver != nil {
			l.onGameOver(res.State.Score)
		}
	}

	return res
}

// Draw renders the current game state onto the surface.
func (l *Loop) Draw() {
	if l.surface == nil {
		return
	}
	l.game.Render(l.surface)
}

// Frame runs one Step followed by one Draw.
func (l *Loop) Frame() core.StepResult {
	res := l.Step()
	l.Draw()
	return res
}
