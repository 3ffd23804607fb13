// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Registered game IDs.
const (
	GameID        = "flappy"
	ClassicGameID = "flappy-classic"
)

// baseConfig is the configuration new games start from. The CLI replaces it
// via SetConfig before any game is created.
var baseConfig = config.DefaultFlappyConfig()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.FlappyConfig) {
	baseConfig = cfg
}

// Game adapts State to the registry.Game interface.
type Game struct {
	id      string
	title   string
	classic bool
	state   *State
}

// New creates a Flappy Bird game using the configured rules.
func New() *Game {
	return &Game{id: GameID, title: "Flappy Bird"}
}

// NewClassic creates a game that always plays with ClassicRules,
// regardless of the configured rules.
func NewClassic() *Game {
	return &Game{id: ClassicGameID, title: "Flappy Bird (classic rules)", classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// config returns the configuration for this variant.
func (g *Game) config() config.FlappyConfig {
	cfg := baseConfig
	if g.classic {
		cfg.Rules = config.ClassicRules()
	}
	return cfg
}

// Bounds returns the playfield size in world units.
func (g *Game) Bounds() (w, h float64) {
	cfg := g.config()
	return cfg.Surface.Width, cfg.Surface.Height
}

// Reset initializes or restarts the game on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(g.config(), cfg.Seed)
}

// Step applies this tick's input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}
	s := g.state
	restarted := false

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	switch {
	case in.Has(core.ActionRestart) && s.Phase == PhaseGameOver:
		s.Reset()
		restarted = true
	case in.Has(core.ActionJump):
		restarted = s.Phase == PhaseGameOver
		s.Jump()
	}

	s.Update()

	return core.StepResult{State: g.State(), Restarted: restarted}
}

// Render draws the current game state to the surface.
func (g *Game) Render(dst core.Surface) {
	if g.state == nil {
		return
	}
	g.state.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		Started:  g.state.Phase != PhaseNotStarted,
		GameOver: g.state.Phase == PhaseGameOver,
		Paused:   g.state.Paused,
	}
}

// Register the game variants with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return NewClassic()
	})
}
