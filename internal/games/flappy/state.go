package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the discrete game state.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen, waiting for the first jump
	PhasePlaying                 // Simulation running
	PhaseGameOver                // Frozen after a crash, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Bird is the player-controlled falling body.
// X never changes; Y grows downward.
type Bird struct {
	X            float64
	Y            float64
	Radius       float64
	Velocity     float64 // Positive is downward
	Gravity      float64
	JumpStrength float64
}

// Pipe is a paired top/bottom barrier with a passable gap.
// Width and gap size are shared by all pipes and live in the config.
type Pipe struct {
	X      float64 // Left edge
	GapTop float64 // Y where the gap starts; fixed once spawned
}

// State owns everything the loop mutates. Update, Jump and Draw operate on
// it explicitly so each can be exercised in isolation.
type State struct {
	Bird   Bird
	Pipes  []Pipe // Oldest first; the last element is the most recent spawn
	Score  int
	Phase  Phase
	Paused bool
	Ticks  int // Simulation steps since the last reset

	cfg config.FlappyConfig
	rng *rand.Rand
}

// NewState creates a game state on the title screen.
// The seed fixes the gap sequence so runs are reproducible.
func NewState(cfg config.FlappyConfig, seed int64) *State {
	s := &State{
		Pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset puts the bird back in the middle, clears pipes and score, and
// returns to the title screen. The RNG keeps its sequence.
func (s *State) Reset() {
	s.Bird = Bird{
		X:            s.cfg.Bird.X,
		Y:            s.cfg.Surface.Height/2 - s.cfg.Bird.Radius,
		Radius:       s.cfg.Bird.Radius,
		Velocity:     0,
		Gravity:      s.cfg.Bird.Gravity,
		JumpStrength: s.cfg.Bird.JumpStrength,
	}
	s.Pipes = s.Pipes[:0]
	s.Score = 0
	s.Phase = PhaseNotStarted
	s.Paused = false
	s.Ticks = 0
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.FlappyConfig {
	return s.cfg
}

// width and height are the playfield dimensions in world units.
func (s *State) width() float64  { return s.cfg.Surface.Width }
func (s *State) height() float64 { return s.cfg.Surface.Height }
