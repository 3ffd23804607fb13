package engine

import (
	"maps"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// scriptedGame is a registry.Game whose state is driven by the test.
type scriptedGame struct {
	steps    []map[core.Action]bool // actions seen by each Step
	renders  int
	state    core.GameState
	restart  bool
	lastDraw core.Surface
}

func (g *scriptedGame) ID() string             { return "scripted" }
func (g *scriptedGame) Title() string          { return "Scripted" }
func (g *scriptedGame) Bounds() (w, h float64) { return 100, 100 }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) State() core.GameState   { return g.state }
func (g *scriptedGame) Render(dst core.Surface) { g.renders++; g.lastDraw = dst }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, maps.Clone(in.Actions))
	res := core.StepResult{State: g.state, Restarted: g.restart}
	g.restart = false
	return res
}

func TestLoopAppliesQueuedInputOnce(t *testing.T) {
	g := &scriptedGame{}
	l := NewLoop(g, core.NewRecorder(100, 100))

	l.Press(core.ActionJump)
	l.Press(core.ActionJump)
	l.Step()
	l.Step()

	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.steps))
	}
	if !g.steps[0][core.ActionJump] {
		t.Error("first step should carry the queued jump")
	}
	if len(g.steps[1]) != 0 {
		t.Error("input should be cleared after each step")
	}
}

func TestLoopReportsGameOverOncePerRun(t *testing.T) {
	g := &scriptedGame{}
	l := NewLoop(g, nil)

	var scores []int
	l.OnGameOver(func(score int) { scores = append(scores, score) })

	g.state = core.GameState{Started: true, Score: 2}
	l.Step()

	g.state = core.GameState{Started: true, GameOver: true, Score: 4}
	l.Step()
	l.Step()
	l.Step()

	if len(scores) != 1 || scores[0] != 4 {
		t.Fatalf("reported %v, expected [4]", scores)
	}

	// Restart, then crash again
	g.state = core.GameState{}
	g.restart = true
	l.Step()
	g.state = core.GameState{Started: true, GameOver: true, Score: 1}
	l.Step()

	if len(scores) != 2 || scores[1] != 1 {
		t.Errorf("reported %v, expected [4 1]", scores)
	}
}

func TestLoopFrameDrawsAfterStep(t *testing.T) {
	g := &scriptedGame{}
	rec := core.NewRecorder(100, 100)
	l := NewLoop(g, rec)

	l.Frame()

	if len(g.steps) != 1 || g.renders != 1 {
		t.Errorf("steps=%d renders=%d, expected 1 each", len(g.steps), g.renders)
	}
	if g.lastDraw != core.Surface(rec) {
		t.Error("Frame should draw onto the loop surface")
	}

	other := core.NewRecorder(50, 50)
	l.SetSurface(other)
	l.Draw()
	if g.lastDraw != core.Surface(other) {
		t.Error("Draw should use the replaced surface")
	}
}

func TestLoopDrawWithoutSurface(t *testing.T) {
	g := &scriptedGame{}
	l := NewLoop(g, nil)

	l.Draw()

	if g.renders != 0 {
		t.Error("Draw without a surface should not render")
	}
}
