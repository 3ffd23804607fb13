package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{GameID, ClassicGameID} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGameBounds(t *testing.T) {
	g := New()
	w, h := g.Bounds()
	if w != 400 || h != 600 {
		t.Errorf("Bounds() = %v x %v, expected 400 x 600", w, h)
	}
}

func TestClassicVariantForcesRules(t *testing.T) {
	old := baseConfig
	t.Cleanup(func() { SetConfig(old) })

	cfg := config.DefaultFlappyConfig()
	cfg.Rules = config.FlappyRules{StartWithJump: true, FreezeOnCollision: false}
	SetConfig(cfg)

	g := NewClassic()
	g.Reset(core.DefaultConfig())

	if got := g.state.Config().Rules; got != config.ClassicRules() {
		t.Errorf("classic rules = %+v, expected %+v", got, config.ClassicRules())
	}

	plain := New()
	plain.Reset(core.DefaultConfig())
	if got := plain.state.Config().Rules; got != cfg.Rules {
		t.Errorf("default variant rules = %+v, expected configured %+v", got, cfg.Rules)
	}
}

func TestGameStepLifecycle(t *testing.T) {
	g := newGame(t)

	res := g.Step(frame())
	if res.State.Started || res.State.GameOver {
		t.Fatalf("fresh game state = %+v, expected title screen", res.State)
	}

	res = g.Step(frame(core.ActionJump))
	if !res.State.Started {
		t.Fatal("jump should start the game")
	}
	if g.state.Ticks != 1 {
		t.Errorf("Ticks = %d, expected the starting step to simulate", g.state.Ticks)
	}

	for i := 0; i < 1000 && !res.State.GameOver; i++ {
		res = g.Step(frame())
	}
	if !res.State.GameOver {
		t.Fatal("expected the bird to crash without input")
	}

	res = g.Step(frame(core.ActionJump))
	if !res.Restarted {
		t.Error("jump after game over should report a restart")
	}
	if res.State.Started || res.State.GameOver || res.State.Score != 0 {
		t.Errorf("after restart state = %+v, expected title screen", res.State)
	}
}

func TestGameRestartAction(t *testing.T) {
	g := newGame(t)

	// Restart is ignored until the run is over
	g.Step(frame(core.ActionJump))
	res := g.Step(frame(core.ActionRestart))
	if res.Restarted || !res.State.Started {
		t.Fatalf("restart mid-run should be ignored, got %+v", res)
	}

	g.state.Phase = PhaseGameOver
	res = g.Step(frame(core.ActionRestart))
	if !res.Restarted {
		t.Error("restart after game over should report a restart")
	}
	if g.state.Phase != PhaseNotStarted {
		t.Errorf("Phase = %v, expected NotStarted", g.state.Phase)
	}
}

func TestGamePauseAction(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionJump))

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}
	ticks := g.state.Ticks

	g.Step(frame())
	g.Step(frame(core.ActionJump))
	if g.state.Ticks != ticks {
		t.Errorf("Ticks advanced while paused: %d -> %d", ticks, g.state.Ticks)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newGame(t)
	g2 := newGame(t)

	inputs := []core.InputFrame{frame(core.ActionJump), frame(), frame(), frame(core.ActionJump)}
	for i := 0; i < 300; i++ {
		in := inputs[i%len(inputs)]
		r1 := g1.Step(in)
		r2 := g2.Step(in)
		if r1 != r2 {
			t.Fatalf("step %d diverged: %+v vs %+v", i, r1, r2)
		}
	}

	if len(g1.state.Pipes) != len(g2.state.Pipes) {
		t.Fatalf("pipe counts differ: %d vs %d", len(g1.state.Pipes), len(g2.state.Pipes))
	}
	for i := range g1.state.Pipes {
		if g1.state.Pipes[i] != g2.state.Pipes[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, g1.state.Pipes[i], g2.state.Pipes[i])
		}
	}
}

func TestGameRenderBeforeReset(t *testing.T) {
	rec := core.NewRecorder(400, 600)
	New().Render(rec)
	if len(rec.Commands()) != 0 {
		t.Error("render without state should draw nothing")
	}
	if (New().State() != core.GameState{}) {
		t.Error("state without reset should be zero")
	}
}
