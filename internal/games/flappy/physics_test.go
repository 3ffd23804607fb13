package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// playing returns a state that has already left the title screen.
func playing(cfg config.FlappyConfig) *State {
	s := NewState(cfg, 1)
	s.Phase = PhasePlaying
	return s
}

// openSkyConfig never produces a crash: no gravity and a gap covering
// almost the whole height, so every gap top is 0.
func openSkyConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 0
	cfg.Pipes.Gap = cfg.Surface.Height - 1
	return cfg
}

func TestNewStateStartsOnTitleScreen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewState(cfg, 42)

	if s.Phase != PhaseNotStarted {
		t.Errorf("Phase = %v, expected NotStarted", s.Phase)
	}
	if s.Bird.Y != cfg.Surface.Height/2-cfg.Bird.Radius {
		t.Errorf("Bird.Y = %v, expected %v", s.Bird.Y, cfg.Surface.Height/2-cfg.Bird.Radius)
	}
	if s.Bird.X != cfg.Bird.X || s.Bird.Radius != cfg.Bird.Radius {
		t.Errorf("Bird = %+v", s.Bird)
	}
}

func TestUpdateIsNoOpBeforeStart(t *testing.T) {
	s := NewState(config.DefaultFlappyConfig(), 1)
	before := s.Bird

	for i := 0; i < 10; i++ {
		s.Update()
	}

	if s.Bird != before {
		t.Errorf("bird moved on the title screen: %+v -> %+v", before, s.Bird)
	}
	if len(s.Pipes) != 0 {
		t.Errorf("pipes spawned on the title screen: %d", len(s.Pipes))
	}
	if s.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", s.Ticks)
	}
}

func TestGravity(t *testing.T) {
	s := playing(config.DefaultFlappyConfig())
	s.Bird.Y = 300
	s.Bird.Velocity = 0

	s.Update()

	if s.Bird.Velocity != 0.5 {
		t.Errorf("Velocity = %v, expected 0.5", s.Bird.Velocity)
	}
	if s.Bird.Y != 300.5 {
		t.Errorf("Y = %v, expected 300.5", s.Bird.Y)
	}

	s.Update()

	if s.Bird.Velocity != 1.0 || s.Bird.Y != 301.5 {
		t.Errorf("second tick: velocity=%v y=%v, expected 1.0 and 301.5", s.Bird.Velocity, s.Bird.Y)
	}
}

func TestCeilingClampIsNotLethal(t *testing.T) {
	s := playing(config.DefaultFlappyConfig())
	r := s.Bird.Radius
	// After integration the bird sits one unit above the ceiling bound
	s.Bird.Velocity = -s.Bird.Gravity
	s.Bird.Y = r - 1

	s.Update()

	if s.Bird.Y != r {
		t.Errorf("Y = %v, expected %v", s.Bird.Y, r)
	}
	if s.Bird.Velocity != 0 {
		t.Errorf("Velocity = %v, expected 0", s.Bird.Velocity)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected Playing", s.Phase)
	}
}

func TestFloorClampEndsGame(t *testing.T) {
	s := playing(config.DefaultFlappyConfig())
	floor := s.Config().Surface.Height - s.Bird.Radius
	s.Bird.Velocity = -s.Bird.Gravity
	s.Bird.Y = floor + 1

	s.Update()

	if s.Bird.Y != floor {
		t.Errorf("Y = %v, expected %v", s.Bird.Y, floor)
	}
	if s.Bird.Velocity != 0 {
		t.Errorf("Velocity = %v, expected 0", s.Bird.Velocity)
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected GameOver", s.Phase)
	}
}

func TestFallingBirdHitsFloor(t *testing.T) {
	s := playing(config.DefaultFlappyConfig())

	for i := 0; i < 1000 && s.Phase == PhasePlaying; i++ {
		s.Update()
	}

	if s.Phase != PhaseGameOver {
		t.Fatal("a bird that never jumps should eventually crash")
	}
	if s.Bird.Y != s.Config().Surface.Height-s.Bird.Radius {
		t.Errorf("crashed bird Y = %v, expected resting on the floor", s.Bird.Y)
	}
}

func TestBirdStaysWithinBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewState(cfg, 7)
	rng := rand.New(rand.NewSource(99))
	lo, hi := cfg.Bird.Radius, cfg.Surface.Height-cfg.Bird.Radius

	for tick := 0; tick < 5000; tick++ {
		if s.Phase != PhasePlaying || rng.Intn(12) == 0 {
			s.Jump()
		}
		s.Update()

		if s.Bird.Y < lo || s.Bird.Y > hi {
			t.Fatalf("tick %d: Y = %v outside [%v, %v]", tick, s.Bird.Y, lo, hi)
		}
	}
}

func TestSpawnedPipesRespectGapRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 0
	s := NewState(cfg, 3)
	s.Phase = PhasePlaying
	maxTop := cfg.Surface.Height - cfg.Pipes.Gap

	seen := 0
	for i := 0; i < 200; i++ {
		s.spawnPipe()
		p := s.Pipes[len(s.Pipes)-1]
		if p.X != cfg.Surface.Width {
			t.Fatalf("pipe spawned at x=%v, expected right edge %v", p.X, cfg.Surface.Width)
		}
		if p.GapTop < 0 || p.GapTop >= maxTop {
			t.Fatalf("GapTop = %v outside [0, %v)", p.GapTop, maxTop)
		}
		if p.GapTop != math.Floor(p.GapTop) {
			t.Fatalf("GapTop = %v, expected a whole number", p.GapTop)
		}
		seen++
	}
	if seen != 200 {
		t.Errorf("spawned %d pipes, expected 200", seen)
	}
}

func TestSpawnPolicy(t *testing.T) {
	cfg := openSkyConfig()
	s := playing(cfg)

	if !s.shouldSpawn() {
		t.Error("empty pipe set should spawn")
	}

	spawnLine := cfg.Surface.Width - cfg.Pipes.Spacing
	s.Pipes = []Pipe{{X: spawnLine}}
	if s.shouldSpawn() {
		t.Error("pipe exactly at the spacing line should not trigger a spawn")
	}

	s.Pipes = []Pipe{{X: 10}, {X: spawnLine - 0.5}}
	if !s.shouldSpawn() {
		t.Error("newest pipe past the spacing line should trigger a spawn")
	}

	s.Pipes = []Pipe{{X: 10}, {X: spawnLine + 1}}
	if s.shouldSpawn() {
		t.Error("only the newest pipe decides spawning")
	}
}

func TestPipeTravelAndRemoval(t *testing.T) {
	cfg := openSkyConfig()
	s := playing(cfg)
	w := cfg.Surface.Width
	speed := cfg.Pipes.Speed

	// First pipe spawns at the right edge and moves on the same tick
	s.Update()
	if len(s.Pipes) != 1 || s.Pipes[0].X != w-speed {
		t.Fatalf("after 1 tick pipes = %+v, expected one at %v", s.Pipes, w-speed)
	}

	// x + width < 0 first holds when 3N > 440, i.e. N = 147
	lastTick := 146
	for n := 2; n <= lastTick; n++ {
		s.Update()
		if got, want := s.Pipes[0].X, w-speed*float64(n); got != want {
			t.Fatalf("after %d ticks x = %v, expected %v", n, got, want)
		}
	}
	if s.Score != 0 {
		t.Fatalf("Score = %d before the first pipe left, expected 0", s.Score)
	}
	if s.Pipes[0].X+cfg.Pipes.Width < 0 {
		t.Fatal("pipe should still be on screen at tick 146")
	}

	s.Update()
	if s.Score != 1 {
		t.Errorf("Score = %d after first pipe left, expected 1", s.Score)
	}
	if s.Pipes[0].X == w-speed*147 {
		t.Error("first pipe should have been removed at tick 147")
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected Playing", s.Phase)
	}
}

func TestScoreCountsRemovals(t *testing.T) {
	cfg := openSkyConfig()
	s := playing(cfg)

	for tick := 0; tick < 2000; tick++ {
		leaving := 0
		for _, p := range s.Pipes {
			if p.X-cfg.Pipes.Speed+cfg.Pipes.Width < 0 {
				leaving++
			}
		}
		before := s.Score

		s.Update()

		if s.Score-before != leaving {
			t.Fatalf("tick %d: score went %d -> %d, expected +%d", tick, before, s.Score, leaving)
		}
	}
	if s.Score == 0 {
		t.Error("expected some pipes to be passed in 2000 ticks")
	}
}

func TestCollidesBoundaries(t *testing.T) {
	cfg := config.DefaultFlappyConfig() // bird x=50 r=15, pipe width 40 gap 100
	s := NewState(cfg, 1)

	const gapTop = 200.0
	inGapY := 250.0  // well inside [200, 300]
	aboveY := 150.0  // fully above the gap
	overlapX := 40.0 // pipe column [40, 80] covers the bird

	tests := []struct {
		name     string
		pipeX    float64
		birdY    float64
		expected bool
	}{
		{"inside gap", overlapX, inGapY, false},
		{"above gap", overlapX, aboveY, true},
		{"below gap", overlapX, 350, true},
		{"top tangent", overlapX, gapTop + 15, false},
		{"top one unit over", overlapX, gapTop + 14, true},
		{"bottom tangent", overlapX, gapTop + 100 - 15, false},
		{"bottom one unit over", overlapX, gapTop + 100 - 14, true},
		{"pipe left edge tangent to bird right", 65, aboveY, false},
		{"pipe left edge one unit inside", 64, aboveY, true},
		{"pipe right edge tangent to bird left", -5, aboveY, false},
		{"pipe right edge one unit inside", -4, aboveY, true},
		{"pipe far right", 300, aboveY, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Bird.Y = tc.birdY
			got := s.Collides(Pipe{X: tc.pipeX, GapTop: gapTop})
			if got != tc.expected {
				t.Errorf("Collides(x=%v, birdY=%v) = %v, expected %v", tc.pipeX, tc.birdY, got, tc.expected)
			}
		})
	}
}

func TestCollisionEndsGameWithoutScoring(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 0
	s := playing(cfg)
	s.Bird.Y = 300
	// Old pipe about to leave, and a pipe that will hit the bird
	s.Pipes = []Pipe{{X: -42, GapTop: 0}, {X: 60, GapTop: 0}}

	s.Update()

	if s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, expected GameOver", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, crash tick should not score", s.Score)
	}
	// Every pipe moved before the collision check
	if s.Pipes[0].X != -45 || s.Pipes[1].X != 57 {
		t.Errorf("pipes = %+v, expected all advanced by 3", s.Pipes)
	}
}

func TestFreezeOnCollisionSkipsOlderPipes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Bird.Gravity = 0
	cfg.Rules = config.ClassicRules()
	s := playing(cfg)
	s.Bird.Y = 300
	s.Pipes = []Pipe{{X: -20, GapTop: 0}, {X: 40, GapTop: 0}}

	s.Update()

	if s.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, expected GameOver", s.Phase)
	}
	if len(s.Pipes) != 3 {
		t.Fatalf("expected a spawned pipe, got %+v", s.Pipes)
	}
	if s.Pipes[2].X != cfg.Surface.Width-cfg.Pipes.Speed {
		t.Errorf("newest pipe x = %v, expected it processed first", s.Pipes[2].X)
	}
	if s.Pipes[1].X != 37 {
		t.Errorf("colliding pipe x = %v, expected 37", s.Pipes[1].X)
	}
	if s.Pipes[0].X != -20 {
		t.Errorf("older pipe x = %v, expected it left unmoved", s.Pipes[0].X)
	}
}

func TestUpdateFrozenAfterGameOver(t *testing.T) {
	s := playing(config.DefaultFlappyConfig())
	s.Pipes = []Pipe{{X: 200, GapTop: 100}}
	s.Phase = PhaseGameOver
	bird := s.Bird

	s.Update()

	if s.Bird != bird || s.Pipes[0].X != 200 || s.Ticks != 0 {
		t.Error("state should be frozen in GameOver")
	}
}

func TestDeterministicGaps(t *testing.T) {
	gaps := func(s *State, n int) []float64 {
		out := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			s.spawnPipe()
			out = append(out, s.Pipes[len(s.Pipes)-1].GapTop)
		}
		return out
	}

	cfg := config.DefaultFlappyConfig()
	a := NewState(cfg, 12345)
	b := NewState(cfg, 12345)
	first, second := gaps(a, 50), gaps(b, 50)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("gap %d differs with the same seed: %v vs %v", i, first[i], second[i])
		}
	}

	// Reset keeps the RNG sequence instead of replaying it
	a.Reset()
	after := gaps(a, 50)
	same := true
	for i := range after {
		if after[i] != first[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("gap sequence replayed after Reset")
	}
}
