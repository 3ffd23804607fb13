package flappy

import "math"

// Update advances the simulation by one fixed tick.
// Nothing moves outside PhasePlaying or while paused.
func (s *State) Update() {
	if s.Phase != PhasePlaying || s.Paused {
		return
	}
	s.Ticks++

	s.applyGravity()
	if s.Phase == PhaseGameOver {
		return
	}

	if s.shouldSpawn() {
		s.spawnPipe()
	}

	if s.cfg.Rules.FreezeOnCollision {
		s.updatePipesNewestFirst()
	} else {
		s.updatePipes()
	}
}

// applyGravity integrates velocity and position, then clamps the bird into
// [radius, height-radius]. Only the floor is lethal.
func (s *State) applyGravity() {
	b := &s.Bird
	b.Velocity += b.Gravity
	b.Y += b.Velocity

	if floor := s.height() - b.Radius; b.Y > floor {
		b.Y = floor
		b.Velocity = 0
		s.Phase = PhaseGameOver
	}

	if b.Y < b.Radius {
		b.Y = b.Radius
		b.Velocity = 0
	}
}

// shouldSpawn reports whether the newest pipe has moved far enough from the
// right edge to make room for another.
func (s *State) shouldSpawn() bool {
	if len(s.Pipes) == 0 {
		return true
	}
	return s.Pipes[len(s.Pipes)-1].X < s.width()-s.cfg.Pipes.Spacing
}

// spawnPipe appends a pipe at the right edge with a whole-unit gap top
// drawn uniformly from [0, height-gap).
func (s *State) spawnPipe() {
	gapTop := math.Floor(s.rng.Float64() * (s.height() - s.cfg.Pipes.Gap))
	s.Pipes = append(s.Pipes, Pipe{X: s.width(), GapTop: gapTop})
}

// updatePipes moves every pipe, then checks collisions, then drops pipes
// that left the screen. A crash ends the tick without scoring.
func (s *State) updatePipes() {
	for i := range s.Pipes {
		s.Pipes[i].X -= s.cfg.Pipes.Speed
	}

	for _, p := range s.Pipes {
		if s.Collides(p) {
			s.Phase = PhaseGameOver
			return
		}
	}

	s.removePassed()
}

// updatePipesNewestFirst moves and tests pipes one at a time from the newest
// and stops at the first crash, so older pipes keep their position that tick.
func (s *State) updatePipesNewestFirst() {
	for i := len(s.Pipes) - 1; i >= 0; i-- {
		s.Pipes[i].X -= s.cfg.Pipes.Speed
		if s.Collides(s.Pipes[i]) {
			s.Phase = PhaseGameOver
			return
		}
	}

	s.removePassed()
}

// removePassed filters out pipes whose right edge is left of the screen,
// scoring one point for each.
func (s *State) removePassed() {
	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		if p.X+s.cfg.Pipes.Width < 0 {
			s.Score++
			continue
		}
		kept = append(kept, p)
	}
	s.Pipes = kept
}

// Collides reports whether the bird's bounding square strictly overlaps the
// pipe column while poking out of the gap. Exact tangency is not a hit.
func (s *State) Collides(p Pipe) bool {
	b := s.Bird
	w, gap := s.cfg.Pipes.Width, s.cfg.Pipes.Gap

	overlapX := b.X+b.Radius > p.X && b.X-b.Radius < p.X+w
	outsideGap := b.Y-b.Radius < p.GapTop || b.Y+b.Radius > p.GapTop+gap
	return overlapX && outsideGap
}
