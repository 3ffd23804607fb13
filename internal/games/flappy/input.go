package flappy

// Jump handles the single activation input.
//
//   - GameOver: full reset back to the title screen.
//   - NotStarted: start the run; flap too when Rules.StartWithJump is set.
//   - Playing: set velocity to -JumpStrength, whatever it was before.
//
// Ignored while paused.
func (s *State) Jump() {
	if s.Paused {
		return
	}

	switch s.Phase {
	case PhaseGameOver:
		s.Reset()
	case PhaseNotStarted:
		s.Phase = PhasePlaying
		if s.cfg.Rules.StartWithJump {
			s.flap()
		}
	case PhasePlaying:
		s.flap()
	}
}

// flap is the only place velocity becomes negative.
func (s *State) flap() {
	s.Bird.Velocity = -s.Bird.JumpStrength
}

// TogglePause pauses or resumes a running game. No effect in other phases.
func (s *State) TogglePause() {
	if s.Phase != PhasePlaying {
		return
	}
	s.Paused = !s.Paused
}
