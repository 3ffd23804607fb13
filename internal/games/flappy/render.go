package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Colors and fonts used when drawing.
const (
	BirdColor = core.ColorBrightYellow
	PipeColor = core.ColorGreen
	TextColor = core.ColorBrightWhite
)

var (
	scoreFont = core.TextStyle{Font: "Arial", Size: 24}
	titleFont = core.TextStyle{Font: "Arial", Size: 36, Align: core.AlignCenter}
	hintFont  = core.TextStyle{Font: "Arial", Size: 18, Align: core.AlignCenter}
)

// Draw renders the current state. It never mutates s.
func (s *State) Draw(dst core.Surface) {
	dst.ClearRect(0, 0, dst.Width(), dst.Height())

	switch s.Phase {
	case PhaseGameOver:
		s.drawGameOver(dst)
	case PhaseNotStarted:
		s.drawTitle(dst)
	default:
		s.drawPlaying(dst)
	}
}

func (s *State) drawPlaying(dst core.Surface) {
	dst.FillCircle(s.Bird.X, s.Bird.Y, s.Bird.Radius, BirdColor)

	for _, p := range s.Pipes {
		s.drawPipe(dst, p)
	}

	dst.FillText(fmt.Sprintf("Score: %d", s.Score), 10, 30, scoreFont, TextColor)

	if s.Paused {
		s.drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPipe fills the segment above the gap and the segment below it.
func (s *State) drawPipe(dst core.Surface, p Pipe) {
	w, gap := s.cfg.Pipes.Width, s.cfg.Pipes.Gap
	bottomY := p.GapTop + gap

	dst.FillRect(p.X, 0, w, p.GapTop, PipeColor)
	dst.FillRect(p.X, bottomY, w, s.height()-bottomY, PipeColor)
}

func (s *State) drawTitle(dst core.Surface) {
	s.drawMessage(dst, "FLAPPY BIRD", "Press Space to start")
}

func (s *State) drawGameOver(dst core.Surface) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.FillText("GAME OVER", cx, cy-40, titleFont, TextColor)
	dst.FillText(fmt.Sprintf("Final score: %d", s.Score), cx, cy, hintFont, TextColor)
	dst.FillText("Press Space to restart", cx, cy+40, hintFont, TextColor)
}

// drawMessage draws a centered title with a hint line below it.
func (s *State) drawMessage(dst core.Surface, title, hint string) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.FillText(title, cx, cy-20, titleFont, TextColor)
	dst.FillText(hint, cx, cy+20, hintFont, TextColor)
}
