package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// Scheduler delivers the ticks that pace a Loop.
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

// Interval returns the duration of one tick at rate ticks per second.
// Non-positive rates fall back to DefaultTickRate.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

type ticker struct {
	t *time.Ticker
}

// NewTicker returns a wall-clock Scheduler firing rate times per second.
func NewTicker(rate int) Scheduler {
	return &ticker{t: time.NewTicker(Interval(rate))}
}

func (t *ticker) C() <-chan time.Time { return t.t.C }
func (t *ticker) Stop()               { t.t.Stop() }

// Run drives loop until ctx is cancelled, events is closed, or an
// ActionQuit arrives. Every tick runs one Frame and then present, if set.
//
// Run returns ctx.Err() on cancellation and nil otherwise. It stops sched
// before returning.
func Run(ctx context.Context, loop *Loop, sched Scheduler, events <-chan core.Action, present func()) error {
	defer sched.Stop()

	loop.Draw()
	if present != nil {
		present()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case a, ok := <-events:
			if !ok || a == core.ActionQuit {
				return nil
			}
			loop.Press(a)

		case <-sched.C():
			loop.Frame()
			if present != nil {
				present()
			}
		}
	}
}
