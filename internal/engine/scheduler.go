// Package engine provides the frame-driven game loop.
//
// The host calls Frame once per display refresh (Bubble Tea ticks in the
// terminal, a time.Ticker in headless mode). Every MaxStep frames the
// scheduler runs Update then Render synchronously inside that same call.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
)

// Scheduler decimates host frames into simulation ticks.
// It is not safe for concurrent use except for Stop.
type Scheduler struct {
	cfg    *config.Config
	update func()
	render func()

	frames uint64
	ticks  uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a scheduler that calls update then render once per tick.
// The scheduler owns its own Config copy for the step counter and threshold.
func New(update, render func()) *Scheduler {
	return &Scheduler{
		cfg:    config.New(config.DefaultCellSize),
		update: update,
		render: render,
		stop:   make(chan struct{}),
	}
}

// SetMaxStep sets the number of frames per tick. Fractional values are
// compared against the integer frame counter as is.
func (s *Scheduler) SetMaxStep(maxStep float64) {
	s.cfg.SetMaxStep(maxStep)
}

// MaxStep returns the current frame threshold.
func (s *Scheduler) MaxStep() float64 {
	return s.cfg.MaxStep
}

// Step returns the frames counted since the last tick.
func (s *Scheduler) Step() int {
	return s.cfg.Step
}

// Frame advances the frame counter and runs a tick when the threshold is
// reached. Returns true if Update and Render ran.
func (s *Scheduler) Frame() bool {
	s.frames++
	s.cfg.Step++
	if float64(s.cfg.Step) < s.cfg.MaxStep {
		return false
	}

	s.cfg.Step = 0
	s.ticks++

	if s.update != nil {
		s.update()
	}
	if s.render != nil {
		s.render()
	}
	return true
}

// Frames returns the total number of frames seen.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Ticks returns the number of ticks run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Run calls Frame for every value received from frames until ctx is done,
// Stop is called, or frames is closed. It returns ctx.Err() when the
// context ended the loop and nil otherwise.
func (s *Scheduler) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			// A stop that raced with a frame wins.
			select {
			case <-s.stop:
				return nil
			default:
			}
			s.Frame()
		}
	}
}

// Stop ends a running Run loop. It is safe to call more than once and from
// any goroutine.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Stopped returns a channel closed once Stop has been called.
func (s *Scheduler) Stopped() <-chan struct{} {
	return s.stop
}

// FrameSource returns a channel delivering frames at fps per second and a
// function that releases it.
func FrameSource(fps int) (<-chan time.Time, func()) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	return ticker.C, ticker.Stop
}
