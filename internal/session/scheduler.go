package session

import (
	"context"
	"sync"
	"time"
)

// Ticker is a periodic tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop() { r.t.Stop() }

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Scheduler invokes a callback at a fixed interval on its own goroutine.
// Once Stop returns, the callback will not run again for that schedule.
type Scheduler struct {
	interval  time.Duration
	newTicker func(time.Duration) Ticker

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}

	// fire is held for the duration of each callback.
	fire sync.Mutex
}

func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval, newTicker: NewTicker}
}

// WithTicker swaps the tick source factory, mainly for tests.
func (s *Scheduler) WithTicker(f func(time.Duration) Ticker) *Scheduler {
	s.newTicker = f
	return s
}

// Start replaces any running schedule. fn returns false to end the schedule;
// fn must not call Stop itself.
func (s *Scheduler) Start(ctx context.Context, fn func(time.Time) bool) {
	s.Stop()

	s.mu.Lock()
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	tk := s.newTicker(s.interval)
	s.mu.Unlock()

	go s.loop(ctx, gen, tk, fn, done)
}

func (s *Scheduler) loop(ctx context.Context, gen uint64, tk Ticker, fn func(time.Time) bool, done chan struct{}) {
	defer close(done)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-tk.C():
			s.fire.Lock()
			if !s.live(gen) {
				s.fire.Unlock()
				return
			}
			more := fn(t)
			if !more {
				s.retire(gen)
			}
			s.fire.Unlock()
			if !more {
				return
			}
		}
	}
}

func (s *Scheduler) live(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen && s.cancel != nil
}

func (s *Scheduler) retire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Stop ends the current schedule and waits for an in-flight callback.
// Safe to call repeatedly.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.mu.Unlock()

	s.fire.Lock()
	s.fire.Unlock()
}

// Running reports whether a schedule is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Done is closed when the current schedule's goroutine exits.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return s.done
}
