package anim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is one display refresh at 60 Hz.
const DefaultInterval = time.Second / 60

// Loop is a cancellable repeating task scheduler.
type Loop struct {
	clock    Clock
	interval time.Duration
}

// NewLoop returns a loop ticking every interval on clock. A nil clock
// means the real clock; a non-positive interval means DefaultInterval.
func NewLoop(clock Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = RealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{clock: clock, interval: interval}
}

// IntervalForFPS converts a frame rate into a tick interval.
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		return DefaultInterval
	}
	return time.Second / time.Duration(fps)
}

// Interval returns the tick period.
func (l *Loop) Interval() time.Duration { return l.interval }

// Clock returns the clock driving the loop.
func (l *Loop) Clock() Clock { return l.clock }

// Start runs tick on its own goroutine once per interval until the handle
// is cancelled or ctx is done. Ticks never overlap.
func (l *Loop) Start(ctx context.Context, tick func(now time.Time)) *Handle {
	h := newHandle()
	ticker := l.clock.NewTicker(l.interval)

	go func() {
		defer close(h.done)
		defer ticker.Stop()

		for {
			select {
			case <-h.stop:
				return
			case <-ctx.Done():
				return
			case now := <-ticker.C():
				// a cancel that raced with this tick wins
				select {
				case <-h.stop:
					return
				default:
				}
				tick(now)
				h.ticks.Add(1)
			}
		}
	}()

	return h
}

// Handle controls a running loop.
type Handle struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	ticks    atomic.Uint64
}

func newHandle() *Handle {
	return &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// finishedHandle is returned when there is nothing to run.
func finishedHandle() *Handle {
	h := newHandle()
	h.Cancel()
	close(h.done)
	return h
}

// Cancel asks the loop to stop. It does not block and may be called more
// than once, including from inside a tick.
func (h *Handle) Cancel() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait cancels the loop and blocks until it has exited.
func (h *Handle) Wait() {
	h.Cancel()
	<-h.done
}

// Ticks reports how many ticks have completed.
func (h *Handle) Ticks() uint64 { return h.ticks.Load() }

// Stopped reports whether the loop goroutine has exited.
func (h *Handle) Stopped() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
