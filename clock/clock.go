// Package clock abstracts the per-frame callback source the wheel engine
// animates on. The engine itself never touches a platform timer: it only
// receives dt values, so a Manual source drives it headlessly in tests.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameFunc receives the elapsed frame time in seconds.
type FrameFunc func(dt float64)

// Source delivers frame callbacks until stopped.
type Source interface {
	Start(fn FrameFunc)
	Stop()
}

// Ticker is a real-time frame source on a time.Ticker. dt is measured from
// the actual inter-tick wall time, not the nominal interval, so callbacks
// stay honest under scheduler jitter.
type Ticker struct {
	interval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTicker creates a frame source firing at the given interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins delivering frames on a dedicated goroutine. Calling Start on
// a running or stopped ticker is a no-op.
func (t *Ticker) Start(fn FrameFunc) {
	if !t.running.CompareAndSwap(false, true) {
		return
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-t.stopChan:
				return
			case now := <-ticker.C:
				fn(now.Sub(last).Seconds())
				last = now
			}
		}
	}()
}

// Stop halts frame delivery and waits for the in-flight callback to return,
// so no frame fires after Stop. Safe to call more than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()
}

// Manual is a synthetic frame source advanced by hand. Used by tests and
// headless drivers; Advance invokes the callback synchronously.
type Manual struct {
	fn FrameFunc
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Start(fn FrameFunc) {
	m.fn = fn
}

func (m *Manual) Stop() {
	m.fn = nil
}

// Advance delivers a single frame of dt seconds.
func (m *Manual) Advance(dt float64) {
	if m.fn != nil {
		m.fn(dt)
	}
}

// AdvanceFrames delivers n uniform frames of dt seconds each.
func (m *Manual) AdvanceFrames(n int, dt float64) {
	for i := 0; i < n; i++ {
		m.Advance(dt)
	}
}
