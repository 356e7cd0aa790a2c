package domain

import "time"

// Timer is a re-armable one-shot timer.
type Timer interface {
	// C delivers the fire time once the timer expires.
	C() <-chan time.Time
	// Reset re-arms the timer for d, discarding any fire not yet received.
	Reset(d time.Duration)
	// Stop disarms the timer, discarding any fire not yet received.
	Stop()
}

// Clock creates timers. The watch engine depends on it instead of the time
// package so its debounce logic can run against a virtual clock.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type realClock struct{}

// NewRealClock returns a Clock backed by time.Timer.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{timer: time.NewTimer(d)}
}

// realTimer relies on the Go 1.23 timer semantics: Reset and Stop leave no
// stale value in the channel.
type realTimer struct {
	timer *time.Timer
}

func (t *realTimer) C() <-chan time.Time { return t.timer.C }

func (t *realTimer) Reset(d time.Duration) { t.timer.Reset(d) }

func (t *realTimer) Stop() { t.timer.Stop() }
