package clock

import (
	"time"

	"tasktimers/internal/ports"
)

// RealClock implements ports.Clock using the standard time package
type RealClock struct{}

// Verify interface compliance at compile time
var _ ports.Clock = RealClock{}

// NewRealClock creates a clock backed by the system time
func NewRealClock() RealClock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) NewTicker(d time.Duration) ports.Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

// realTicker wraps time.Ticker to implement ports.Ticker
type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
