package ports

import "time"

// Clock supplies wall-clock time and periodic ticks
type Clock interface {
	// NewTicker returns a ticker firing every d
	NewTicker(d time.Duration) Ticker
	// Now returns the current time
	Now() time.Time
}

// Ticker is a stoppable repeating tick source
type Ticker interface {
	// C returns the tick channel
	C() <-chan time.Time
	// Stop turns off the ticker; no more ticks are delivered after it returns
	Stop()
}
