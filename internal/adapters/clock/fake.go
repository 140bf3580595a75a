package clock

import (
	"sync"
	"time"

	"tasktimers/internal/ports"
)

// FakeClock is a manually driven clock for tests.
// Advance moves time forward and fires every live ticker once.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

var _ ports.Clock = (*FakeClock)(nil)

// NewFakeClock creates a fake clock frozen at now
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps the clock to t without firing tickers
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d and delivers one tick to each running ticker
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	live := c.tickers[:0]
	for _, t := range c.tickers {
		if !t.isStopped() {
			live = append(live, t)
		}
	}
	c.tickers = live
	tickers := append([]*fakeTicker(nil), live...)
	c.mu.Unlock()

	for _, t := range tickers {
		t.fire(now)
	}
}

func (c *FakeClock) NewTicker(d time.Duration) ports.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, t)
	return t
}

// ActiveTickers returns how many tickers have not been stopped
func (c *FakeClock) ActiveTickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

type fakeTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *fakeTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// fire drops the tick when the previous one was not consumed, like time.Ticker
func (t *fakeTicker) fire(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	select {
	case t.ch <- now:
	default:
	}
}
