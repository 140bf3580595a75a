package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_AdvanceMovesTimeAndFiresTickers(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)
	ticker := c.NewTicker(time.Second)

	c.Advance(3 * time.Second)

	assert.Equal(t, start.Add(3*time.Second), c.Now())
	select {
	case tick := <-ticker.C():
		assert.Equal(t, start.Add(3*time.Second), tick)
	default:
		t.Fatal("expected a tick")
	}
}

func TestFakeClock_StoppedTickerDoesNotFire(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))
	ticker := c.NewTicker(time.Second)
	ticker.Stop()

	c.Advance(time.Second)

	select {
	case <-ticker.C():
		t.Fatal("stopped ticker fired")
	default:
	}
	assert.Equal(t, 0, c.ActiveTickers())
}

func TestFakeClock_SetDoesNotFire(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))
	ticker := c.NewTicker(time.Second)

	c.Set(time.Unix(100, 0))

	assert.Equal(t, time.Unix(100, 0), c.Now())
	select {
	case <-ticker.C():
		t.Fatal("Set must not fire tickers")
	default:
	}
}

func TestFakeClock_UnreadTickIsDropped(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))
	ticker := c.NewTicker(time.Second)

	c.Advance(time.Second)
	c.Advance(time.Second)

	assert.Equal(t, time.Unix(1, 0), <-ticker.C())
	select {
	case <-ticker.C():
		t.Fatal("second tick should have been dropped")
	default:
	}
}
