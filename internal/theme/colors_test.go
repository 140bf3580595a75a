package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tasktimers/internal/domain"
)

func TestAccentColor_EveryThemeHasAnAccent(t *testing.T) {
	seen := make(map[Color]bool)
	for _, th := range domain.Themes {
		c := AccentColor(th)
		assert.NotEmpty(t, c)
		assert.False(t, seen[c], "theme %s reuses an accent", th)
		seen[c] = true
	}
}

func TestStateColor(t *testing.T) {
	tests := []struct {
		name string
		view domain.TimerView
		want Color
	}{
		{name: "idle", view: domain.IdleView(domain.ModeCountdown), want: ColorIdle},
		{name: "paused", view: domain.TimerView{State: domain.StatePaused, IsPaused: true, IsRunning: true}, want: ColorPaused},
		{name: "break", view: domain.TimerView{State: domain.StateRunning, IsRunning: true, Pomodoro: domain.PomodoroState{Active: true, OnBreak: true}}, want: ColorBreak},
		{name: "running", view: domain.TimerView{State: domain.StateRunning, IsRunning: true}, want: ColorRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateColor(tt.view))
		})
	}
}
