package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/theme"
)

const adjustStepSeconds = 60

// TimerController is the part of the timer engine driven by the live view
type TimerController interface {
	AdjustTime(ctx context.Context, deltaSeconds int)
	Cancel(ctx context.Context)
	Pause(ctx context.Context)
	Resume(ctx context.Context)
	StartLastTask(ctx context.Context)
	View() domain.TimerView
}

// TimerViewMsg carries a view published by the engine
type TimerViewMsg domain.TimerView

// WatchModel is the Bubble Tea model of the live timer view
type WatchModel struct {
	bar      progress.Model
	ctx      context.Context
	help     help.Model
	keys     KeyMap
	quitting bool
	theme    domain.Theme
	timer    TimerController
	view     domain.TimerView
}

// NewWatchModel creates the live view for a timer
func NewWatchModel(ctx context.Context, timer TimerController, th domain.Theme) *WatchModel {
	return &WatchModel{
		bar:   newProgressBar(th),
		ctx:   ctx,
		help:  help.New(),
		keys:  NewKeyMap(),
		theme: th,
		timer: timer,
		view:  timer.View(),
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return nil
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.bar.Width = min(max(msg.Width-4, 10), defaultBarWidth*2)
		return m, nil

	case TimerViewMsg:
		m.view = domain.TimerView(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.TogglePause):
		if m.view.IsPaused {
			m.timer.Resume(m.ctx)
		} else {
			m.timer.Pause(m.ctx)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.timer.Cancel(m.ctx)
	case key.Matches(msg, m.keys.AddMinute):
		m.timer.AdjustTime(m.ctx, adjustStepSeconds)
	case key.Matches(msg, m.keys.SubtractMinute):
		m.timer.AdjustTime(m.ctx, -adjustStepSeconds)
	case key.Matches(msg, m.keys.StartLast):
		m.timer.StartLastTask(m.ctx)
	default:
		return m, nil
	}

	logging.Logger.Debug("Live view key handled", "key", msg.String())
	m.view = m.timer.View()
	return m, nil
}

func (m *WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("tasktimers"))
	b.WriteString("\n")
	b.WriteString(renderTimer(m.view, m.theme, m.bar))
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Current returns the last view the model rendered
func (m *WatchModel) Current() domain.TimerView {
	return m.view
}
