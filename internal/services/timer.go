package services

import (
	"context"
	"sync"
	"time"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

// DefaultTickInterval is the recompute period of a running session
const DefaultTickInterval = time.Second

// TimerStore is the slice of the state store the timer writes to
type TimerStore interface {
	ports.LastTaskStore
	ports.SessionSnapshotStore
}

// TimerServiceParams wires the timer's collaborators
type TimerServiceParams struct {
	Clock        ports.Clock
	Haptics      ports.Haptics
	Notifier     ports.Notifier
	Settings     SettingsProvider
	Sound        ports.SoundPlayer
	Store        TimerStore
	Tasks        TaskLookup
	TickInterval time.Duration
}

// TimerService owns the single live session.
// Commands and ticks are serialized by mu. Commands that do not apply to the
// current state are silent no-ops, and no operation returns an error.
type TimerService struct {
	clock        ports.Clock
	haptics      ports.Haptics
	notifier     ports.Notifier
	settings     SettingsProvider
	sound        ports.SoundPlayer
	store        TimerStore
	tasks        TaskLookup
	tickInterval time.Duration

	mu          sync.Mutex
	closed      bool
	effects     []func() // feedback run after mu is released
	generation  uint64   // identifies the live ticker goroutine
	session     *domain.Session
	stopCh      chan struct{}
	subscribers []chan domain.TimerView
	ticker      ports.Ticker
}

// NewTimerService creates the timer and restores any persisted session.
// Settings and the task catalog must already be loaded.
func NewTimerService(ctx context.Context, params TimerServiceParams) *TimerService {
	if params.TickInterval <= 0 {
		params.TickInterval = DefaultTickInterval
	}

	s := &TimerService{
		clock:        params.Clock,
		haptics:      params.Haptics,
		notifier:     params.Notifier,
		settings:     params.Settings,
		sound:        params.Sound,
		store:        params.Store,
		tasks:        params.Tasks,
		tickInterval: params.TickInterval,
	}

	s.mu.Lock()
	s.restoreLocked(ctx)
	s.unlock()
	return s
}

// Start begins timing task, replacing any running session
func (s *TimerService) Start(ctx context.Context, task domain.Task) {
	s.mu.Lock()
	defer s.unlock()

	logging.Logger.Info("Starting timer", "task", task.Name, "duration", task.DurationSeconds)
	s.configureLocked(ctx, task, s.settings.Current().TimerMode, domain.PomodoroState{})

	if err := s.store.WriteLastTaskName(ctx, task.Name); err != nil {
		logging.Logger.Warn("Failed to remember last task", "error", err)
	}
	s.effects = append(s.effects, s.haptics.Impact)
}

// StartLastTask starts the catalog task whose name was last started.
// Nothing happens when no name is remembered or the task is gone.
func (s *TimerService) StartLastTask(ctx context.Context) {
	name, err := s.store.ReadLastTaskName(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read last task", "error", err)
		return
	}
	if name == "" {
		logging.Logger.Debug("No last task remembered")
		return
	}

	task, ok := s.tasks.FindByName(name)
	if !ok {
		logging.Logger.Debug("Last task no longer in catalog", "name", name)
		return
	}
	s.Start(ctx, task)
}

// Pause freezes a running session
func (s *TimerService) Pause(ctx context.Context) {
	s.mu.Lock()
	defer s.unlock()

	if s.session == nil || s.session.IsPaused {
		logging.Logger.Debug("Pause ignored", "state", s.stateLocked())
		return
	}

	now := s.clock.Now()
	elapsed := s.session.ElapsedSeconds(now)
	checkpoint := now.Add(seconds(s.session.TotalDurationSeconds - elapsed))
	s.session.PausedElapsedSeconds = elapsed
	s.session.IsPaused = true
	s.session.EndAt = &checkpoint

	s.stopTickerLocked()
	if err := s.notifier.OnSessionPauseOrCancel(ctx); err != nil {
		logging.Logger.Warn("Failed to cancel pending notification", "error", err)
	}
	s.persistLocked(ctx, now)
	s.emitLocked(now)
	s.effects = append(s.effects, s.haptics.Impact)

	logging.Logger.Info("Timer paused", "task", s.session.Task.Name, "elapsed", elapsed)
}

// Resume continues a paused session from where it stopped
func (s *TimerService) Resume(ctx context.Context) {
	s.mu.Lock()
	defer s.unlock()

	if s.session == nil || !s.session.IsPaused {
		logging.Logger.Debug("Resume ignored", "state", s.stateLocked())
		return
	}

	now := s.clock.Now()
	endAt := now.Add(seconds(s.session.TotalDurationSeconds - s.session.PausedElapsedSeconds))
	s.session.EndAt = &endAt
	s.session.StartedAt = now
	s.session.IsPaused = false
	s.session.PausedElapsedSeconds = 0

	s.persistLocked(ctx, now)
	s.scheduleLocked(ctx)
	s.startTickerLocked()
	s.emitLocked(now)
	s.effects = append(s.effects, s.haptics.Impact)

	logging.Logger.Info("Timer resumed", "task", s.session.Task.Name, "end_at", endAt)
}

// Cancel drops the session and its persisted copy; calling it while idle does nothing
func (s *TimerService) Cancel(ctx context.Context) {
	s.mu.Lock()
	defer s.unlock()

	if s.session == nil {
		logging.Logger.Debug("Cancel ignored, timer idle")
		return
	}

	name := s.session.Task.Name
	s.clearLocked(ctx)
	s.emitLocked(s.clock.Now())
	s.effects = append(s.effects, s.haptics.Impact)

	logging.Logger.Info("Timer cancelled", "task", name)
}

// AdjustTime adds deltaSeconds to the session total.
// The total never drops below one second past the time already elapsed.
func (s *TimerService) AdjustTime(ctx context.Context, deltaSeconds int) {
	s.mu.Lock()
	defer s.unlock()

	if s.session == nil {
		logging.Logger.Debug("Adjust ignored, timer idle")
		return
	}

	now := s.clock.Now()
	session := s.session
	elapsed := session.ElapsedSeconds(now)
	total := max(elapsed+1, session.TotalDurationSeconds+deltaSeconds)
	shift := total - session.TotalDurationSeconds
	session.TotalDurationSeconds = total

	endAt := session.EndAt.Add(time.Duration(shift) * time.Second)
	session.EndAt = &endAt
	if !session.IsPaused {
		s.scheduleLocked(ctx)
	}
	s.persistLocked(ctx, now)
	s.emitLocked(now)

	logging.Logger.Info("Timer adjusted", "task", session.Task.Name, "delta", deltaSeconds, "total", total)
}

// Refresh recomputes the session from the clock, completing it when time is up.
// Call it when the host regains the foreground; the ticker calls it periodically.
func (s *TimerService) Refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.unlock()
	s.recomputeLocked(ctx)
}

// View returns the current observable state
func (s *TimerService) View() domain.TimerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(s.clock.Now())
}

// Subscribe returns a channel receiving a view after every transition and tick.
// Views are dropped when the channel buffer is full.
func (s *TimerService) Subscribe(buffer int) <-chan domain.TimerView {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.TimerView, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Close stops ticking and closes subscriber channels.
// The persisted session is kept so a later process can restore it.
func (s *TimerService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTickerLocked()
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

// configureLocked replaces the session with a fresh run of task
func (s *TimerService) configureLocked(ctx context.Context, task domain.Task, mode domain.TimerMode, pomodoro domain.PomodoroState) {
	now := s.clock.Now()
	total := max(0, task.DurationSeconds)
	endAt := now.Add(seconds(total))

	s.session = &domain.Session{
		EndAt:                &endAt,
		Mode:                 mode,
		Pomodoro:             pomodoro,
		StartedAt:            now,
		Task:                 task,
		TotalDurationSeconds: total,
	}

	s.persistLocked(ctx, now)
	s.scheduleLocked(ctx)
	s.startTickerLocked()
	s.emitLocked(now)
}

func (s *TimerService) recomputeLocked(ctx context.Context) {
	if s.session == nil || s.session.IsPaused {
		return
	}

	now := s.clock.Now()
	if s.session.SecondsUntilEnd(now) <= 0 {
		s.completeLocked(ctx, now)
		return
	}
	s.emitLocked(now)
}

// completeLocked ends the current segment. Plain sessions go idle with
// feedback; Pomodoro sessions move to their next segment.
func (s *TimerService) completeLocked(ctx context.Context, now time.Time) {
	if s.session.Pomodoro.Active {
		s.advancePomodoroLocked(ctx)
		return
	}

	name := s.session.Task.Name
	s.session = nil
	s.stopTickerLocked()
	if err := s.store.ClearSessionSnapshot(ctx); err != nil {
		logging.Logger.Warn("Failed to clear session snapshot", "error", err)
	}
	s.emitLocked(now)

	// The notification tool runs outside mu along with the other feedback
	sound := s.settings.Current().Sound
	s.effects = append(s.effects, func() {
		if err := s.notifier.OnSessionComplete(ctx, name); err != nil {
			logging.Logger.Warn("Failed to send completion notification", "error", err)
		}
		authorized := s.notifier.IsAuthorized(ctx)
		if sound != domain.SoundSilent {
			if err := s.sound.PlaySound(sound); err != nil {
				logging.Logger.Warn("Failed to play completion sound", "error", err)
			}
		}
		s.haptics.Success()
		if !authorized {
			s.haptics.Success()
		}
		logging.Logger.Info("Timer completed", "task", name, "notifications_authorized", authorized)
	})
}

// clearLocked returns to idle and erases the persisted session
func (s *TimerService) clearLocked(ctx context.Context) {
	s.session = nil
	s.stopTickerLocked()
	if err := s.notifier.OnSessionPauseOrCancel(ctx); err != nil {
		logging.Logger.Warn("Failed to cancel pending notification", "error", err)
	}
	if err := s.store.ClearSessionSnapshot(ctx); err != nil {
		logging.Logger.Warn("Failed to clear session snapshot", "error", err)
	}
}

func (s *TimerService) persistLocked(ctx context.Context, now time.Time) {
	if err := s.store.WriteSessionSnapshot(ctx, domain.SnapshotOf(s.session, now)); err != nil {
		logging.Logger.Warn("Failed to persist session snapshot", "error", err)
	}
}

func (s *TimerService) scheduleLocked(ctx context.Context) {
	if err := s.notifier.OnSessionStart(ctx, s.session.Task.Name, *s.session.EndAt); err != nil {
		logging.Logger.Warn("Failed to schedule notification", "error", err)
	}
}

// startTickerLocked replaces the ticker goroutine; ticks from the old one are ignored
func (s *TimerService) startTickerLocked() {
	s.stopTickerLocked()
	if s.closed {
		return
	}

	s.generation++
	ticker := s.clock.NewTicker(s.tickInterval)
	stopCh := make(chan struct{})
	s.ticker = ticker
	s.stopCh = stopCh
	go s.run(s.generation, ticker, stopCh)
}

func (s *TimerService) stopTickerLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.stopCh)
	s.ticker = nil
	s.stopCh = nil
}

func (s *TimerService) run(generation uint64, ticker ports.Ticker, stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			s.tick(generation)
		}
	}
}

func (s *TimerService) tick(generation uint64) {
	s.mu.Lock()
	defer s.unlock()

	if generation != s.generation || s.ticker == nil {
		return
	}
	s.recomputeLocked(context.Background())
}

func (s *TimerService) emitLocked(now time.Time) {
	if len(s.subscribers) == 0 {
		return
	}
	view := s.viewLocked(now)
	for _, ch := range s.subscribers {
		select {
		case ch <- view:
		default:
		}
	}
}

func (s *TimerService) viewLocked(now time.Time) domain.TimerView {
	return domain.ViewOf(s.session, s.settings.Current().TimerMode, now)
}

func (s *TimerService) stateLocked() domain.TimerState {
	if s.session == nil {
		return domain.StateIdle
	}
	return s.session.State()
}

// unlock releases mu and then runs the queued feedback
func (s *TimerService) unlock() {
	effects := s.effects
	s.effects = nil
	s.mu.Unlock()

	for _, fn := range effects {
		fn()
	}
}

func seconds(n int) time.Duration {
	return time.Duration(max(0, n)) * time.Second
}
