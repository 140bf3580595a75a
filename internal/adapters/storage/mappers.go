package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
)

// Persisted keys
const (
	KeySessionTaskID       = "tasktimers.session.task_id"
	KeySessionTaskName     = "tasktimers.session.task_name"
	KeySessionTaskDuration = "tasktimers.session.task_duration"
	KeySessionTotal        = "tasktimers.session.total"
	KeySessionEndAt        = "tasktimers.session.end_at"
	KeySessionMode         = "tasktimers.session.mode"
	KeySessionPaused       = "tasktimers.session.paused"
	KeySessionDisplay      = "tasktimers.session.display"
	KeySessionPomodoro     = "tasktimers.session.pomodoro"

	KeyTasks     = "tasktimers.tasks"
	KeyTimerMode = "tasktimers.timer_mode"
	KeyTheme     = "tasktimers.theme"
	KeySound     = "tasktimers.sound"
	KeyPomodoro  = "tasktimers.pomodoro"
	KeyLastTask  = "tasktimers.last_task"
)

var sessionKeys = []string{
	KeySessionTaskID,
	KeySessionTaskName,
	KeySessionTaskDuration,
	KeySessionTotal,
	KeySessionEndAt,
	KeySessionMode,
	KeySessionPaused,
	KeySessionDisplay,
	KeySessionPomodoro,
}

var settingsKeys = []string{KeyTimerMode, KeyTheme, KeySound, KeyPomodoro}

// entryBackend is the raw key/value layer under a repository
type entryBackend interface {
	loadEntries(ctx context.Context, keys []string) (map[string]string, error)
	saveEntries(ctx context.Context, set map[string]string, unset []string) error
}

// entryStore maps domain values onto entries and implements ports.StateStore minus Close
type entryStore struct {
	backend entryBackend
}

type taskRecord struct {
	Duration int    `json:"duration"`
	ID       string `json:"id"`
	Name     string `json:"name"`
}

type pomodoroStateRecord struct {
	Active  bool `json:"active"`
	Cycle   int  `json:"cycle"`
	OnBreak bool `json:"on_break"`
}

type pomodoroSettingsRecord struct {
	Break      int   `json:"break"`
	Cycles     int   `json:"cycles"`
	FinalBreak *bool `json:"final_break,omitempty"`
	Work       int   `json:"work"`
}

// WriteSessionSnapshot replaces every session key
func (s entryStore) WriteSessionSnapshot(ctx context.Context, snapshot domain.SessionSnapshot) error {
	set := map[string]string{
		KeySessionTaskID:       snapshot.TaskID,
		KeySessionTaskName:     snapshot.TaskName,
		KeySessionTaskDuration: strconv.Itoa(snapshot.TaskDurationSeconds),
		KeySessionTotal:        strconv.Itoa(snapshot.TotalSeconds),
		KeySessionEndAt:        formatEpoch(snapshot.EndAt),
		KeySessionMode:         string(snapshot.Mode),
		KeySessionPaused:       strconv.FormatBool(snapshot.Paused),
	}
	var unset []string
	if snapshot.DisplayAbsent {
		unset = append(unset, KeySessionDisplay)
	} else {
		set[KeySessionDisplay] = strconv.Itoa(snapshot.DisplaySeconds)
	}
	if snapshot.Pomodoro != nil {
		data, err := json.Marshal(pomodoroStateRecord{
			Active:  snapshot.Pomodoro.Active,
			Cycle:   snapshot.Pomodoro.CurrentCycle,
			OnBreak: snapshot.Pomodoro.OnBreak,
		})
		if err != nil {
			return fmt.Errorf("failed to encode pomodoro state: %w", err)
		}
		set[KeySessionPomodoro] = string(data)
	} else {
		unset = append(unset, KeySessionPomodoro)
	}
	return s.backend.saveEntries(ctx, set, unset)
}

// ReadSessionSnapshot returns nil when no session was persisted
func (s entryStore) ReadSessionSnapshot(ctx context.Context) (*domain.SessionSnapshot, error) {
	entries, err := s.backend.loadEntries(ctx, sessionKeys)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(entries)
}

// ClearSessionSnapshot erases every session key
func (s entryStore) ClearSessionSnapshot(ctx context.Context) error {
	return s.backend.saveEntries(ctx, nil, sessionKeys)
}

// WriteTaskCatalog stores the ordered task list
func (s entryStore) WriteTaskCatalog(ctx context.Context, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, taskRecord{
			Duration: task.DurationSeconds,
			ID:       task.ID.String(),
			Name:     task.Name,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode task catalog: %w", err)
	}
	return s.backend.saveEntries(ctx, map[string]string{KeyTasks: string(data)}, nil)
}

// ReadTaskCatalog returns nil when no catalog was persisted
func (s entryStore) ReadTaskCatalog(ctx context.Context) ([]domain.Task, error) {
	entries, err := s.backend.loadEntries(ctx, []string{KeyTasks})
	if err != nil {
		return nil, err
	}
	raw, ok := entries[KeyTasks]
	if !ok {
		return nil, nil
	}

	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to decode task catalog: %w", err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		id, err := uuid.Parse(record.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to decode task id %q: %w", record.ID, err)
		}
		tasks = append(tasks, domain.Task{
			DurationSeconds: record.Duration,
			ID:              id,
			Name:            record.Name,
		})
	}
	return tasks, nil
}

// WriteSettings stores the user preferences
func (s entryStore) WriteSettings(ctx context.Context, settings domain.Settings) error {
	finalBreak := settings.Pomodoro.BreakAfterFinalCycle
	data, err := json.Marshal(pomodoroSettingsRecord{
		Break:      settings.Pomodoro.BreakSeconds,
		Cycles:     settings.Pomodoro.Cycles,
		FinalBreak: &finalBreak,
		Work:       settings.Pomodoro.WorkSeconds,
	})
	if err != nil {
		return fmt.Errorf("failed to encode pomodoro settings: %w", err)
	}
	return s.backend.saveEntries(ctx, map[string]string{
		KeyTimerMode: string(settings.TimerMode),
		KeyTheme:     string(settings.Theme),
		KeySound:     string(settings.Sound),
		KeyPomodoro:  string(data),
	}, nil)
}

// ReadSettings returns nil when no preference was ever stored.
// Each key falls back to its default on its own.
func (s entryStore) ReadSettings(ctx context.Context) (*domain.Settings, error) {
	entries, err := s.backend.loadEntries(ctx, settingsKeys)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	settings := domain.DefaultSettings()
	if v, ok := entries[KeyTimerMode]; ok {
		settings.TimerMode = domain.ParseTimerMode(v)
	}
	if v, ok := entries[KeyTheme]; ok {
		settings.Theme = domain.ParseTheme(v)
	}
	if v, ok := entries[KeySound]; ok {
		settings.Sound = domain.ParseSoundChoice(v)
	}
	if v, ok := entries[KeyPomodoro]; ok {
		var record pomodoroSettingsRecord
		if err := json.Unmarshal([]byte(v), &record); err != nil {
			logging.Logger.Warn("Ignoring undecodable pomodoro settings", "error", err)
		} else {
			settings.Pomodoro = domain.PomodoroSettings{
				BreakAfterFinalCycle: record.FinalBreak == nil || *record.FinalBreak,
				BreakSeconds:         record.Break,
				Cycles:               record.Cycles,
				WorkSeconds:          record.Work,
			}.Normalize()
		}
	}
	return &settings, nil
}

// WriteLastTaskName remembers the most recently started task
func (s entryStore) WriteLastTaskName(ctx context.Context, name string) error {
	return s.backend.saveEntries(ctx, map[string]string{KeyLastTask: name}, nil)
}

// ReadLastTaskName returns "" when nothing was stored
func (s entryStore) ReadLastTaskName(ctx context.Context) (string, error) {
	entries, err := s.backend.loadEntries(ctx, []string{KeyLastTask})
	if err != nil {
		return "", err
	}
	return entries[KeyLastTask], nil
}

func decodeSnapshot(entries map[string]string) (*domain.SessionSnapshot, error) {
	taskID, hasID := entries[KeySessionTaskID]
	taskName, hasName := entries[KeySessionTaskName]
	if !hasID && !hasName {
		return nil, nil
	}

	snapshot := &domain.SessionSnapshot{
		Mode:     domain.ParseTimerMode(entries[KeySessionMode]),
		TaskID:   taskID,
		TaskName: taskName,
	}

	var err error
	if snapshot.TaskDurationSeconds, err = parseIntEntry(entries, KeySessionTaskDuration); err != nil {
		return nil, err
	}
	if snapshot.TotalSeconds, err = parseIntEntry(entries, KeySessionTotal); err != nil {
		return nil, err
	}
	if snapshot.DisplaySeconds, err = parseIntEntry(entries, KeySessionDisplay); err != nil {
		return nil, err
	}
	_, hasDisplay := entries[KeySessionDisplay]
	snapshot.DisplayAbsent = !hasDisplay
	if raw, ok := entries[KeySessionPaused]; ok {
		if snapshot.Paused, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", KeySessionPaused, err)
		}
	}
	if raw, ok := entries[KeySessionEndAt]; ok {
		if snapshot.EndAt, err = parseEpoch(raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", KeySessionEndAt, err)
		}
	}
	if raw, ok := entries[KeySessionPomodoro]; ok {
		var record pomodoroStateRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", KeySessionPomodoro, err)
		}
		snapshot.Pomodoro = &domain.PomodoroState{
			Active:       record.Active,
			CurrentCycle: record.Cycle,
			OnBreak:      record.OnBreak,
		}
	}
	return snapshot, nil
}

func parseIntEntry(entries map[string]string, key string) (int, error) {
	raw, ok := entries[key]
	if !ok {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return v, nil
}

// formatEpoch encodes t as fractional seconds since the Unix epoch
func formatEpoch(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatFloat(float64(t.UnixNano())/float64(time.Second), 'f', 3, 64)
}

func parseEpoch(raw string) (time.Time, error) {
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, err
	}
	if seconds == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(int64(math.Round(seconds * 1000))), nil
}
