package ports

import (
	"context"

	"tasktimers/internal/domain"
)

// Reads return (nil, nil) when nothing is stored and an error when the stored value
// cannot be decoded. Writes are last-write-wins.

// SessionSnapshotStore persists the active session
type SessionSnapshotStore interface {
	ClearSessionSnapshot(ctx context.Context) error
	ReadSessionSnapshot(ctx context.Context) (*domain.SessionSnapshot, error)
	WriteSessionSnapshot(ctx context.Context, snapshot domain.SessionSnapshot) error
}

// TaskCatalogStore persists the ordered task list
type TaskCatalogStore interface {
	ReadTaskCatalog(ctx context.Context) ([]domain.Task, error)
	WriteTaskCatalog(ctx context.Context, tasks []domain.Task) error
}

// SettingsStore persists user preferences
type SettingsStore interface {
	ReadSettings(ctx context.Context) (*domain.Settings, error)
	WriteSettings(ctx context.Context, settings domain.Settings) error
}

// LastTaskStore remembers the name of the last started task
type LastTaskStore interface {
	ReadLastTaskName(ctx context.Context) (string, error)
	WriteLastTaskName(ctx context.Context, name string) error
}

// StateStore is the composite interface
type StateStore interface {
	LastTaskStore
	SessionSnapshotStore
	SettingsStore
	TaskCatalogStore
	Close() error
}
