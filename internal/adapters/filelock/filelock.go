package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tasktimers/internal/logging"
)

// ErrLocked is returned by TryAcquire when another process holds the lock
var ErrLocked = errors.New("lock held by another process")

// Lock is an exclusive advisory lock held on a file
type Lock struct {
	file *os.File
}

// TryAcquire takes the lock without waiting and returns ErrLocked if it is held
func TryAcquire(path string) (*Lock, error) {
	file, err := openLockFile(path)
	if err != nil {
		return nil, err
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		if errors.Is(err, ErrLocked) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	logging.Logger.Debug("Acquired file lock", "path", path)
	return &Lock{file: file}, nil
}

func openLockFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	return file, nil
}

// Release unlocks and closes the file
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := unlockFile(l.file); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to unlock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	logging.Logger.Debug("Released file lock")
	return nil
}
