package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	adapterclock "tasktimers/internal/adapters/clock"
	"tasktimers/internal/adapters/filelock"
	adapterhaptics "tasktimers/internal/adapters/haptics"
	adapternotify "tasktimers/internal/adapters/notify"
	adaptersound "tasktimers/internal/adapters/sound"
	adapterstorage "tasktimers/internal/adapters/storage"
	"tasktimers/internal/config"
	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
	"tasktimers/internal/services"
)

// ContainerOptions selects the adapters a Container is built with
type ContainerOptions struct {
	DBPath        string
	Ephemeral     bool // In-memory store and no cross-process lock
	Notifications bool
	TickInterval  time.Duration
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	CatalogService  *services.CatalogService
	SettingsService *services.SettingsService
	TimerService    *services.TimerService

	// Internal - for cleanup only
	lock  *filelock.Lock
	store ports.StateStore
}

// NewContainer creates a new Container with all dependencies wired.
// Settings and the task catalog are loaded before the timer restores its session.
func NewContainer(ctx context.Context, opts ContainerOptions) (*Container, error) {
	var lock *filelock.Lock
	if !opts.Ephemeral {
		l, err := filelock.TryAcquire(config.GetLockPath(opts.DBPath))
		if err != nil {
			if errors.Is(err, filelock.ErrLocked) {
				return nil, fmt.Errorf("another tasktimers process is using %s: %w", opts.DBPath, err)
			}
			return nil, err
		}
		lock = l
	}

	store, err := NewStateStore(opts)
	if err != nil {
		lock.Release()
		return nil, err
	}

	settingsService := services.NewSettingsService(store)
	settingsService.Load(ctx)

	catalogService := services.NewCatalogService(store)
	catalogService.Load(ctx)

	clk := adapterclock.NewRealClock()
	timerService := services.NewTimerService(ctx, services.TimerServiceParams{
		Clock:        clk,
		Haptics:      adapterhaptics.NewTerminal(),
		Notifier:     adapternotify.NewDesktopNotifier(clk, opts.Notifications),
		Settings:     settingsService,
		Sound:        adaptersound.NewPlayer(),
		Store:        store,
		Tasks:        catalogService,
		TickInterval: opts.TickInterval,
	})

	logging.Logger.Debug("Container ready", "db_path", opts.DBPath, "ephemeral", opts.Ephemeral)
	return &Container{
		CatalogService:  catalogService,
		SettingsService: settingsService,
		TimerService:    timerService,
		lock:            lock,
		store:           store,
	}, nil
}

// NewStateStore opens the persistence gateway selected by opts
func NewStateStore(opts ContainerOptions) (ports.StateStore, error) {
	if opts.Ephemeral {
		return adapterstorage.NewMemoryRepository(), nil
	}
	repo, err := adapterstorage.NewSQLiteRepository(opts.DBPath)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.TimerService != nil {
		c.TimerService.Close()
	}

	var errs []error
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.lock.Release(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
