package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

// SQLiteRepository implements ports.StateStore on a key/value table using GORM
type SQLiteRepository struct {
	entryStore
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateStore = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the application logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TASKTIMERS_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the state database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate entries schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	repo := &SQLiteRepository{db: db}
	repo.entryStore = entryStore{backend: repo}
	return repo, nil
}

// NewSQLiteRepositoryForPath opens state.db inside a TASKTIMERS_HOME directory
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *SQLiteRepository) loadEntries(ctx context.Context, keys []string) (map[string]string, error) {
	var models []EntryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("entry_key IN ?", keys).Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	entries := make(map[string]string, len(models))
	for _, m := range models {
		entries[m.Key] = m.Value
	}
	return entries, nil
}

func (r *SQLiteRepository) saveEntries(ctx context.Context, set map[string]string, unset []string) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if len(unset) > 0 {
				if err := tx.Where("entry_key IN ?", unset).Delete(&EntryModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete entries: %w", err)
				}
			}
			if len(set) == 0 {
				return nil
			}

			models := make([]EntryModel, 0, len(set))
			for key, value := range set {
				models = append(models, EntryModel{Key: key, Value: value})
			}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "entry_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&models).Error
		})
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
