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
	"gorm.io/gorm/logger"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/ports"
)

const (
	journalFileName = "journal.db"
	maxRetries      = 3
)

// SQLiteRepository implements ports.RunJournal using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RunJournal = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the greener logger
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
	if os.Getenv("GREENER_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the journal database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
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

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&RunModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate runs schema: %w", err)
		}
	}

	if !db.Migrator().HasTable(&AttemptModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS run_attempts (
				run_id TEXT NOT NULL,
				attempt INTEGER NOT NULL,
				section_index INTEGER NOT NULL DEFAULT 0,
				message TEXT NOT NULL DEFAULT '',
				files TEXT NOT NULL,
				succeeded INTEGER NOT NULL DEFAULT 0,
				timestamp DATETIME NOT NULL,
				created_at DATETIME,
				PRIMARY KEY (run_id, attempt),
				FOREIGN KEY (run_id) REFERENCES runs(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create run_attempts table: %w", err)
		}
	}

	// A single writer is enough for one CLI process
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Run journal opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath opens the journal inside a GREENER_HOME directory
func NewSQLiteRepositoryForPath(greenerHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(greenerHomePath, journalFileName))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// BeginRun implements RunJournalWriter.BeginRun
func (r *SQLiteRepository) BeginRun(ctx context.Context, run domain.RunSummary) error {
	if run.ID == "" {
		return fmt.Errorf("run id must not be empty")
	}
	model := domainToRunModel(run)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, maxRetries)
}

// RecordAttempt implements RunJournalWriter.RecordAttempt
func (r *SQLiteRepository) RecordAttempt(ctx context.Context, attempt domain.AttemptRecord) error {
	model := domainToAttemptModel(attempt)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, maxRetries)
}

// FinishRun implements RunJournalWriter.FinishRun
func (r *SQLiteRepository) FinishRun(ctx context.Context, run domain.RunSummary) error {
	model := domainToRunModel(run)
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&RunModel{}).
			Where("id = ?", run.ID).
			Updates(map[string]any{
				"finished_at":   model.FinishedAt,
				"push":          model.Push,
				"success_count": model.SuccessCount,
				"total_count":   model.TotalCount,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrRunNotFound, run.ID)
		}
		return nil
	}, maxRetries)
}

// GetRun implements RunJournalReader.GetRun. id may be a unique prefix.
func (r *SQLiteRepository) GetRun(ctx context.Context, id string) (*domain.RunSummary, []domain.AttemptRecord, error) {
	if id == "" {
		return nil, nil, fmt.Errorf("%w: empty id", domain.ErrRunNotFound)
	}

	var run RunModel
	var attempts []AttemptModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var matches []RunModel
			if err := tx.Where("id = ?", id).Limit(1).Find(&matches).Error; err != nil {
				return err
			}
			if len(matches) == 0 {
				if err := tx.Where("id LIKE ?", id+"%").Limit(2).Find(&matches).Error; err != nil {
					return err
				}
			}
			switch len(matches) {
			case 0:
				return gorm.ErrRecordNotFound
			case 1:
				run = matches[0]
			default:
				return fmt.Errorf("run id prefix %q is ambiguous", id)
			}

			return tx.Where("run_id = ?", run.ID).Order("attempt ASC").Find(&attempts).Error
		})
	}, maxRetries)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
		}
		return nil, nil, err
	}

	summary := runModelToDomain(run)
	records := make([]domain.AttemptRecord, 0, len(attempts))
	for _, a := range attempts {
		records = append(records, attemptModelToDomain(a))
	}
	return &summary, records, nil
}

// ListRuns implements RunJournalReader.ListRuns, newest first.
// A limit below one returns every run.
func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	var models []RunModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("started_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	runs := make([]domain.RunSummary, 0, len(models))
	for _, m := range models {
		runs = append(runs, runModelToDomain(m))
	}
	return runs, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Journal busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
