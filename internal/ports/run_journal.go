package ports

import (
	"context"

	"greener/internal/domain"
)

// RunJournalWriter records runs as they happen
type RunJournalWriter interface {
	BeginRun(ctx context.Context, run domain.RunSummary) error
	FinishRun(ctx context.Context, run domain.RunSummary) error
	RecordAttempt(ctx context.Context, attempt domain.AttemptRecord) error
}

// RunJournalReader reads past runs back
type RunJournalReader interface {
	GetRun(ctx context.Context, id string) (*domain.RunSummary, []domain.AttemptRecord, error)
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)
}

// RunJournal is the composite interface
type RunJournal interface {
	RunJournalReader
	RunJournalWriter
	Close() error
}
