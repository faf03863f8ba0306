package services

import (
	"context"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/ports"
)

// CommitExecutor stages a section and commits it at the requested date
type CommitExecutor struct {
	writer ports.CommitWriter
}

// NewCommitExecutor creates a new CommitExecutor
func NewCommitExecutor(writer ports.CommitWriter) *CommitExecutor {
	return &CommitExecutor{
		writer: writer,
	}
}

// Execute stages every file of the request one by one and creates a single
// commit dated at req.Timestamp. Staging is best-effort: a file that fails to
// stage is logged and skipped. The result reflects the commit alone.
func (e *CommitExecutor) Execute(ctx context.Context, repoPath string, req domain.CommitRequest) bool {
	if len(req.Files) == 0 {
		logging.Logger.Warn("No files to commit in this section", "section", req.SectionLabel())
		return false
	}

	for _, file := range req.Files {
		if err := e.writer.StageFile(ctx, repoPath, string(file)); err != nil {
			logging.Logger.Warn("Failed to stage file", "file", file, "error", err)
		}
	}

	if err := e.writer.Commit(ctx, repoPath, req.Message, req.Timestamp); err != nil {
		logging.Logger.Warn("Commit attempt failed",
			"attempt", req.Attempt,
			"section", req.SectionLabel(),
			"error", err)
		return false
	}

	logging.Logger.Debug("Commit attempt succeeded", "attempt", req.Attempt, "section", req.SectionLabel())
	return true
}
