package git

import (
	"context"
	"fmt"
	"time"

	"greener/internal/domain"
	"greener/internal/logging"
)

// stageFile adds a single path to the index
func stageFile(ctx context.Context, repoPath, path string) error {
	if _, err := runGit(ctx, repoPath, nil, "add", "--", path); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// commitAt commits the index with both author and committer dates set to timestamp
func commitAt(ctx context.Context, repoPath, message string, timestamp time.Time) error {
	date := timestamp.Format(domain.TimestampLayout)
	env := []string{
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}

	logging.Logger.Info("Creating commit", "repo_path", repoPath, "date", date, "message", message)
	if _, err := runGit(ctx, repoPath, env, "commit", "-m", message); err != nil {
		logging.Logger.Warn("Git commit failed", "error", err, "date", date)
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// push runs a plain git push against the configured remote
func push(ctx context.Context, repoPath string) error {
	logging.Logger.Info("Pushing to remote", "repo_path", repoPath)
	if _, err := runGit(ctx, repoPath, nil, "push"); err != nil {
		logging.Logger.Error("Git push failed", "error", err)
		return fmt.Errorf("failed to push: %w", err)
	}
	logging.Logger.Info("Push completed", "repo_path", repoPath)
	return nil
}
