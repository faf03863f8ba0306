package git

import (
	"context"
	"time"

	"greener/internal/domain"
	"greener/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// RepoInspector methods

// IsGitRepo implements RepoInspector.IsGitRepo
func (r *CLIRepository) IsGitRepo(path string) bool {
	return domain.HasGitMetadata(path)
}

// StatusReader methods

// ListUntracked implements StatusReader.ListUntracked
func (r *CLIRepository) ListUntracked(ctx context.Context, repoPath string) ([]string, error) {
	return listUntracked(ctx, repoPath)
}

// ListModified implements StatusReader.ListModified
func (r *CLIRepository) ListModified(ctx context.Context, repoPath string) ([]string, error) {
	return listModified(ctx, repoPath)
}

// ListStaged implements StatusReader.ListStaged
func (r *CLIRepository) ListStaged(ctx context.Context, repoPath string) ([]string, error) {
	return listStaged(ctx, repoPath)
}

// CommitWriter methods

// StageFile implements CommitWriter.StageFile
func (r *CLIRepository) StageFile(ctx context.Context, repoPath, path string) error {
	return stageFile(ctx, repoPath, path)
}

// Commit implements CommitWriter.Commit
func (r *CLIRepository) Commit(ctx context.Context, repoPath, message string, timestamp time.Time) error {
	return commitAt(ctx, repoPath, message, timestamp)
}

// Pusher methods

// Push implements Pusher.Push
func (r *CLIRepository) Push(ctx context.Context, repoPath string) error {
	return push(ctx, repoPath)
}
