package services

import (
	"context"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/ports"
)

// ChangesetService discovers the files eligible for committing
type ChangesetService struct {
	status ports.StatusReader
}

// NewChangesetService creates a new ChangesetService
func NewChangesetService(status ports.StatusReader) *ChangesetService {
	return &ChangesetService{
		status: status,
	}
}

// Discover returns the untracked, modified and staged files of repoPath.
// The three queries run one after another. A failed query counts as an
// empty result for its category so the others can still contribute.
func (s *ChangesetService) Discover(ctx context.Context, repoPath string) domain.Changeset {
	logging.Logger.Debug("Discovering changeset", "repo_path", repoPath)

	untracked := s.query(ctx, "untracked", repoPath, s.status.ListUntracked)
	modified := s.query(ctx, "modified", repoPath, s.status.ListModified)
	staged := s.query(ctx, "staged", repoPath, s.status.ListStaged)

	files := domain.NewChangeset(untracked, modified, staged)
	logging.Logger.Info("Changeset discovered",
		"repo_path", repoPath,
		"untracked", len(untracked),
		"modified", len(modified),
		"staged", len(staged),
		"total", len(files))
	return files
}

func (s *ChangesetService) query(
	ctx context.Context,
	category string,
	repoPath string,
	list func(context.Context, string) ([]string, error),
) []string {
	paths, err := list(ctx, repoPath)
	if err != nil {
		logging.Logger.Warn("Status query failed, treating as empty",
			"category", category,
			"repo_path", repoPath,
			"error", err)
		return nil
	}
	return paths
}
