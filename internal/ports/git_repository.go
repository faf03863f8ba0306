package ports

import (
	"context"
	"time"
)

// RepoInspector checks repository metadata
type RepoInspector interface {
	IsGitRepo(path string) bool
}

// StatusReader runs the read-only status queries used for changeset discovery.
// Each query returns repository-relative paths.
type StatusReader interface {
	ListModified(ctx context.Context, repoPath string) ([]string, error)
	ListStaged(ctx context.Context, repoPath string) ([]string, error)
	ListUntracked(ctx context.Context, repoPath string) ([]string, error)
}

// CommitWriter stages files and creates commits with an overridden date
type CommitWriter interface {
	Commit(ctx context.Context, repoPath, message string, timestamp time.Time) error
	StageFile(ctx context.Context, repoPath, path string) error
}

// Pusher forwards local history to the configured remote
type Pusher interface {
	Push(ctx context.Context, repoPath string) error
}

// GitRepository is the composite interface
type GitRepository interface {
	CommitWriter
	Pusher
	RepoInspector
	StatusReader
}
