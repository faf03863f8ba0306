package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultCommitCount   = 20
	DefaultCommitMessage = "Update project files"
)

// RunConfig holds the validated inputs of a run
type RunConfig struct {
	BaseMessage  string
	CommitCount  int
	DateRange    DateRange
	RepoPath     string
	SectionCount int
}

// Validate checks every precondition that can be checked without touching git.
// Nothing is committed when it fails.
func (c RunConfig) Validate() error {
	if c.CommitCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCommitCount, c.CommitCount)
	}
	if c.SectionCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSectionCount, c.SectionCount)
	}
	if err := c.DateRange.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.BaseMessage) == "" {
		return fmt.Errorf("commit message must not be empty")
	}
	if !HasGitMetadata(c.RepoPath) {
		return fmt.Errorf("%w: %s", ErrInvalidRepo, c.RepoPath)
	}
	return nil
}

// HasGitMetadata reports whether path contains a .git entry.
// Worktrees and submodules use a .git file instead of a directory, both count.
func HasGitMetadata(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// SchedulerState tracks where a scheduler is in its lifecycle
type SchedulerState string

const (
	SchedulerNotStarted SchedulerState = "not_started"
	SchedulerRunning    SchedulerState = "running"
	SchedulerCompleted  SchedulerState = "completed"
)

// PushOutcome records what happened with the optional final push
type PushOutcome string

const (
	PushSkipped   PushOutcome = "skipped"
	PushSucceeded PushOutcome = "succeeded"
	PushFailed    PushOutcome = "failed"
)

// RunReport is the tally of a run
type RunReport struct {
	Attempts        []CommitResult
	NothingToCommit bool // No sections were available, zero attempts were made
	Push            PushOutcome
	Sections        []Section
	SuccessCount    int
	TotalCount      int
}

// FailureCount returns the number of failed attempts
func (r RunReport) FailureCount() int {
	return r.TotalCount - r.SuccessCount
}

// Summary renders the successCount/totalCount line
func (r RunReport) Summary() string {
	return fmt.Sprintf("%d/%d", r.SuccessCount, r.TotalCount)
}
