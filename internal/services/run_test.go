package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greener/internal/domain"
	portsmocks "greener/internal/ports/mocks"
)

// fakeRepoDir returns a directory that looks like a repository to the precondition checks
func fakeRepoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	return dir
}

func runConfig(t *testing.T, repoPath string, commits, sections int) domain.RunConfig {
	t.Helper()
	return domain.RunConfig{
		BaseMessage:  domain.DefaultCommitMessage,
		CommitCount:  commits,
		DateRange:    mustRange(t, "2024-01-01", "2024-01-31"),
		RepoPath:     repoPath,
		SectionCount: sections,
	}
}

func expectChangeset(gitRepo *portsmocks.MockGitRepository, repoPath string, untracked, modified, staged []string) {
	gitRepo.EXPECT().IsGitRepo(repoPath).Return(true)
	gitRepo.EXPECT().ListUntracked(mock.Anything, repoPath).Return(untracked, nil)
	gitRepo.EXPECT().ListModified(mock.Anything, repoPath).Return(modified, nil)
	gitRepo.EXPECT().ListStaged(mock.Anything, repoPath).Return(staged, nil)
}

func TestRunServiceExecute_PreconditionsTouchNothing(t *testing.T) {
	repo := fakeRepoDir(t)

	tests := []struct {
		name    string
		mutate  func(*domain.RunConfig)
		wantErr error
	}{
		{"zero commits", func(c *domain.RunConfig) { c.CommitCount = 0 }, domain.ErrInvalidCommitCount},
		{"zero sections", func(c *domain.RunConfig) { c.SectionCount = 0 }, domain.ErrInvalidSectionCount},
		{"reversed range", func(c *domain.RunConfig) {
			c.DateRange = domain.DateRange{Start: c.DateRange.End, End: c.DateRange.Start}
		}, domain.ErrInvalidDateRange},
		{"not a repository", func(c *domain.RunConfig) { c.RepoPath = t.TempDir() }, domain.ErrInvalidRepo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gitRepo := portsmocks.NewMockGitRepository(t)
			cfg := runConfig(t, repo, 5, 4)
			tt.mutate(&cfg)

			_, err := NewRunService(gitRepo, nil).Execute(context.Background(), ExecuteParams{Config: cfg})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunServiceExecute_CommitsAcrossSections(t *testing.T) {
	repo := fakeRepoDir(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(gitRepo, repo, []string{"e.txt", "d.txt"}, []string{"a.txt", "b.txt"}, []string{"c.txt"})

	var staged [][]string
	var current []string
	gitRepo.EXPECT().StageFile(mock.Anything, repo, mock.Anything).
		Run(func(_ context.Context, _ string, path string) { current = append(current, path) }).
		Return(nil)
	gitRepo.EXPECT().Commit(mock.Anything, repo, mock.Anything, mock.Anything).
		Run(func(context.Context, string, string, time.Time) {
			staged = append(staged, current)
			current = nil
		}).
		Return(nil).Times(5)

	var planned []domain.Section
	report, err := NewRunService(gitRepo, nil).Execute(context.Background(), ExecuteParams{
		Config: runConfig(t, repo, 5, 3),
		OnPlan: func(_ domain.Changeset, sections []domain.Section) { planned = sections },
		Seed:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, "5/5", report.Summary())
	require.Len(t, planned, 3)
	assert.Equal(t, [][]string{
		{"a.txt", "b.txt"},
		{"c.txt", "d.txt"},
		{"e.txt"},
		{"a.txt", "b.txt"},
		{"c.txt", "d.txt"},
	}, staged)
	assert.Equal(t, domain.PushSkipped, report.Push)
}

func TestRunServiceExecute_EmptyChangeset(t *testing.T) {
	repo := fakeRepoDir(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(gitRepo, repo, nil, nil, nil)
	journal := portsmocks.NewMockRunJournal(t)
	confirmer := portsmocks.NewMockPushConfirmer(t)

	report, err := NewRunService(gitRepo, journal).Execute(context.Background(), ExecuteParams{
		Config:        runConfig(t, repo, 5, 4),
		PushConfirmer: confirmer,
	})

	require.NoError(t, err)
	assert.True(t, report.NothingToCommit)
	assert.Zero(t, report.TotalCount)
	gitRepo.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	journal.AssertNotCalled(t, "BeginRun", mock.Anything, mock.Anything)
}

func TestRunServiceExecute_JournalsRun(t *testing.T) {
	repo := fakeRepoDir(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(gitRepo, repo, []string{"a.txt", "b.txt"}, nil, nil)
	gitRepo.EXPECT().StageFile(mock.Anything, repo, mock.Anything).Return(nil)
	gitRepo.EXPECT().Commit(mock.Anything, repo, mock.Anything, mock.Anything).Return(errors.New("boom")).Once()
	gitRepo.EXPECT().Commit(mock.Anything, repo, mock.Anything, mock.Anything).Return(nil).Times(2)

	journal := portsmocks.NewMockRunJournal(t)
	var runID string
	journal.EXPECT().BeginRun(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.RunSummary) { runID = run.ID }).
		Return(nil).Once()

	var records []domain.AttemptRecord
	journal.EXPECT().RecordAttempt(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rec domain.AttemptRecord) { records = append(records, rec) }).
		Return(nil).Times(3)

	var finished domain.RunSummary
	journal.EXPECT().FinishRun(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.RunSummary) { finished = run }).
		Return(nil).Once()

	report, err := NewRunService(gitRepo, journal).Execute(context.Background(), ExecuteParams{
		Config: runConfig(t, repo, 3, 2),
	})

	require.NoError(t, err)
	assert.Equal(t, "2/3", report.Summary())
	assert.NotEmpty(t, runID)

	require.Len(t, records, 3)
	assert.False(t, records[0].Succeeded)
	assert.True(t, records[1].Succeeded)
	for i, rec := range records {
		assert.Equal(t, runID, rec.RunID)
		assert.Equal(t, i, rec.Attempt)
	}

	assert.Equal(t, runID, finished.ID)
	assert.Equal(t, 2, finished.SuccessCount)
	assert.Equal(t, 3, finished.TotalCount)
	assert.Equal(t, "2024-01-01", finished.StartDate)
	assert.Equal(t, "2024-01-31", finished.EndDate)
	require.NotNil(t, finished.FinishedAt)
}

func TestRunServiceExecute_JournalFailureDoesNotStopRun(t *testing.T) {
	repo := fakeRepoDir(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(gitRepo, repo, []string{"a.txt"}, nil, nil)
	gitRepo.EXPECT().StageFile(mock.Anything, repo, "a.txt").Return(nil)
	gitRepo.EXPECT().Commit(mock.Anything, repo, mock.Anything, mock.Anything).Return(nil).Times(2)

	journal := portsmocks.NewMockRunJournal(t)
	journal.EXPECT().BeginRun(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	report, err := NewRunService(gitRepo, journal).Execute(context.Background(), ExecuteParams{
		Config: runConfig(t, repo, 2, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, "2/2", report.Summary())
	journal.AssertNotCalled(t, "RecordAttempt", mock.Anything, mock.Anything)
	journal.AssertNotCalled(t, "FinishRun", mock.Anything, mock.Anything)
}

func TestRunServicePlan_MatchesExecute(t *testing.T) {
	repo := fakeRepoDir(t)
	const seed = 20240101

	planRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(planRepo, repo, []string{"a.txt", "b.txt", "c.txt"}, nil, nil)
	plan, err := NewRunService(planRepo, nil).Plan(context.Background(), runConfig(t, repo, 6, 2), seed)
	require.NoError(t, err)
	require.Len(t, plan.Requests, 6)
	assert.Len(t, plan.Sections, 2)
	planRepo.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	execRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(execRepo, repo, []string{"a.txt", "b.txt", "c.txt"}, nil, nil)
	execRepo.EXPECT().StageFile(mock.Anything, repo, mock.Anything).Return(nil)
	execRepo.EXPECT().Commit(mock.Anything, repo, mock.Anything, mock.Anything).Return(nil)

	report, err := NewRunService(execRepo, nil).Execute(context.Background(), ExecuteParams{
		Config: runConfig(t, repo, 6, 2),
		Seed:   seed,
	})
	require.NoError(t, err)

	for i, req := range plan.Requests {
		got := report.Attempts[i].Request
		assert.True(t, req.Timestamp.Equal(got.Timestamp), "attempt %d", i)
		assert.Equal(t, req.SectionIndex, got.SectionIndex)
		assert.Equal(t, req.Message, got.Message)
	}
}

func TestRunServicePlan_EmptyChangeset(t *testing.T) {
	repo := fakeRepoDir(t)
	gitRepo := portsmocks.NewMockGitRepository(t)
	expectChangeset(gitRepo, repo, nil, nil, nil)

	_, err := NewRunService(gitRepo, nil).Plan(context.Background(), runConfig(t, repo, 3, 4), 1)

	assert.ErrorIs(t, err, domain.ErrEmptyChangeset)
}
