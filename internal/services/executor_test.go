package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"greener/internal/domain"
	portsmocks "greener/internal/ports/mocks"
)

func TestExecute_StagesEachFileThenCommits(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

	gitRepo.EXPECT().StageFile(mock.Anything, "/repo", "a.txt").Return(nil).Once()
	gitRepo.EXPECT().StageFile(mock.Anything, "/repo", "b.txt").Return(nil).Once()
	gitRepo.EXPECT().Commit(mock.Anything, "/repo", "msg (Section 1)", ts).Return(nil).Once()

	ok := NewCommitExecutor(gitRepo).Execute(context.Background(), "/repo", domain.CommitRequest{
		Files:     domain.Section{"a.txt", "b.txt"},
		Message:   "msg (Section 1)",
		Timestamp: ts,
	})

	assert.True(t, ok)
}

func TestExecute_StagingFailureDoesNotBlockOthers(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)

	gitRepo.EXPECT().StageFile(mock.Anything, "/repo", "a.txt").Return(errors.New("pathspec did not match")).Once()
	gitRepo.EXPECT().StageFile(mock.Anything, "/repo", "b.txt").Return(nil).Once()
	gitRepo.EXPECT().Commit(mock.Anything, "/repo", mock.Anything, mock.Anything).Return(nil).Once()

	ok := NewCommitExecutor(gitRepo).Execute(context.Background(), "/repo", domain.CommitRequest{
		Files:   domain.Section{"a.txt", "b.txt"},
		Message: "msg",
	})

	assert.True(t, ok, "outcome follows the commit, not staging")
}

func TestExecute_CommitFailure(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)

	gitRepo.EXPECT().StageFile(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gitRepo.EXPECT().Commit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("nothing to commit"))

	ok := NewCommitExecutor(gitRepo).Execute(context.Background(), "/repo", domain.CommitRequest{
		Files:   domain.Section{"a.txt"},
		Message: "msg",
	})

	assert.False(t, ok)
}

func TestExecute_EmptySectionSkipsGit(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)

	ok := NewCommitExecutor(gitRepo).Execute(context.Background(), "/repo", domain.CommitRequest{Message: "msg"})

	assert.False(t, ok)
	gitRepo.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPushTrigger_Outcomes(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().Push(mock.Anything, "/ok").Return(nil).Once()
	gitRepo.EXPECT().Push(mock.Anything, "/fail").Return(errors.New("rejected")).Once()

	trigger := NewPushTrigger(gitRepo)

	assert.Equal(t, domain.PushSucceeded, trigger.Push(context.Background(), "/ok"))
	assert.Equal(t, domain.PushFailed, trigger.Push(context.Background(), "/fail"))
}
