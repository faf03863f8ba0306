package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greener/internal/config"
	"greener/internal/domain"
	"greener/internal/ui"
)

func defaultFlags() RunFlags {
	return RunFlags{
		Count:    domain.DefaultCommitCount,
		Message:  domain.DefaultCommitMessage,
		Repo:     ".",
		Sections: domain.DefaultSectionCount,
	}
}

func intPtr(v int) *int { return &v }

func TestApplySettings_OnlyFillsDefaults(t *testing.T) {
	settings := &config.Settings{
		CommitCount:   intPtr(7),
		CommitMessage: "From settings",
		SectionCount:  intPtr(2),
	}

	flags := defaultFlags()
	flags.applySettings(settings)
	assert.Equal(t, 7, flags.Count)
	assert.Equal(t, "From settings", flags.Message)
	assert.Equal(t, 2, flags.Sections)

	explicit := defaultFlags()
	explicit.Count = 3
	explicit.Message = "From flag"
	explicit.applySettings(settings)
	assert.Equal(t, 3, explicit.Count)
	assert.Equal(t, "From flag", explicit.Message)

	untouched := defaultFlags()
	untouched.applySettings(nil)
	assert.Equal(t, defaultFlags(), untouched)
}

func TestResolveConfig_FromFlags(t *testing.T) {
	repo := t.TempDir()
	flags := defaultFlags()
	flags.Repo = repo
	flags.Start = "2024-01-01"
	flags.End = " 2024-01-31 "
	flags.Message = "  Tidy  "

	cfg, err := flags.resolveConfig(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, repo, cfg.RepoPath)
	assert.Equal(t, "2024-01-01..2024-01-31", cfg.DateRange.String())
	assert.Equal(t, "Tidy", cfg.BaseMessage)
	assert.Equal(t, 20, cfg.CommitCount)
	assert.Equal(t, 4, cfg.SectionCount)
}

func TestResolveConfig_MissingDatesWithoutPrompt(t *testing.T) {
	flags := defaultFlags()
	flags.Start = "2024-01-01"

	_, err := flags.resolveConfig(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Contains(t, err.Error(), "--start and --end")
}

func TestResolveConfig_ReversedRange(t *testing.T) {
	flags := defaultFlags()
	flags.Start = "2024-02-01"
	flags.End = "2024-01-01"

	_, err := flags.resolveConfig(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestResolveConfig_PromptFillsMissingValues(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0755))

	flags := defaultFlags()
	var seen ui.RunFormValues
	prompt := func(_ context.Context, v *ui.RunFormValues) error {
		seen = *v
		v.CommitCount = "5"
		v.RepoPath = repo
		v.Start = "2023-12-30"
		v.End = "2024-01-02"
		v.Message = "Prompted"
		return nil
	}

	cfg, err := flags.resolveConfig(context.Background(), prompt)

	require.NoError(t, err)
	assert.Equal(t, "20", seen.CommitCount, "form is prefilled from flags")
	assert.Equal(t, domain.DefaultCommitMessage, seen.Message)
	assert.Equal(t, 5, cfg.CommitCount)
	assert.Equal(t, repo, cfg.RepoPath)
	assert.Equal(t, 3, cfg.DateRange.Days())
	assert.Equal(t, "Prompted", cfg.BaseMessage)
}

func TestResolveConfig_PromptCancelled(t *testing.T) {
	flags := defaultFlags()

	_, err := flags.resolveConfig(context.Background(), func(context.Context, *ui.RunFormValues) error {
		return ui.ErrFormCancelled
	})

	assert.ErrorIs(t, err, ui.ErrFormCancelled)
}

func TestResolveConfig_PromptNotUsedWhenDatesGiven(t *testing.T) {
	flags := defaultFlags()
	flags.Start = "2024-01-01"
	flags.End = "2024-01-01"

	_, err := flags.resolveConfig(context.Background(), func(context.Context, *ui.RunFormValues) error {
		return errors.New("should not prompt")
	})

	assert.NoError(t, err)
}

func TestPushConfirmer(t *testing.T) {
	ctx := context.Background()

	yes := pushConfirmer("yes", "/repo", false)
	require.NotNil(t, yes)
	ok, err := yes.ConfirmPush(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Nil(t, pushConfirmer("no", "/repo", true))
	assert.Nil(t, pushConfirmer("ask", "/repo", false))
	assert.IsType(t, &ui.PushPrompt{}, pushConfirmer("ask", "/repo", true))
	assert.NotNil(t, pushConfirmer("YES", "/repo", false))
}
