package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"greener/internal/config"
	"greener/internal/domain"
	"greener/internal/paths"
	"greener/internal/ui"
)

// RunFlags selects what a run (or a plan) works on
type RunFlags struct {
	Count    int    `help:"Number of commits to make" short:"n" default:"20"`
	End      string `help:"Last day of the date range (YYYY-MM-DD)"`
	Message  string `help:"Base commit message, a section label is appended" short:"m" default:"Update project files"`
	Repo     string `help:"Path to the git repository" default:"."`
	Sections int    `help:"Number of sections the changeset is split into" default:"4"`
	Seed     int64  `help:"Seed for timestamp sampling (0 = time based)"`
	Start    string `help:"First day of the date range (YYYY-MM-DD)"`
}

// applySettings fills flags left at their defaults from settings.json
func (f *RunFlags) applySettings(s *config.Settings) {
	if s == nil {
		return
	}
	if f.Count == domain.DefaultCommitCount && s.CommitCount != nil {
		f.Count = *s.CommitCount
	}
	if f.Message == domain.DefaultCommitMessage && s.CommitMessage != "" {
		f.Message = s.CommitMessage
	}
	if f.Sections == domain.DefaultSectionCount && s.SectionCount != nil {
		f.Sections = *s.SectionCount
	}
}

// runPrompt gathers missing inputs interactively; nil means no prompting
type runPrompt func(ctx context.Context, values *ui.RunFormValues) error

// resolveConfig turns flags into a RunConfig, prompting for missing dates when allowed
func (f RunFlags) resolveConfig(ctx context.Context, prompt runPrompt) (domain.RunConfig, error) {
	count := f.Count
	repo := f.Repo
	start := strings.TrimSpace(f.Start)
	end := strings.TrimSpace(f.End)
	message := f.Message

	if start == "" || end == "" {
		if prompt == nil {
			return domain.RunConfig{}, fmt.Errorf("%w: --start and --end are required without a terminal", domain.ErrInvalidDate)
		}

		values := ui.RunFormValues{
			CommitCount: strconv.Itoa(count),
			End:         end,
			Message:     message,
			RepoPath:    repo,
			Start:       start,
		}
		if err := prompt(ctx, &values); err != nil {
			return domain.RunConfig{}, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(values.CommitCount))
		if err != nil {
			return domain.RunConfig{}, fmt.Errorf("%w: %q", domain.ErrInvalidCommitCount, values.CommitCount)
		}
		count = n
		repo = strings.TrimSpace(values.RepoPath)
		start = strings.TrimSpace(values.Start)
		end = strings.TrimSpace(values.End)
		message = values.Message
	}

	dateRange, err := domain.NewDateRange(start, end)
	if err != nil {
		return domain.RunConfig{}, err
	}

	repoPath, err := filepath.Abs(paths.ExpandPath(repo))
	if err != nil {
		return domain.RunConfig{}, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	return domain.RunConfig{
		BaseMessage:  strings.TrimSpace(message),
		CommitCount:  count,
		DateRange:    dateRange,
		RepoPath:     repoPath,
		SectionCount: f.Sections,
	}, nil
}
