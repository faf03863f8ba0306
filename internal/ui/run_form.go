package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"greener/internal/logging"
)

// ErrFormCancelled is returned when the operator aborts a form
var ErrFormCancelled = errors.New("cancelled")

// RunFormValues holds the run inputs gathered interactively. Fields arrive
// prefilled from flags and settings.
type RunFormValues struct {
	CommitCount string
	End         string
	Message     string
	RepoPath    string
	Start       string
}

// NewRunForm builds the form asking for the inputs of a run
func NewRunForm(values *RunFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Backfill commits").
				Description("Each commit is backdated to a random moment in the date range."),
			huh.NewInput().
				Title("Repository").
				Description("Path to the git repository").
				Value(&values.RepoPath).
				Validate(ValidateRepoPath),
			huh.NewInput().
				Title("Number of commits").
				Value(&values.CommitCount).
				Validate(ValidateCommitCount),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&values.Start).
				Validate(ValidateDate),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&values.End).
				Validate(func(s string) error {
					return ValidateEndDate(values.Start)(s)
				}),
			huh.NewInput().
				Title("Commit message").
				Description("A section suffix is appended to each commit").
				Value(&values.Message).
				Validate(ValidateMessage),
		),
	)
}

// RunRunForm shows the run form and fills values in place
func RunRunForm(ctx context.Context, values *RunFormValues) error {
	if err := NewRunForm(values).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("Run form cancelled")
			return ErrFormCancelled
		}
		return fmt.Errorf("failed to read run inputs: %w", err)
	}
	logging.Logger.Debug("Run form completed",
		"repo_path", values.RepoPath,
		"start", values.Start,
		"end", values.End)
	return nil
}
