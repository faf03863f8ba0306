package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"greener/internal/config"
	"greener/internal/logging"
	"greener/internal/ports"
	"greener/internal/services"
	"greener/internal/terminal"
	"greener/internal/ui"
)

// RunCmd makes the backdated commits
type RunCmd struct {
	RunFlags `embed:""`

	Journal bool   `help:"Record the run in the local journal (see 'greener history')"`
	Push    string `help:"Push after committing: ask, yes or no" enum:"ask,yes,no" default:"ask"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	ctx := context.Background()
	settings := cli.currentSettings()
	interactive := !cli.NoInput && terminal.IsInteractive()

	r.RunFlags.applySettings(settings)
	if r.Push == config.PushAsk && settings.Push != "" {
		r.Push = settings.Push
	}
	journaled := r.Journal || (settings.Journal != nil && *settings.Journal)

	var prompt runPrompt
	if interactive {
		prompt = ui.RunRunForm
	}
	cfg, err := r.RunFlags.resolveConfig(ctx, prompt)
	if err != nil {
		if errors.Is(err, ui.ErrFormCancelled) {
			fmt.Println("Cancelled, nothing was committed.")
			return nil
		}
		return err
	}

	seed := services.ResolveSeed(r.Seed)
	logging.Logger.Info("Starting run",
		"repo_path", cfg.RepoPath,
		"commit_count", cfg.CommitCount,
		"section_count", cfg.SectionCount,
		"date_range", cfg.DateRange.String(),
		"seed", seed,
		"push", r.Push,
		"journal", journaled)

	if interactive {
		fmt.Println(ui.RenderHeader(""))
	}

	out := newConsole(os.Stdout, cfg.CommitCount)
	service := cli.Container.NewRunService(journaled)
	report, err := service.Execute(ctx, services.ExecuteParams{
		Config:          cfg,
		OnAttempt:       out.attempt,
		OnBeforeAttempt: out.beforeAttempt,
		OnPlan:          out.plan,
		PushConfirmer:   pushConfirmer(r.Push, cfg.RepoPath, interactive),
		Seed:            seed,
	})
	if err != nil {
		return err
	}

	out.report(report, cfg.RepoPath)
	if !report.NothingToCommit {
		fmt.Printf("Seed: %d\n", seed)
	}
	return nil
}

// fixedAnswer confirms or declines the push without asking
type fixedAnswer bool

func (a fixedAnswer) ConfirmPush(context.Context) (bool, error) {
	return bool(a), nil
}

// pushConfirmer maps the push mode to the confirmer the scheduler consults.
// "ask" without a terminal never pushes.
func pushConfirmer(mode, repoPath string, interactive bool) ports.PushConfirmer {
	switch strings.ToLower(mode) {
	case config.PushYes:
		return fixedAnswer(true)
	case config.PushAsk:
		if interactive {
			return ui.NewPushPrompt(repoPath)
		}
	}
	return nil
}
