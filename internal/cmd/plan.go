package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"greener/internal/domain"
	"greener/internal/services"
	"greener/internal/terminal"
	"greener/internal/theme"
	"greener/internal/ui"
)

// PlanCmd prints the schedule a run would use without touching the repository
type PlanCmd struct {
	RunFlags `embed:""`

	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type planView struct {
	DateRange string          `json:"date_range" yaml:"date_range"`
	Files     []string        `json:"files" yaml:"files"`
	RepoPath  string          `json:"repo_path" yaml:"repo_path"`
	Schedule  []scheduledView `json:"schedule" yaml:"schedule"`
	Sections  [][]string      `json:"sections" yaml:"sections"`
	Seed      int64           `json:"seed" yaml:"seed"`
}

type scheduledView struct {
	Attempt   int    `json:"attempt" yaml:"attempt"`
	Message   string `json:"message" yaml:"message"`
	Section   int    `json:"section" yaml:"section"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Run executes the plan command
func (p *PlanCmd) Run(cli *CLI) error {
	ctx := context.Background()
	p.RunFlags.applySettings(cli.currentSettings())

	var prompt runPrompt
	if !cli.NoInput && terminal.IsInteractive() && p.Format == formatTable {
		prompt = ui.RunRunForm
	}
	cfg, err := p.RunFlags.resolveConfig(ctx, prompt)
	if err != nil {
		if errors.Is(err, ui.ErrFormCancelled) {
			return nil
		}
		return err
	}

	seed := services.ResolveSeed(p.Seed)
	plan, err := cli.Container.NewRunService(false).Plan(ctx, cfg, seed)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyChangeset) {
			fmt.Println(emptyChangesetMessage)
			return nil
		}
		return err
	}

	view := newPlanView(cfg, plan, seed)
	if p.Format != formatTable {
		return writeStructured(os.Stdout, p.Format, view)
	}
	renderPlanTable(os.Stdout, view)
	return nil
}

func newPlanView(cfg domain.RunConfig, plan *services.Plan, seed int64) planView {
	view := planView{
		DateRange: cfg.DateRange.String(),
		Files:     plan.Changeset.Strings(),
		RepoPath:  cfg.RepoPath,
		Schedule:  make([]scheduledView, 0, len(plan.Requests)),
		Sections:  make([][]string, 0, len(plan.Sections)),
		Seed:      seed,
	}
	for _, s := range plan.Sections {
		view.Sections = append(view.Sections, s.Strings())
	}
	for _, req := range plan.Requests {
		view.Schedule = append(view.Schedule, scheduledView{
			Attempt:   req.Attempt + 1,
			Message:   req.Message,
			Section:   req.SectionLabel(),
			Timestamp: req.Timestamp.Format(domain.TimestampLayout),
		})
	}
	return view
}

func renderPlanTable(w io.Writer, view planView) {
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Repository"), theme.ValueStyle.Render(view.RepoPath))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Date range"), theme.ValueStyle.Render(view.DateRange))
	fmt.Fprintf(w, "%s %s\n\n", theme.LabelStyle.Render("Seed"), theme.ValueStyle.Render(fmt.Sprintf("%d", view.Seed)))

	sections := table.NewWriter()
	sections.SetStyle(table.StyleLight)
	sections.AppendHeader(table.Row{"Section", "Files"})
	for i, files := range view.Sections {
		sections.AppendRow(table.Row{i + 1, strings.Join(files, "\n")})
	}
	sections.AppendFooter(table.Row{"", fmt.Sprintf("%d files", len(view.Files))})
	fmt.Fprintln(w, sections.Render())
	fmt.Fprintln(w)

	schedule := table.NewWriter()
	schedule.SetStyle(table.StyleLight)
	schedule.AppendHeader(table.Row{"#", "Section", "Timestamp", "Message"})
	for _, s := range view.Schedule {
		schedule.AppendRow(table.Row{s.Attempt, s.Section, s.Timestamp, s.Message})
	}
	fmt.Fprintln(w, schedule.Render())

	fmt.Fprintf(w, "\nRun with --seed %d to make exactly these commits.\n", view.Seed)
}
