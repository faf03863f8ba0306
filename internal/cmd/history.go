package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"greener/internal/domain"
	"greener/internal/ports"
	"greener/internal/terminal"
	"greener/internal/theme"
	"greener/internal/ui"
)

// HistoryCmd shows journaled runs
type HistoryCmd struct {
	List HistoryListCmd `cmd:"" help:"List journaled runs (default)" default:"withargs"`
	Show HistoryShowCmd `cmd:"show" help:"Show the attempts of one run"`
}

// HistoryListCmd lists journaled runs, newest first
type HistoryListCmd struct {
	Format      string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Interactive bool   `help:"Browse runs in an interactive table" short:"i"`
	Limit       int    `help:"Maximum number of runs to show (0 = all)" default:"20"`
}

// HistoryShowCmd shows one run with its attempts
type HistoryShowCmd struct {
	ID     string `arg:"" help:"Run ID (a unique prefix is enough)"`
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type runDetailView struct {
	Attempts []domain.AttemptRecord `json:"attempts" yaml:"attempts"`
	Run      domain.RunSummary      `json:"run" yaml:"run"`
}

// Run executes the history list command
func (h *HistoryListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	journal, err := cli.Container.Journal()
	if err != nil {
		return fmt.Errorf("failed to open run journal: %w", err)
	}

	runs, err := journal.ListRuns(ctx, h.Limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if h.Interactive {
		if cli.NoInput || !terminal.IsInteractive() {
			return fmt.Errorf("--interactive needs a terminal")
		}
		browser := ui.NewHistoryBrowser(runs, func(run domain.RunSummary) (string, error) {
			var sb strings.Builder
			if err := renderRunDetail(ctx, &sb, journal, run.ID); err != nil {
				return "", err
			}
			return sb.String(), nil
		})
		if _, err := tea.NewProgram(browser, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("history browser failed: %w", err)
		}
		return nil
	}

	if h.Format != formatTable {
		if runs == nil {
			runs = []domain.RunSummary{}
		}
		return writeStructured(os.Stdout, h.Format, runs)
	}

	renderRunsTable(os.Stdout, runs, time.Now())
	return nil
}

// Run executes the history show command
func (h *HistoryShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	journal, err := cli.Container.Journal()
	if err != nil {
		return fmt.Errorf("failed to open run journal: %w", err)
	}

	if h.Format != formatTable {
		run, attempts, err := journal.GetRun(ctx, h.ID)
		if err != nil {
			return err
		}
		if attempts == nil {
			attempts = []domain.AttemptRecord{}
		}
		return writeStructured(os.Stdout, h.Format, runDetailView{Attempts: attempts, Run: *run})
	}

	return renderRunDetail(ctx, os.Stdout, journal, h.ID)
}

func renderRunsTable(w io.Writer, runs []domain.RunSummary, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs journaled yet. Use --journal to record runs.")
		return
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Run", "Started", "Repository", "Range", "Commits", "Push"})
	for _, r := range runs {
		tbl.AppendRow(table.Row{
			ui.ShortRunID(r.ID),
			humanize.RelTime(r.StartedAt, now, "ago", "from now"),
			r.RepoPath,
			r.StartDate + ".." + r.EndDate,
			fmt.Sprintf("%d/%d", r.SuccessCount, r.TotalCount),
			string(r.Push),
		})
	}
	tbl.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d runs", len(runs)), ""})
	fmt.Fprintln(w, tbl.Render())
}

func renderRunDetail(ctx context.Context, w io.Writer, journal ports.RunJournalReader, id string) error {
	run, attempts, err := journal.GetRun(ctx, id)
	if err != nil {
		return err
	}

	finished := "unfinished"
	if run.FinishedAt != nil {
		finished = run.FinishedAt.Local().Format("2006-01-02 15:04:05")
	}

	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Run"), theme.ValueStyle.Render(run.ID))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Repository"), theme.ValueStyle.Render(run.RepoPath))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Date range"), theme.ValueStyle.Render(run.StartDate+".."+run.EndDate))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Started"), theme.ValueStyle.Render(run.StartedAt.Local().Format("2006-01-02 15:04:05")))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Finished"), theme.ValueStyle.Render(finished))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Commits"), theme.ValueStyle.Render(fmt.Sprintf("%d/%d", run.SuccessCount, run.TotalCount)))
	fmt.Fprintf(w, "%s %s\n\n", theme.LabelStyle.Render("Push"), theme.ValueStyle.Render(string(run.Push)))

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Section", "Timestamp", "Result", "Files"})
	for _, a := range attempts {
		result := "ok"
		if !a.Succeeded {
			result = "failed"
		}
		tbl.AppendRow(table.Row{
			a.Attempt + 1,
			a.SectionIndex + 1,
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			result,
			strings.Join(a.Files, ", "),
		})
	}
	fmt.Fprintln(w, tbl.Render())
	return nil
}
