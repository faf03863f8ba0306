package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"greener/internal/domain"
	"greener/internal/theme"
)

// RunDetailFunc renders the detail view of one run
type RunDetailFunc func(run domain.RunSummary) (string, error)

type historyKeyMap struct {
	Back   key.Binding
	Quit   key.Binding
	Select key.Binding
}

var historyKeys = historyKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
}

// HistoryBrowser is a Bubble Tea model listing journaled runs
type HistoryBrowser struct {
	detail    string
	detailErr error
	now       func() time.Time
	render    RunDetailFunc
	runs      []domain.RunSummary
	table     table.Model
}

// NewHistoryBrowser creates a browser over runs, newest first
func NewHistoryBrowser(runs []domain.RunSummary, render RunDetailFunc) *HistoryBrowser {
	b := &HistoryBrowser{
		now:    time.Now,
		render: render,
		runs:   runs,
	}

	height := len(runs) + 1
	if height > 15 {
		height = 15
	}

	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(b.rows()),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderForeground(theme.ColorTableBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.ColorTableSelected).
		Background(theme.ColorTableSelectBg).
		Bold(false)
	t.SetStyles(styles)
	b.table = t

	return b
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Started", Width: 16},
		{Title: "Repository", Width: 32},
		{Title: "Range", Width: 22},
		{Title: "Commits", Width: 8},
		{Title: "Push", Width: 9},
	}
}

func (b *HistoryBrowser) rows() []table.Row {
	rows := make([]table.Row, 0, len(b.runs))
	for _, r := range b.runs {
		rows = append(rows, table.Row{
			ShortRunID(r.ID),
			humanize.RelTime(r.StartedAt, b.now(), "ago", "from now"),
			r.RepoPath,
			r.StartDate + ".." + r.EndDate,
			fmt.Sprintf("%d/%d", r.SuccessCount, r.TotalCount),
			string(r.Push),
		})
	}
	return rows
}

// ShortRunID returns the first eight characters of a run id
func ShortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (b *HistoryBrowser) Init() tea.Cmd {
	return nil
}

func (b *HistoryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, historyKeys.Quit):
			return b, tea.Quit
		case b.showingDetail() && key.Matches(keyMsg, historyKeys.Back):
			b.detail = ""
			b.detailErr = nil
			return b, nil
		case !b.showingDetail() && key.Matches(keyMsg, historyKeys.Select):
			b.openSelected()
			return b, nil
		}
	}

	if b.showingDetail() {
		return b, nil
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b *HistoryBrowser) View() string {
	var sb strings.Builder
	sb.WriteString(RenderHeader("Run history"))
	sb.WriteString("\n")

	if len(b.runs) == 0 {
		sb.WriteString(theme.MutedStyle.Render("No runs journaled yet."))
		sb.WriteString("\n")
		sb.WriteString(theme.HelpStyle.Render("q quit"))
		return sb.String()
	}

	if b.showingDetail() {
		if b.detailErr != nil {
			sb.WriteString(theme.ErrorStyle.Render(b.detailErr.Error()))
		} else {
			sb.WriteString(b.detail)
		}
		sb.WriteString("\n")
		sb.WriteString(theme.HelpStyle.Render("esc back • q quit"))
		return sb.String()
	}

	sb.WriteString(b.table.View())
	sb.WriteString("\n")
	sb.WriteString(theme.HelpStyle.Render("↑/↓ move • enter details • q quit"))
	return sb.String()
}

// Cursor returns the index of the highlighted run
func (b *HistoryBrowser) Cursor() int {
	return b.table.Cursor()
}

func (b *HistoryBrowser) showingDetail() bool {
	return b.detail != "" || b.detailErr != nil
}

func (b *HistoryBrowser) openSelected() {
	if len(b.runs) == 0 || b.render == nil {
		return
	}
	idx := b.table.Cursor()
	if idx < 0 || idx >= len(b.runs) {
		return
	}

	detail, err := b.render(b.runs[idx])
	if err != nil {
		b.detailErr = err
		return
	}
	b.detail = detail
}
