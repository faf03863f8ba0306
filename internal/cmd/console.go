package cmd

import (
	"fmt"
	"io"
	"strings"

	"greener/internal/domain"
	"greener/internal/theme"
)

const emptyChangesetMessage = "No files found in git status (untracked, modified, or staged)."

// console prints run progress for the operator
type console struct {
	out   io.Writer
	total int
}

func newConsole(out io.Writer, total int) *console {
	return &console{out: out, total: total}
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) plan(files domain.Changeset, sections []domain.Section) {
	if len(files) == 0 {
		return
	}
	sizes := make([]string, len(sections))
	for i, s := range sections {
		sizes[i] = fmt.Sprintf("%d", len(s))
	}
	c.printf("Found %d files, split into %d sections (%s files each).\n\n",
		len(files), len(sections), strings.Join(sizes, "/"))
}

func (c *console) beforeAttempt(req domain.CommitRequest) {
	c.printf("[%d/%d] Committing section %d at %s\n",
		req.Attempt+1, c.total, req.SectionLabel(), req.Timestamp.Format("2006-01-02 15:04:05"))
	c.printf("%s\n", theme.MutedStyle.Render("      "+strings.Join(req.Files.Strings(), ", ")))
}

func (c *console) attempt(result domain.CommitResult) {
	if result.Succeeded {
		c.printf("      %s\n", theme.SucceededStyle.Render("✅ committed"))
		return
	}
	c.printf("      %s\n", theme.FailedStyle.Render("❌ commit failed"))
}

func (c *console) report(report domain.RunReport, repoPath string) {
	if report.NothingToCommit {
		c.printf("%s\n", emptyChangesetMessage)
		return
	}

	c.printf("\nSuccessfully made %s commits.\n", report.Summary())

	switch report.Push {
	case domain.PushSucceeded:
		c.printf("%s\n", theme.SucceededStyle.Render("✅ Pushed to remote."))
	case domain.PushFailed:
		c.printf("%s\n", theme.FailedStyle.Render("❌ Push failed."))
		c.printf("Push manually with: git -C %q push\n", repoPath)
	default:
		if report.SuccessCount > 0 {
			c.printf("Changes were not pushed. Push manually with: git -C %q push\n", repoPath)
		}
	}

	if report.SuccessCount > 0 {
		c.printf("%s\n", theme.MutedStyle.Render("Tip: git log --format='%ad %s' --date=iso shows the new history."))
	}
}
