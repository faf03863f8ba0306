package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greener/internal/domain"
	portsmocks "greener/internal/ports/mocks"
	"greener/internal/services"
)

func TestWriteStructured(t *testing.T) {
	runs := []domain.RunSummary{{ID: "abc", Push: domain.PushSkipped, StartDate: "2024-01-01"}}

	var js bytes.Buffer
	require.NoError(t, writeStructured(&js, formatJSON, runs))
	assert.Contains(t, js.String(), `"id": "abc"`)
	assert.Contains(t, js.String(), `"push": "skipped"`)

	var ym bytes.Buffer
	require.NoError(t, writeStructured(&ym, formatYAML, runs))
	assert.Contains(t, ym.String(), "- base_message:")
	assert.Contains(t, ym.String(), "  id: abc")
	assert.Contains(t, ym.String(), "2024-01-01")

	assert.Error(t, writeStructured(&bytes.Buffer{}, "xml", runs))
}

func TestRenderRunsTable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var empty bytes.Buffer
	renderRunsTable(&empty, nil, now)
	assert.Contains(t, empty.String(), "No runs journaled yet.")

	var buf bytes.Buffer
	renderRunsTable(&buf, []domain.RunSummary{{
		ID: "0123456789abcdef", RepoPath: "/work/repo", StartDate: "2024-01-01", EndDate: "2024-01-31",
		StartedAt: now.Add(-2 * 24 * time.Hour), SuccessCount: 4, TotalCount: 5, Push: domain.PushFailed,
	}}, now)

	out := buf.String()
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2 days ago")
	assert.Contains(t, out, "2024-01-01..2024-01-31")
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "failed")
}

func TestRenderRunDetail(t *testing.T) {
	journal := portsmocks.NewMockRunJournal(t)
	ts := time.Date(2024, 1, 3, 9, 30, 0, 0, time.Local)
	journal.EXPECT().GetRun(mock.Anything, "abc").Return(
		&domain.RunSummary{ID: "abc-full", RepoPath: "/work/repo", StartDate: "2024-01-01", EndDate: "2024-01-31", SuccessCount: 1, TotalCount: 2, Push: domain.PushSkipped},
		[]domain.AttemptRecord{
			{Attempt: 0, SectionIndex: 0, Files: []string{"a.txt"}, Succeeded: true, Timestamp: ts},
			{Attempt: 1, SectionIndex: 1, Files: []string{"b.txt", "c.txt"}, Succeeded: false, Timestamp: ts},
		},
		nil,
	)

	var buf bytes.Buffer
	require.NoError(t, renderRunDetail(context.Background(), &buf, journal, "abc"))

	out := buf.String()
	assert.Contains(t, out, "abc-full")
	assert.Contains(t, out, "unfinished")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "2024-01-03 09:30:00")
	assert.Contains(t, out, "b.txt, c.txt")
	assert.Contains(t, out, "failed")
}

func TestRenderRunDetail_NotFound(t *testing.T) {
	journal := portsmocks.NewMockRunJournal(t)
	journal.EXPECT().GetRun(mock.Anything, "nope").Return(nil, nil, domain.ErrRunNotFound)

	err := renderRunDetail(context.Background(), &bytes.Buffer{}, journal, "nope")

	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestNewPlanView(t *testing.T) {
	dr, err := domain.NewDateRange("2024-01-01", "2024-01-02")
	require.NoError(t, err)
	cfg := domain.RunConfig{DateRange: dr, RepoPath: "/repo"}
	plan := &services.Plan{
		Changeset: domain.Changeset{"a", "b"},
		Sections:  []domain.Section{{"a"}, {"b"}},
		Requests: []domain.CommitRequest{
			{Attempt: 0, SectionIndex: 1, Message: "m (Section 2)", Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)},
		},
	}

	view := newPlanView(cfg, plan, 42)

	assert.Equal(t, int64(42), view.Seed)
	assert.Equal(t, "2024-01-01..2024-01-02", view.DateRange)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, view.Sections)
	require.Len(t, view.Schedule, 1)
	assert.Equal(t, scheduledView{Attempt: 1, Message: "m (Section 2)", Section: 2, Timestamp: "2024-01-02T03:04:05"}, view.Schedule[0])

	var buf bytes.Buffer
	renderPlanTable(&buf, view)
	assert.Contains(t, buf.String(), "2024-01-02T03:04:05")
	assert.Contains(t, buf.String(), "--seed 42")
}
