package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greener/test/integration/harness"
)

type planOutput struct {
	DateRange string     `json:"date_range"`
	Files     []string   `json:"files"`
	Sections  [][]string `json:"sections"`
	Seed      int64      `json:"seed"`
	Schedule  []struct {
		Attempt   int    `json:"attempt"`
		Message   string `json:"message"`
		Section   int    `json:"section"`
		Timestamp string `json:"timestamp"`
	} `json:"schedule"`
}

func TestPlan_JSONDoesNotCommit(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		git.WriteFile(name, name)
	}
	before := harness.CommitCount(t, git.ClonePath)

	result := harness.RunCommand(t, env,
		"--no-input", "plan", "--repo", git.ClonePath,
		"--start", "2022-06-01", "--end", "2022-06-30",
		"--count", "4", "--sections", "3", "--seed", "99", "--format", "json")

	harness.AssertSuccess(t, result)
	var plan planOutput
	harness.AssertValidJSON(t, result, &plan)

	assert.Equal(t, int64(99), plan.Seed)
	assert.Equal(t, "2022-06-01..2022-06-30", plan.DateRange)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}, plan.Files)
	assert.Equal(t, [][]string{{"a.txt", "b.txt"}, {"c.txt", "d.txt"}, {"e.txt"}}, plan.Sections)
	require.Len(t, plan.Schedule, 4)
	assert.Equal(t, []int{1, 2, 3, 1}, []int{
		plan.Schedule[0].Section, plan.Schedule[1].Section, plan.Schedule[2].Section, plan.Schedule[3].Section,
	})
	for _, s := range plan.Schedule {
		assert.True(t, s.Timestamp >= "2022-06-01" && s.Timestamp < "2022-07-01", "timestamp %s out of range", s.Timestamp)
	}

	assert.Equal(t, before, harness.CommitCount(t, git.ClonePath))
}

func TestPlan_MatchesRunWithSameSeed(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.WriteFile("a.txt", "a")
	git.WriteFile("b.txt", "b")
	args := []string{"--repo", git.ClonePath, "--start", "2022-06-01", "--end", "2022-06-30", "--count", "2", "--seed", "5"}

	planResult := harness.RunCommand(t, env, append([]string{"--no-input", "plan", "--format", "json"}, args...)...)
	harness.AssertSuccess(t, planResult)
	var plan planOutput
	harness.AssertValidJSON(t, planResult, &plan)
	require.Len(t, plan.Schedule, 2)

	runResult := harness.RunCommand(t, env, append([]string{"--no-input", "run", "--push", "no"}, args...)...)
	harness.AssertSuccess(t, runResult)

	// Newest commit first in git log
	dates := harness.GitOutput(t, git.ClonePath, "log", "-2", "--format=%ad", "--date=format-local:%Y-%m-%dT%H:%M:%S")
	assert.Equal(t, plan.Schedule[1].Timestamp+"\n"+plan.Schedule[0].Timestamp+"\n", dates)
}

func TestPlan_EmptyChangeset(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env,
		"--no-input", "plan", "--repo", git.ClonePath, "--start", "2022-06-01", "--end", "2022-06-30")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No files found in git status")
}
