package domain

import "time"

// RunSummary is the journaled view of a past run
type RunSummary struct {
	BaseMessage  string      `json:"base_message" yaml:"base_message"`
	CommitCount  int         `json:"commit_count" yaml:"commit_count"`
	EndDate      string      `json:"end_date" yaml:"end_date"`
	FinishedAt   *time.Time  `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	ID           string      `json:"id" yaml:"id"`
	Push         PushOutcome `json:"push" yaml:"push"`
	RepoPath     string      `json:"repo_path" yaml:"repo_path"`
	SectionCount int         `json:"section_count" yaml:"section_count"`
	StartDate    string      `json:"start_date" yaml:"start_date"`
	StartedAt    time.Time   `json:"started_at" yaml:"started_at"`
	SuccessCount int         `json:"success_count" yaml:"success_count"`
	TotalCount   int         `json:"total_count" yaml:"total_count"`
}

// AttemptRecord is the journaled view of one commit attempt
type AttemptRecord struct {
	Attempt      int       `json:"attempt" yaml:"attempt"`
	Files        []string  `json:"files" yaml:"files"`
	Message      string    `json:"message" yaml:"message"`
	RunID        string    `json:"run_id" yaml:"run_id"`
	SectionIndex int       `json:"section_index" yaml:"section_index"`
	Succeeded    bool      `json:"succeeded" yaml:"succeeded"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
}
