package storage

import (
	"greener/internal/domain"
)

// runModelToDomain converts a RunModel (GORM) to domain.RunSummary
func runModelToDomain(m RunModel) domain.RunSummary {
	return domain.RunSummary{
		BaseMessage:  m.BaseMessage,
		CommitCount:  m.CommitCount,
		EndDate:      m.EndDate,
		FinishedAt:   m.FinishedAt,
		ID:           m.ID,
		Push:         domain.PushOutcome(m.Push),
		RepoPath:     m.RepoPath,
		SectionCount: m.SectionCount,
		StartDate:    m.StartDate,
		StartedAt:    m.StartedAt,
		SuccessCount: m.SuccessCount,
		TotalCount:   m.TotalCount,
	}
}

// domainToRunModel converts a domain.RunSummary to RunModel (GORM)
func domainToRunModel(r domain.RunSummary) RunModel {
	push := string(r.Push)
	if push == "" {
		push = string(domain.PushSkipped)
	}
	return RunModel{
		BaseMessage:  r.BaseMessage,
		CommitCount:  r.CommitCount,
		EndDate:      r.EndDate,
		FinishedAt:   r.FinishedAt,
		ID:           r.ID,
		Push:         push,
		RepoPath:     r.RepoPath,
		SectionCount: r.SectionCount,
		StartDate:    r.StartDate,
		StartedAt:    r.StartedAt,
		SuccessCount: r.SuccessCount,
		TotalCount:   r.TotalCount,
	}
}

func attemptModelToDomain(m AttemptModel) domain.AttemptRecord {
	return domain.AttemptRecord{
		Attempt:      m.Attempt,
		Files:        m.Files,
		Message:      m.Message,
		RunID:        m.RunID,
		SectionIndex: m.SectionIndex,
		Succeeded:    m.Succeeded,
		Timestamp:    m.Timestamp,
	}
}

func domainToAttemptModel(a domain.AttemptRecord) AttemptModel {
	files := a.Files
	if files == nil {
		files = []string{}
	}
	return AttemptModel{
		Attempt:      a.Attempt,
		Files:        files,
		Message:      a.Message,
		RunID:        a.RunID,
		SectionIndex: a.SectionIndex,
		Succeeded:    a.Succeeded,
		Timestamp:    a.Timestamp,
	}
}
