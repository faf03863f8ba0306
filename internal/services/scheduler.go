package services

import (
	"context"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/ports"
)

// ScheduleOptions customizes a single scheduler run
type ScheduleOptions struct {
	// OnAttempt is called after every attempt, in order
	OnAttempt func(domain.CommitResult)
	// OnBeforeAttempt is called with each request before it is executed
	OnBeforeAttempt func(domain.CommitRequest)
	// PushConfirmer is asked once after the loop; nil never pushes
	PushConfirmer ports.PushConfirmer
}

// CommitScheduler drives the commit attempts of one run
type CommitScheduler struct {
	executor    *CommitExecutor
	pushTrigger *PushTrigger
	sampler     *DateSampler
	state       domain.SchedulerState
}

// NewCommitScheduler creates a scheduler in the NotStarted state
func NewCommitScheduler(executor *CommitExecutor, pushTrigger *PushTrigger, sampler *DateSampler) *CommitScheduler {
	return &CommitScheduler{
		executor:    executor,
		pushTrigger: pushTrigger,
		sampler:     sampler,
		state:       domain.SchedulerNotStarted,
	}
}

// State returns the current lifecycle state
func (s *CommitScheduler) State() domain.SchedulerState {
	return s.state
}

// Run makes exactly cfg.CommitCount attempts, attempt i committing section
// i mod len(sections). A failed attempt is recorded and the loop moves on.
// With no sections nothing is scheduled and the report is flagged
// NothingToCommit; the scheduler then stays NotStarted.
func (s *CommitScheduler) Run(
	ctx context.Context,
	cfg domain.RunConfig,
	sections []domain.Section,
	opts ScheduleOptions,
) (domain.RunReport, error) {
	if s.state != domain.SchedulerNotStarted {
		return domain.RunReport{}, domain.ErrSchedulerAlreadyUsed
	}

	report := domain.RunReport{
		Push:     domain.PushSkipped,
		Sections: sections,
	}

	if len(sections) == 0 {
		logging.Logger.Info("Nothing to commit, scheduler not started", "repo_path", cfg.RepoPath)
		report.NothingToCommit = true
		return report, nil
	}

	s.state = domain.SchedulerRunning
	logging.Logger.Info("Scheduler running",
		"commit_count", cfg.CommitCount,
		"sections", len(sections),
		"date_range", cfg.DateRange.String())

	report.Attempts = make([]domain.CommitResult, 0, cfg.CommitCount)
	sectionIndex := 0
	for attempt := 0; attempt < cfg.CommitCount; attempt++ {
		req := domain.CommitRequest{
			Attempt:      attempt,
			Files:        sections[sectionIndex],
			Message:      domain.SectionMessage(cfg.BaseMessage, sectionIndex),
			SectionIndex: sectionIndex,
			Timestamp:    s.sampler.Sample(cfg.DateRange),
		}
		if opts.OnBeforeAttempt != nil {
			opts.OnBeforeAttempt(req)
		}

		result := domain.CommitResult{
			Request:   req,
			Succeeded: s.executor.Execute(ctx, cfg.RepoPath, req),
		}
		report.Attempts = append(report.Attempts, result)
		report.TotalCount++
		if result.Succeeded {
			report.SuccessCount++
		}
		if opts.OnAttempt != nil {
			opts.OnAttempt(result)
		}

		sectionIndex++
		if sectionIndex == len(sections) {
			sectionIndex = 0
		}
	}

	s.state = domain.SchedulerCompleted
	logging.Logger.Info("Scheduler completed",
		"succeeded", report.SuccessCount,
		"total", report.TotalCount)

	report.Push = s.maybePush(ctx, cfg.RepoPath, opts.PushConfirmer)
	return report, nil
}

func (s *CommitScheduler) maybePush(ctx context.Context, repoPath string, confirmer ports.PushConfirmer) domain.PushOutcome {
	if confirmer == nil || s.pushTrigger == nil {
		return domain.PushSkipped
	}

	ok, err := confirmer.ConfirmPush(ctx)
	if err != nil {
		logging.Logger.Warn("Push confirmation failed, not pushing", "error", err)
		return domain.PushSkipped
	}
	if !ok {
		logging.Logger.Debug("Operator declined push")
		return domain.PushSkipped
	}

	return s.pushTrigger.Push(ctx, repoPath)
}
