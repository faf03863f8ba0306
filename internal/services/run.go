package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/ports"
)

// ExecuteParams holds everything a run needs beyond the repository itself
type ExecuteParams struct {
	Config domain.RunConfig
	// OnPlan is called once the changeset is discovered and partitioned
	OnPlan          func(domain.Changeset, []domain.Section)
	OnAttempt       func(domain.CommitResult)
	OnBeforeAttempt func(domain.CommitRequest)
	PushConfirmer   ports.PushConfirmer
	Seed            int64
}

// Plan is a dry-run view of a schedule
type Plan struct {
	Changeset domain.Changeset
	Requests  []domain.CommitRequest
	Sections  []domain.Section
}

// RunService wires discovery, partitioning, scheduling and journaling together
type RunService struct {
	changeset *ChangesetService
	gitRepo   ports.GitRepository
	journal   ports.RunJournalWriter
}

// NewRunService creates a new RunService. journal may be nil.
func NewRunService(gitRepo ports.GitRepository, journal ports.RunJournalWriter) *RunService {
	return &RunService{
		changeset: NewChangesetService(gitRepo),
		gitRepo:   gitRepo,
		journal:   journal,
	}
}

// prepare checks preconditions, then discovers and partitions the changeset
func (s *RunService) prepare(ctx context.Context, cfg domain.RunConfig) (domain.Changeset, []domain.Section, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if !s.gitRepo.IsGitRepo(cfg.RepoPath) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidRepo, cfg.RepoPath)
	}

	files := s.changeset.Discover(ctx, cfg.RepoPath)
	sections, err := domain.Partition(files, cfg.SectionCount)
	if err != nil {
		return nil, nil, err
	}

	logging.Logger.Info("Changeset partitioned",
		"files", len(files),
		"sections", len(sections),
		"section_count", cfg.SectionCount)
	return files, sections, nil
}

// Execute runs the whole pipeline. Only precondition failures return an
// error; failed attempts and a failed push are part of the report.
func (s *RunService) Execute(ctx context.Context, params ExecuteParams) (domain.RunReport, error) {
	cfg := params.Config
	files, sections, err := s.prepare(ctx, cfg)
	if err != nil {
		return domain.RunReport{}, err
	}
	if params.OnPlan != nil {
		params.OnPlan(files, sections)
	}

	scheduler := NewCommitScheduler(
		NewCommitExecutor(s.gitRepo),
		NewPushTrigger(s.gitRepo),
		NewSeededDateSampler(params.Seed),
	)

	if len(sections) == 0 {
		return scheduler.Run(ctx, cfg, sections, ScheduleOptions{})
	}

	run := s.beginJournal(ctx, cfg)
	onAttempt := func(result domain.CommitResult) {
		s.recordAttempt(ctx, run, result)
		if params.OnAttempt != nil {
			params.OnAttempt(result)
		}
	}

	report, err := scheduler.Run(ctx, cfg, sections, ScheduleOptions{
		OnAttempt:       onAttempt,
		OnBeforeAttempt: params.OnBeforeAttempt,
		PushConfirmer:   params.PushConfirmer,
	})
	if err != nil {
		return report, err
	}

	s.finishJournal(ctx, run, report)
	return report, nil
}

// Plan discovers and partitions the changeset and samples the schedule a run
// with the same seed would use, without touching the repository
func (s *RunService) Plan(ctx context.Context, cfg domain.RunConfig, seed int64) (*Plan, error) {
	files, sections, err := s.prepare(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, domain.ErrEmptyChangeset
	}

	sampler := NewSeededDateSampler(seed)
	requests := make([]domain.CommitRequest, cfg.CommitCount)
	for i := range requests {
		idx := i % len(sections)
		requests[i] = domain.CommitRequest{
			Attempt:      i,
			Files:        sections[idx],
			Message:      domain.SectionMessage(cfg.BaseMessage, idx),
			SectionIndex: idx,
			Timestamp:    sampler.Sample(cfg.DateRange),
		}
	}

	return &Plan{
		Changeset: files,
		Requests:  requests,
		Sections:  sections,
	}, nil
}

func (s *RunService) beginJournal(ctx context.Context, cfg domain.RunConfig) *domain.RunSummary {
	if s.journal == nil {
		return nil
	}

	run := &domain.RunSummary{
		BaseMessage:  cfg.BaseMessage,
		CommitCount:  cfg.CommitCount,
		EndDate:      cfg.DateRange.End.Format(domain.DateLayout),
		ID:           uuid.New().String(),
		Push:         domain.PushSkipped,
		RepoPath:     cfg.RepoPath,
		SectionCount: cfg.SectionCount,
		StartDate:    cfg.DateRange.Start.Format(domain.DateLayout),
		StartedAt:    time.Now().UTC(),
	}
	if err := s.journal.BeginRun(ctx, *run); err != nil {
		logging.Logger.Warn("Failed to journal run start, continuing without journal", "error", err)
		return nil
	}
	logging.Logger.Debug("Journal run started", "run_id", run.ID)
	return run
}

func (s *RunService) recordAttempt(ctx context.Context, run *domain.RunSummary, result domain.CommitResult) {
	if run == nil {
		return
	}

	req := result.Request
	attempt := domain.AttemptRecord{
		Attempt:      req.Attempt,
		Files:        req.Files.Strings(),
		Message:      req.Message,
		RunID:        run.ID,
		SectionIndex: req.SectionIndex,
		Succeeded:    result.Succeeded,
		Timestamp:    req.Timestamp,
	}
	if err := s.journal.RecordAttempt(ctx, attempt); err != nil {
		logging.Logger.Warn("Failed to journal attempt", "run_id", run.ID, "attempt", req.Attempt, "error", err)
	}
}

func (s *RunService) finishJournal(ctx context.Context, run *domain.RunSummary, report domain.RunReport) {
	if run == nil {
		return
	}

	finished := time.Now().UTC()
	run.FinishedAt = &finished
	run.Push = report.Push
	run.SuccessCount = report.SuccessCount
	run.TotalCount = report.TotalCount
	if err := s.journal.FinishRun(ctx, *run); err != nil {
		logging.Logger.Warn("Failed to journal run end", "run_id", run.ID, "error", err)
	}
}
