package services

import (
	"context"

	"greener/internal/domain"
	"greener/internal/logging"
	"greener/internal/ports"
)

// PushTrigger forwards the local history to the configured remote
type PushTrigger struct {
	pusher ports.Pusher
}

// NewPushTrigger creates a new PushTrigger
func NewPushTrigger(pusher ports.Pusher) *PushTrigger {
	return &PushTrigger{
		pusher: pusher,
	}
}

// Push runs a single push with no retry
func (p *PushTrigger) Push(ctx context.Context, repoPath string) domain.PushOutcome {
	if err := p.pusher.Push(ctx, repoPath); err != nil {
		logging.Logger.Error("Push failed", "repo_path", repoPath, "error", err)
		return domain.PushFailed
	}
	return domain.PushSucceeded
}
