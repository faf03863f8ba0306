package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"greener/internal/ports"
)

// PushPrompt asks the operator whether to push once commits are made
type PushPrompt struct {
	repoPath string
}

var _ ports.PushConfirmer = (*PushPrompt)(nil)

// NewPushPrompt creates a PushPrompt for the repository at repoPath
func NewPushPrompt(repoPath string) *PushPrompt {
	return &PushPrompt{repoPath: repoPath}
}

// ConfirmPush implements ports.PushConfirmer
func (p *PushPrompt) ConfirmPush(ctx context.Context) (bool, error) {
	push := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Push changes to remote repository?").
				Description(fmt.Sprintf("Runs git push in %s", p.repoPath)).
				Value(&push).
				Affirmative("Push").
				Negative("Not now"),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return push, nil
}
