package ports

import "context"

// PushConfirmer asks the operator whether to push after the commit loop
type PushConfirmer interface {
	ConfirmPush(ctx context.Context) (bool, error)
}
