package ports

import "context"

type Notifier interface {
	Confirm(ctx context.Context, message string) (bool, error)
	NotifySuccess(message string)
	NotifyError(message string)
	NotifyUnauthorized(message string)
}
