package ports

import (
	"context"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

type HostSessionProvider interface {
	Session(ctx context.Context) (domain.HostSession, error)
}
