package ports

import (
	"context"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

// WorkforceAPI is the remote source of truth for resources, skills and schedules.
type WorkforceAPI interface {
	Configure(creds domain.Credentials) error
	ListResources(ctx context.Context) ([]domain.Resource, error)
	SetSkillAssignments(ctx context.Context, id domain.ResourceID, skills []domain.SkillAssignment) error
	GetCalendar(ctx context.Context, id domain.ResourceID, from, to domain.Date) (domain.Calendar, error)
	SetScheduleEntry(ctx context.Context, id domain.ResourceID, patch domain.SchedulePatch) error
}
