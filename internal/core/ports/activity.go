package ports

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error)
}

// ActivityRecorder is the fire-and-forget sink business services record
// mutations through. Implementations must never block the caller or surface
// failures to it.
type ActivityRecorder interface {
	Record(action domain.ActivityAction, entityType domain.ActivityEntity, entityName, userID string)
}

type ActivityService interface {
	List(ctx context.Context, actor *domain.Actor, all bool, limit int) ([]domain.ActivityEntry, error)
}
