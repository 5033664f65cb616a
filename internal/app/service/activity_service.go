package service

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/policy"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type ActivityService struct {
	activity ports.ActivityRepository
}

var _ ports.ActivityService = (*ActivityService)(nil)

func NewActivityService(activity ports.ActivityRepository) *ActivityService {
	return &ActivityService{activity: activity}
}

// List returns the caller's own entries; only an admin asking for all=true
// gets the unscoped log. A non-admin passing all=true silently stays scoped
// to their own entries.
func (s *ActivityService) List(ctx context.Context, actor *domain.Actor, all bool, limit int) ([]domain.ActivityEntry, error) {
	if err := policy.Authorize(actor, policy.ActionRead, policy.ResourceActivity, nil); err != nil {
		return nil, err
	}

	filter := domain.ActivityFilter{
		UserID: policy.ListScope(actor, all),
		Limit:  limit,
	}
	return s.activity.List(ctx, filter)
}
