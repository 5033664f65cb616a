package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/policy"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type TagService struct {
	tags     ports.TagRepository
	recorder ports.ActivityRecorder
}

var _ ports.TagService = (*TagService)(nil)

func NewTagService(tags ports.TagRepository, recorder ports.ActivityRecorder) *TagService {
	return &TagService{tags: tags, recorder: recorder}
}

// List is always scoped to the actor's own tags, admin or not.
func (s *TagService) List(ctx context.Context, actor *domain.Actor) ([]domain.Tag, error) {
	if err := policy.Authorize(actor, policy.ActionRead, policy.ResourceTag, nil); err != nil {
		return nil, err
	}
	return s.tags.ListByOwner(ctx, actor.UserID)
}

func (s *TagService) Create(ctx context.Context, actor *domain.Actor, input domain.CreateTagInput) (*domain.Tag, error) {
	if err := policy.Authorize(actor, policy.ActionCreate, policy.ResourceTag, nil); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := domain.DefaultTagColor
	if input.Color != nil {
		color = *input.Color
	}

	now := time.Now()
	tag := &domain.Tag{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Color:     color,
		OwnerID:   actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.recorder.Record(domain.ActivityCreated, domain.EntityTag, tag.Name, actor.UserID)
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, actor *domain.Actor, id string, input domain.UpdateTagInput) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ActionUpdate, policy.ResourceTag, tag); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		tag.Name = *input.Name
	}
	if input.Color != nil {
		tag.Color = *input.Color
	}
	tag.UpdatedAt = time.Now()

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}

	s.recorder.Record(domain.ActivityUpdated, domain.EntityTag, tag.Name, actor.UserID)
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.ActionDelete, policy.ResourceTag, tag); err != nil {
		return err
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(domain.ActivityDeleted, domain.EntityTag, tag.Name, actor.UserID)
	return nil
}
