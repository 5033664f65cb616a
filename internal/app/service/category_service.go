package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/policy"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
	recorder   ports.ActivityRecorder
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(categories ports.CategoryRepository, recorder ports.ActivityRecorder) *CategoryService {
	return &CategoryService{categories: categories, recorder: recorder}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, actor *domain.Actor, input domain.CreateCategoryInput) (*domain.Category, error) {
	if err := policy.Authorize(actor, policy.ActionCreate, policy.ResourceCategory, nil); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.recorder.Record(domain.ActivityCreated, domain.EntityCategory, category.Name, actor.UserID)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, actor *domain.Actor, id string, input domain.UpdateCategoryInput) (*domain.Category, error) {
	// Categories are shared taxonomy: any authenticated user may update.
	if err := policy.Authorize(actor, policy.ActionUpdate, policy.ResourceCategory, nil); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	category.UpdatedAt = time.Now()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.recorder.Record(domain.ActivityUpdated, domain.EntityCategory, category.Name, actor.UserID)
	category.Tasks = nil
	return category, nil
}

// Delete cascades: every task referencing the category goes with it, in one
// transaction, so a failed cascade never leaves the category half-deleted.
func (s *CategoryService) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	if err := policy.Authorize(actor, policy.ActionDelete, policy.ResourceCategory, nil); err != nil {
		return err
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categories.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(domain.ActivityDeleted, domain.EntityCategory, category.Name, actor.UserID)
	return nil
}
