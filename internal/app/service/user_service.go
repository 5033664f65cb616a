package service

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/policy"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository
	tasks ports.TaskRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserRepository, tasks ports.TaskRepository) *UserService {
	return &UserService{users: users, tasks: tasks}
}

func (s *UserService) List(ctx context.Context, actor *domain.Actor) ([]domain.User, error) {
	if err := policy.Authorize(actor, policy.ActionRead, policy.ResourceUser, nil); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *UserService) Tasks(ctx context.Context, actor *domain.Actor, userID string) (*domain.User, []domain.Task, error) {
	if err := policy.Authorize(actor, policy.ActionRead, policy.ResourceUser, nil); err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.tasks.List(ctx, domain.TaskFilter{OwnerID: &userID})
	if err != nil {
		return nil, nil, err
	}
	return user, tasks, nil
}
