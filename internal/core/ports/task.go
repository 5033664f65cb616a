package ports

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task, tagIDs []string) error
	Update(ctx context.Context, task *domain.Task, tagIDs []string) error
	// Delete removes the task together with its notes and tag links in one
	// transaction. Returns a NotFound error when the id does not resolve.
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	List(ctx context.Context, actor *domain.Actor, query domain.TaskQuery) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, actor *domain.Actor, input domain.CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, actor *domain.Actor, id string, input domain.UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, actor *domain.Actor, id string) error
}
