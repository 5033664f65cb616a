package ports

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	// GetByID returns the category with its referencing tasks populated.
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	// DeleteCascade removes the category and every task referencing it (plus
	// those tasks' notes and tag links) in a single transaction, so a failed
	// cascade never reports the category as deleted.
	DeleteCascade(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, actor *domain.Actor, input domain.CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, actor *domain.Actor, id string, input domain.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, actor *domain.Actor, id string) error
}
