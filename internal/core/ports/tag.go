package ports

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type TagRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Tag, error)
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) error
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id string) error
}

type TagService interface {
	List(ctx context.Context, actor *domain.Actor) ([]domain.Tag, error)
	Create(ctx context.Context, actor *domain.Actor, input domain.CreateTagInput) (*domain.Tag, error)
	Update(ctx context.Context, actor *domain.Actor, id string, input domain.UpdateTagInput) (*domain.Tag, error)
	Delete(ctx context.Context, actor *domain.Actor, id string) error
}
