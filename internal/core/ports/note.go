package ports

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type NoteRepository interface {
	ListByTask(ctx context.Context, taskID string) ([]domain.Note, error)
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	Create(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	ListForTask(ctx context.Context, actor *domain.Actor, taskID string) ([]domain.Note, error)
	Create(ctx context.Context, actor *domain.Actor, taskID string, input domain.CreateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, actor *domain.Actor, id string) error
}
