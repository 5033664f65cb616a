package ports

import (
	"context"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error)
	Me(ctx context.Context, actor *domain.Actor) (*domain.User, error)
}

type UserService interface {
	List(ctx context.Context, actor *domain.Actor) ([]domain.User, error)
	// Tasks returns the user summary together with every task they own.
	Tasks(ctx context.Context, actor *domain.Actor, userID string) (*domain.User, []domain.Task, error)
}
