package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dench1k1ng/final-web-backend/internal/auth"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type AuthService struct {
	users      ports.UserRepository
	jwt        *auth.JWTManager
	bcryptCost int
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, jwt *auth.JWTManager, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, jwt: jwt, bcryptCost: bcryptCost}
}

// Register creates a user with the default role and issues an access token.
// Duplicate username or email surfaces as Conflict from the store.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials. A missing user and a wrong password produce
// the same Unauthenticated result.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.Errorf(domain.KindUnauthenticated, "invalid credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", domain.Errorf(domain.KindUnauthenticated, "invalid credentials")
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, actor *domain.Actor) (*domain.User, error) {
	if actor == nil {
		return nil, domain.Errorf(domain.KindUnauthenticated, "authentication required")
	}
	return s.users.GetByID(ctx, actor.UserID)
}
