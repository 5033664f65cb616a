package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/auth"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/pkg/translator"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func newAuthRouter(manager *auth.JWTManager, users *userRepoMock) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.GET("/whoami", middleware.RequireAuth(manager, users), func(c *gin.Context) {
		actor := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": string(actor.Role)})
	})
	group.GET("/admin", middleware.RequireAuth(manager, users), middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", "taskmanager", time.Minute)
	token, err := manager.GenerateAccessToken("u-1", domain.RoleUser)
	require.NoError(t, err)

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1", Role: domain.RoleUser}, nil).Once()

	router := newAuthRouter(manager, users)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"user_id":"u-1"`)
	users.AssertExpectations(t)
}

func TestRequireAuth_MissingOrBadToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", "taskmanager", time.Minute)
	router := newAuthRouter(manager, new(userRepoMock))

	for _, header := range []string{"", "Bearer ", "Bearer garbage", "Basic dXNlcg=="} {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		req.Header.Set("Accept-Language", translator.LanguageEn)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuth_DeletedUserIsRejected(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", "taskmanager", time.Minute)
	token, err := manager.GenerateAccessToken("ghost", domain.RoleUser)
	require.NoError(t, err)

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, "ghost").
		Return(nil, domain.Errorf(domain.KindNotFound, "user not found")).Once()

	router := newAuthRouter(manager, users)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	users.AssertExpectations(t)
}

func TestRequireAuth_RoleComesFromStoreNotToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", "taskmanager", time.Minute)
	// Token claims admin, but the account was demoted since it was issued.
	token, err := manager.GenerateAccessToken("u-1", domain.RoleAdmin)
	require.NoError(t, err)

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1", Role: domain.RoleUser}, nil).Once()

	router := newAuthRouter(manager, users)

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	users.AssertExpectations(t)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", "taskmanager", time.Minute)
	token, err := manager.GenerateAccessToken("root", domain.RoleAdmin)
	require.NoError(t, err)

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, "root").
		Return(&domain.User{ID: "root", Role: domain.RoleAdmin}, nil).Once()

	router := newAuthRouter(manager, users)

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	users.AssertExpectations(t)
}
