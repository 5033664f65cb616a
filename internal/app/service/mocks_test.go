package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepoMock) Create(ctx context.Context, task *domain.Task, tagIDs []string) error {
	return m.Called(ctx, task, tagIDs).Error(0)
}

func (m *taskRepoMock) Update(ctx context.Context, task *domain.Task, tagIDs []string) error {
	return m.Called(ctx, task, tagIDs).Error(0)
}

func (m *taskRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type categoryRepoMock struct {
	mock.Mock
}

func (m *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)

	var category *domain.Category
	if value := args.Get(0); value != nil {
		category = value.(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *categoryRepoMock) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepoMock) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepoMock) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepoMock) DeleteCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type tagRepoMock struct {
	mock.Mock
}

func (m *tagRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	args := m.Called(ctx, ownerID)

	var tags []domain.Tag
	if value := args.Get(0); value != nil {
		tags = value.([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *tagRepoMock) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	args := m.Called(ctx, id)

	var tag *domain.Tag
	if value := args.Get(0); value != nil {
		tag = value.(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *tagRepoMock) Create(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *tagRepoMock) Update(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *tagRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type noteRepoMock struct {
	mock.Mock
}

func (m *noteRepoMock) ListByTask(ctx context.Context, taskID string) ([]domain.Note, error) {
	args := m.Called(ctx, taskID)

	var notes []domain.Note
	if value := args.Get(0); value != nil {
		notes = value.([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *noteRepoMock) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	args := m.Called(ctx, id)

	var note *domain.Note
	if value := args.Get(0); value != nil {
		note = value.(*domain.Note)
	}
	return note, args.Error(1)
}

func (m *noteRepoMock) Create(ctx context.Context, note *domain.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *noteRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

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

// recorderMock records calls synchronously so tests can assert on what the
// services logged without a queue in the way.
type recorderMock struct {
	mock.Mock
}

func (m *recorderMock) Record(action domain.ActivityAction, entityType domain.ActivityEntity, entityName, userID string) {
	m.Called(action, entityType, entityName, userID)
}
