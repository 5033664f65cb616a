package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/policy"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type TaskService struct {
	tasks      ports.TaskRepository
	categories ports.CategoryRepository
	recorder   ports.ActivityRecorder
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, categories ports.CategoryRepository, recorder ports.ActivityRecorder) *TaskService {
	return &TaskService{tasks: tasks, categories: categories, recorder: recorder}
}

func (s *TaskService) List(ctx context.Context, actor *domain.Actor, query domain.TaskQuery) ([]domain.Task, error) {
	if err := policy.Authorize(actor, policy.ActionRead, policy.ResourceTaskList, nil); err != nil {
		return nil, err
	}
	if query.Sort != "" && !query.Sort.Valid() {
		return nil, domain.Errorf(domain.KindValidationFailed, "unknown sort key %q", query.Sort)
	}

	filter := domain.TaskFilter{
		OwnerID:    policy.ListScope(actor, query.All),
		CategoryID: query.CategoryID,
		Priority:   query.Priority,
		Completed:  query.Completed,
		Search:     query.Search,
		Sort:       query.Sort,
		Limit:      query.Limit,
	}
	return s.tasks.List(ctx, filter)
}

// Get is deliberately public: single-task read carries no ownership check,
// unlike listing. A documented inconsistency of the product contract.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, actor *domain.Actor, input domain.CreateTaskInput) (*domain.Task, error) {
	if err := policy.Authorize(actor, policy.ActionCreate, policy.ResourceTask, nil); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	ownerID := actor.UserID
	task := &domain.Task{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		OwnerID:     &ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task, input.TagIDs); err != nil {
		return nil, err
	}

	s.recorder.Record(domain.ActivityCreated, domain.EntityTask, task.Name, actor.UserID)

	return s.tasks.GetByID(ctx, task.ID)
}

func (s *TaskService) Update(ctx context.Context, actor *domain.Actor, id string, input domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ActionUpdate, policy.ResourceTask, task); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != task.CategoryID {
		if err := s.ensureCategoryExists(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		task.CategoryID = *input.CategoryID
	}

	wasCompleted := task.Completed

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task, input.TagIDs); err != nil {
		return nil, err
	}

	action := domain.ActivityUpdated
	if !wasCompleted && task.Completed {
		action = domain.ActivityCompleted
	}
	s.recorder.Record(action, domain.EntityTask, task.Name, actor.UserID)

	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.ActionDelete, policy.ResourceTask, task); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(domain.ActivityDeleted, domain.EntityTask, task.Name, actor.UserID)
	return nil
}

func (s *TaskService) ensureCategoryExists(ctx context.Context, categoryID string) error {
	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.Errorf(domain.KindInvalidReference, "category not found")
	}
	return nil
}
