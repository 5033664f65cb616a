package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func userActor(id string) *domain.Actor {
	return &domain.Actor{UserID: id, Role: domain.RoleUser}
}

func adminActor(id string) *domain.Actor {
	return &domain.Actor{UserID: id, Role: domain.RoleAdmin}
}

func TestTaskService_List_ScopesToActor(t *testing.T) {
	taskRepo := new(taskRepoMock)
	taskRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.TaskFilter) bool {
		return f.OwnerID != nil && *f.OwnerID == "alice"
	})).Return([]domain.Task{}, nil).Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), new(recorderMock))

	// A regular user asking for everything still only gets their own rows.
	_, err := svc.List(context.Background(), userActor("alice"), domain.TaskQuery{All: true})
	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_List_AdminAllIsUnscoped(t *testing.T) {
	taskRepo := new(taskRepoMock)
	taskRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.TaskFilter) bool {
		return f.OwnerID == nil
	})).Return([]domain.Task{}, nil).Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), new(recorderMock))

	_, err := svc.List(context.Background(), adminActor("root"), domain.TaskQuery{All: true})
	require.NoError(t, err)
	taskRepo.AssertExpectations(t)
}

func TestTaskService_List_RejectsUnknownSort(t *testing.T) {
	svc := NewTaskService(new(taskRepoMock), new(categoryRepoMock), new(recorderMock))

	_, err := svc.List(context.Background(), userActor("alice"), domain.TaskQuery{Sort: "sideways"})
	require.Error(t, err)
	require.Equal(t, domain.KindValidationFailed, domain.KindOf(err))
}

func TestTaskService_List_RequiresAuth(t *testing.T) {
	svc := NewTaskService(new(taskRepoMock), new(categoryRepoMock), new(recorderMock))

	_, err := svc.List(context.Background(), nil, domain.TaskQuery{})
	require.Error(t, err)
	require.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
}

func TestTaskService_Create_OwnerComesFromActor(t *testing.T) {
	taskRepo := new(taskRepoMock)
	categoryRepo := new(categoryRepoMock)
	recorder := new(recorderMock)

	categoryRepo.On("Exists", mock.Anything, "cat-1").Return(true, nil).Once()
	taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.OwnerID != nil && *task.OwnerID == "alice" && task.Name == "Write report"
	}), []string(nil)).Return(nil).Once()
	taskRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Task{Name: "Write report"}, nil).Once()
	recorder.On("Record", domain.ActivityCreated, domain.EntityTask, "Write report", "alice").Once()

	svc := NewTaskService(taskRepo, categoryRepo, recorder)

	task, err := svc.Create(context.Background(), userActor("alice"), domain.CreateTaskInput{
		Name:       "Write report",
		Priority:   domain.PriorityMedium,
		CategoryID: "cat-1",
	})
	require.NoError(t, err)
	require.Equal(t, "Write report", task.Name)
	taskRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestTaskService_Create_UnknownCategoryIsInvalidReference(t *testing.T) {
	categoryRepo := new(categoryRepoMock)
	categoryRepo.On("Exists", mock.Anything, "missing").Return(false, nil).Once()

	svc := NewTaskService(new(taskRepoMock), categoryRepo, new(recorderMock))

	_, err := svc.Create(context.Background(), userActor("alice"), domain.CreateTaskInput{
		Name:       "Write report",
		Priority:   domain.PriorityMedium,
		CategoryID: "missing",
	})
	require.Error(t, err)
	require.Equal(t, domain.KindInvalidReference, domain.KindOf(err))
}

func TestTaskService_Update_ForbiddenForNonOwner(t *testing.T) {
	owner := "alice"
	taskRepo := new(taskRepoMock)
	taskRepo.On("GetByID", mock.Anything, "task-1").Return(&domain.Task{ID: "task-1", OwnerID: &owner}, nil).Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), new(recorderMock))

	_, err := svc.Update(context.Background(), userActor("bob"), "task-1", domain.UpdateTaskInput{})
	require.Error(t, err)
	require.Equal(t, domain.KindForbidden, domain.KindOf(err))
	taskRepo.AssertExpectations(t)
}

func TestTaskService_Update_CompletionTransitionIsRecorded(t *testing.T) {
	owner := "alice"
	completed := true

	taskRepo := new(taskRepoMock)
	recorder := new(recorderMock)
	taskRepo.On("GetByID", mock.Anything, "task-1").
		Return(&domain.Task{ID: "task-1", Name: "Write report", OwnerID: &owner, Completed: false}, nil).Once()
	taskRepo.On("Update", mock.Anything, mock.Anything, []string(nil)).Return(nil).Once()
	taskRepo.On("GetByID", mock.Anything, "task-1").
		Return(&domain.Task{ID: "task-1", Name: "Write report", OwnerID: &owner, Completed: true}, nil).Once()
	recorder.On("Record", domain.ActivityCompleted, domain.EntityTask, "Write report", "alice").Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), recorder)

	_, err := svc.Update(context.Background(), userActor("alice"), "task-1", domain.UpdateTaskInput{Completed: &completed})
	require.NoError(t, err)
	recorder.AssertExpectations(t)
}

func TestTaskService_Update_AlreadyCompletedStaysUpdated(t *testing.T) {
	owner := "alice"
	completed := true

	taskRepo := new(taskRepoMock)
	recorder := new(recorderMock)
	taskRepo.On("GetByID", mock.Anything, "task-1").
		Return(&domain.Task{ID: "task-1", Name: "Write report", OwnerID: &owner, Completed: true}, nil).Twice()
	taskRepo.On("Update", mock.Anything, mock.Anything, []string(nil)).Return(nil).Once()
	recorder.On("Record", domain.ActivityUpdated, domain.EntityTask, "Write report", "alice").Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), recorder)

	_, err := svc.Update(context.Background(), userActor("alice"), "task-1", domain.UpdateTaskInput{Completed: &completed})
	require.NoError(t, err)
	recorder.AssertExpectations(t)
}

func TestTaskService_Delete_AdminMayDeleteAnyTask(t *testing.T) {
	owner := "alice"
	taskRepo := new(taskRepoMock)
	recorder := new(recorderMock)
	taskRepo.On("GetByID", mock.Anything, "task-1").
		Return(&domain.Task{ID: "task-1", Name: "Write report", OwnerID: &owner}, nil).Once()
	taskRepo.On("Delete", mock.Anything, "task-1").Return(nil).Once()
	recorder.On("Record", domain.ActivityDeleted, domain.EntityTask, "Write report", "root").Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), recorder)

	require.NoError(t, svc.Delete(context.Background(), adminActor("root"), "task-1"))
	taskRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestTaskService_Delete_MissingTaskIsNotFound(t *testing.T) {
	taskRepo := new(taskRepoMock)
	taskRepo.On("GetByID", mock.Anything, "gone").
		Return(nil, domain.Errorf(domain.KindNotFound, "task not found")).Once()

	svc := NewTaskService(taskRepo, new(categoryRepoMock), new(recorderMock))

	err := svc.Delete(context.Background(), userActor("alice"), "gone")
	require.Error(t, err)
	require.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
