package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/policy"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type NoteService struct {
	notes    ports.NoteRepository
	tasks    ports.TaskRepository
	recorder ports.ActivityRecorder
}

var _ ports.NoteService = (*NoteService)(nil)

func NewNoteService(notes ports.NoteRepository, tasks ports.TaskRepository, recorder ports.ActivityRecorder) *NoteService {
	return &NoteService{notes: notes, tasks: tasks, recorder: recorder}
}

// ListForTask gates note visibility by parent task ownership: only the
// task's owner or an admin may read its notes.
func (s *NoteService) ListForTask(ctx context.Context, actor *domain.Actor, taskID string) ([]domain.Note, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ActionRead, policy.ResourceNote, task); err != nil {
		return nil, err
	}
	return s.notes.ListByTask(ctx, taskID)
}

func (s *NoteService) Create(ctx context.Context, actor *domain.Actor, taskID string, input domain.CreateNoteInput) (*domain.Note, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ActionCreate, policy.ResourceNote, task); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &domain.Note{
		ID:        uuid.NewString(),
		Text:      input.Text,
		TaskID:    taskID,
		OwnerID:   actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	s.recorder.Record(domain.ActivityCreated, domain.EntityNote, fmt.Sprintf("Note on %q", task.Name), actor.UserID)

	return s.notes.GetByID(ctx, note.ID)
}

func (s *NoteService) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.ActionDelete, policy.ResourceNote, note); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(domain.ActivityDeleted, domain.EntityNote, "Note deleted", actor.UserID)
	return nil
}
