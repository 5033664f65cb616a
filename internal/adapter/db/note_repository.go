package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

const selectNotesBase = `
SELECT
  n.id, n.text, n.task_id, n.user_id, n.created_at, n.updated_at,
  u.username AS author_username
FROM notes n
LEFT JOIN users u ON u.id = n.user_id
`

type NoteRepository struct {
	db *sqlx.DB
}

type noteRow struct {
	ID             string         `db:"id"`
	Text           string         `db:"text"`
	TaskID         string         `db:"task_id"`
	UserID         string         `db:"user_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	AuthorUsername sql.NullString `db:"author_username"`
}

var _ ports.NoteRepository = (*NoteRepository)(nil)

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Note, error) {
	var rows []noteRow
	err := r.db.SelectContext(ctx, &rows, selectNotesBase+"WHERE n.task_id = ?\nORDER BY n.created_at DESC", taskID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNoteRowToDomain(row))
	}
	return notes, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var row noteRow
	err := r.db.GetContext(ctx, &row, selectNotesBase+"WHERE n.id = ?", id)
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.KindNotFound, "note not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	note := mapNoteRowToDomain(row)
	return &note, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO notes (id, text, task_id, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.Text, note.TaskID, note.OwnerID, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Errorf(domain.KindNotFound, "note not found")
	}
	return nil
}

func mapNoteRowToDomain(row noteRow) domain.Note {
	note := domain.Note{
		ID:        row.ID,
		Text:      row.Text,
		TaskID:    row.TaskID,
		OwnerID:   row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.AuthorUsername.Valid {
		note.Author = &domain.UserRef{
			ID:       row.UserID,
			Username: row.AuthorUsername.String,
		}
	}
	return note
}
