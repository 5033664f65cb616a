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

type TagRepository struct {
	db *sqlx.DB
}

type tagRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.TagRepository = (*TagRepository)(nil)

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	var rows []tagRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, name, color, user_id, created_at, updated_at FROM tags WHERE user_id = ? ORDER BY name", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, mapTagRowToDomain(row))
	}
	return tags, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	var row tagRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, name, color, user_id, created_at, updated_at FROM tags WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.KindNotFound, "tag not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	tag := mapTagRowToDomain(row)
	return &tag, nil
}

func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO tags (id, name, color, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		tag.ID, tag.Name, tag.Color, tag.OwnerID, tag.CreatedAt, tag.UpdatedAt,
	)
	if isDuplicate(err) {
		return domain.Errorf(domain.KindConflict, "tag name already exists")
	}
	if err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tags SET name = ?, color = ?, updated_at = ? WHERE id = ?",
		tag.Name, tag.Color, tag.UpdatedAt, tag.ID,
	)
	if isDuplicate(err) {
		return domain.Errorf(domain.KindConflict, "tag name already exists")
	}
	if err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tag rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Errorf(domain.KindNotFound, "tag not found")
	}
	return nil
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE tag_id = ?", id); err != nil {
		return fmt.Errorf("delete tag links: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tag rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Errorf(domain.KindNotFound, "tag not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func mapTagRowToDomain(row tagRow) domain.Tag {
	return domain.Tag{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		OwnerID:   row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
