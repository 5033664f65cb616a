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

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomain(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row, "SELECT id, name, description, created_at, updated_at FROM categories WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.KindNotFound, "category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	category := mapCategoryRowToDomain(row)

	var taskRows []taskRow
	err = r.db.SelectContext(ctx, &taskRows, selectTasksBase+"WHERE t.category_id = ?\nORDER BY t.created_at DESC", id)
	if err != nil {
		return nil, fmt.Errorf("get category tasks: %w", err)
	}
	for _, tr := range taskRows {
		category.Tasks = append(category.Tasks, mapTaskRowToDomainTask(tr))
	}

	return &category, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM categories WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO categories (id, name, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	)
	if isDuplicate(err) {
		return domain.Errorf(domain.KindConflict, "category name already exists")
	}
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		category.Name, category.Description, category.UpdatedAt, category.ID,
	)
	if isDuplicate(err) {
		return domain.Errorf(domain.KindConflict, "category name already exists")
	}
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Errorf(domain.KindNotFound, "category not found")
	}
	return nil
}

// DeleteCascade removes the category and every task referencing it inside a
// single transaction, children first. Either the whole cascade commits or
// the category survives intact; no partial success is ever reported.
func (r *CategoryRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM notes WHERE task_id IN (SELECT id FROM tasks WHERE category_id = ?)", id); err != nil {
		return fmt.Errorf("cascade delete notes: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM task_tags WHERE task_id IN (SELECT id FROM tasks WHERE category_id = ?)", id); err != nil {
		return fmt.Errorf("cascade delete task tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("cascade delete tasks: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Errorf(domain.KindNotFound, "category not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cascade: %w", err)
	}
	return nil
}

func mapCategoryRowToDomain(row categoryRow) domain.Category {
	category := domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}
	return category
}
