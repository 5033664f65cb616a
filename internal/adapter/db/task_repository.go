package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

const selectTasksBase = `
SELECT
  t.id, t.name, t.description, t.priority, t.completed, t.due_date,
  t.category_id, t.user_id, t.created_at, t.updated_at,
  c.name AS category_name,
  u.username AS owner_username
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
LEFT JOIN users u ON u.id = t.user_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Description   sql.NullString `db:"description"`
	Priority      string         `db:"priority"`
	Completed     bool           `db:"completed"`
	DueDate       sql.NullTime   `db:"due_date"`
	CategoryID    string         `db:"category_id"`
	UserID        sql.NullString `db:"user_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CategoryName  sql.NullString `db:"category_name"`
	OwnerUsername sql.NullString `db:"owner_username"`
}

type taskTagRow struct {
	TaskID string `db:"task_id"`
	ID     string `db:"id"`
	Name   string `db:"name"`
	Color  string `db:"color"`
	UserID string `db:"user_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query, args := buildTaskListQuery(filter)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
		ids = append(ids, row.ID)
	}

	if err := r.attachTags(ctx, tasks, ids); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTasksBase+"WHERE t.id = ?", id)
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.KindNotFound, "task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	task := mapTaskRowToDomainTask(row)

	// The single-task view carries the category description as well.
	if task.Category != nil {
		var description sql.NullString
		err = r.db.GetContext(ctx, &description, "SELECT description FROM categories WHERE id = ?", row.CategoryID)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("get task category: %w", err)
		}
		if description.Valid {
			value := description.String
			task.Category.Description = &value
		}
	}

	tasks := []domain.Task{task}
	if err := r.attachTags(ctx, tasks, []string{id}); err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task, tagIDs []string) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO tasks (id, name, description, priority, completed, due_date, category_id, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.Name, task.Description, task.Priority, task.Completed,
			task.DueDate, task.CategoryID, task.OwnerID, task.CreatedAt, task.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		return insertTaskTags(ctx, tx, task.ID, tagIDs)
	})
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task, tagIDs []string) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
UPDATE tasks
SET name = ?, description = ?, priority = ?, completed = ?, due_date = ?, category_id = ?, updated_at = ?
WHERE id = ?`,
			task.Name, task.Description, task.Priority, task.Completed,
			task.DueDate, task.CategoryID, task.UpdatedAt, task.ID,
		)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update task rows affected: %w", err)
		}
		if affected == 0 {
			return domain.Errorf(domain.KindNotFound, "task not found")
		}

		if tagIDs == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", task.ID); err != nil {
			return fmt.Errorf("clear task tags: %w", err)
		}
		return insertTaskTags(ctx, tx, task.ID, tagIDs)
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM notes WHERE task_id = ?", id); err != nil {
			return fmt.Errorf("delete task notes: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
			return fmt.Errorf("delete task tags: %w", err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete task rows affected: %w", err)
		}
		if affected == 0 {
			return domain.Errorf(domain.KindNotFound, "task not found")
		}
		return nil
	})
}

func (r *TaskRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func insertTaskTags(ctx context.Context, tx *sqlx.Tx, taskID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, "INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)", taskID, tagID); err != nil {
			if isDuplicate(err) {
				continue
			}
			// The task row was written in this tx, so the only reference that
			// can fail here is the tag id the client supplied.
			if isFKViolation(err) {
				return domain.Errorf(domain.KindValidationFailed, "unknown tag %q", tagID)
			}
			return fmt.Errorf("insert task tag: %w", err)
		}
	}
	return nil
}

// attachTags loads the tag sets of the given tasks in one query and fills
// them in by position; tasks and ids run in parallel.
func (r *TaskRepository) attachTags(ctx context.Context, tasks []domain.Task, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
SELECT tt.task_id, tg.id, tg.name, tg.color, tg.user_id
FROM task_tags tt
JOIN tags tg ON tg.id = tt.tag_id
WHERE tt.task_id IN (?)
ORDER BY tg.name`, ids)
	if err != nil {
		return fmt.Errorf("build tags query: %w", err)
	}

	var rows []taskTagRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("list task tags: %w", err)
	}

	byTask := make(map[string][]domain.Tag, len(tasks))
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], domain.Tag{
			ID:      row.ID,
			Name:    row.Name,
			Color:   row.Color,
			OwnerID: row.UserID,
		})
	}
	for i := range tasks {
		tasks[i].Tags = byTask[tasks[i].ID]
	}
	return nil
}

func buildTaskListQuery(filter domain.TaskFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if filter.OwnerID != nil {
		clauses = append(clauses, "t.user_id = ?")
		args = append(args, *filter.OwnerID)
	}
	if filter.CategoryID != nil {
		clauses = append(clauses, "t.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.Priority != nil {
		clauses = append(clauses, "t.priority = ?")
		args = append(args, string(*filter.Priority))
	}
	if filter.Completed != nil {
		clauses = append(clauses, "t.completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(LOWER(t.name) LIKE ? OR LOWER(t.description) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	query := selectTasksBase
	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY " + taskOrderBy(filter.Sort)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	return query, args
}

func taskOrderBy(sort domain.SortKey) string {
	switch sort {
	case domain.SortOldest:
		return "t.created_at ASC"
	case domain.SortPriority:
		// high=3, medium=2, low=1, descending.
		return "CASE t.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC, t.created_at DESC"
	case domain.SortDueDate:
		// Tasks without a due date sort after every task that has one.
		return "t.due_date IS NULL, t.due_date ASC"
	case domain.SortName:
		return "t.name ASC"
	default:
		return "t.created_at DESC"
	}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		Name:       row.Name,
		Priority:   domain.Priority(row.Priority),
		Completed:  row.Completed,
		CategoryID: row.CategoryID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.UserID.Valid {
		value := row.UserID.String
		task.OwnerID = &value
		if row.OwnerUsername.Valid {
			task.Owner = &domain.UserRef{
				ID:       value,
				Username: row.OwnerUsername.String,
			}
		}
	}

	if row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:   row.CategoryID,
			Name: row.CategoryName.String,
		}
	}

	return task
}
