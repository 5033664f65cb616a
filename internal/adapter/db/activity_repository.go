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

type ActivityRepository struct {
	db *sqlx.DB
}

type activityRow struct {
	ID         string         `db:"id"`
	Action     string         `db:"action"`
	EntityType string         `db:"entity_type"`
	EntityName string         `db:"entity_name"`
	UserID     string         `db:"user_id"`
	CreatedAt  time.Time      `db:"created_at"`
	Username   sql.NullString `db:"username"`
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO activity_log (id, action, entity_type, entity_name, user_id, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Action, entry.EntityType, entry.EntityName, entry.UserID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultActivityLimit
	}

	query := `
SELECT a.id, a.action, a.entity_type, a.entity_name, a.user_id, a.created_at,
       u.username
FROM activity_log a
LEFT JOIN users u ON u.id = a.user_id
`
	var args []any
	if filter.UserID != nil {
		query += "WHERE a.user_id = ?\n"
		args = append(args, *filter.UserID)
	}
	query += "ORDER BY a.created_at DESC LIMIT ?"
	args = append(args, limit)

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	entries := make([]domain.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entry := domain.ActivityEntry{
			ID:         row.ID,
			Action:     domain.ActivityAction(row.Action),
			EntityType: domain.ActivityEntity(row.EntityType),
			EntityName: row.EntityName,
			UserID:     row.UserID,
			CreatedAt:  row.CreatedAt,
		}
		if row.Username.Valid {
			entry.User = &domain.UserRef{ID: row.UserID, Username: row.Username.String}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
