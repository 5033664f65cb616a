package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func TestBuildTaskListQuery_NoFilter(t *testing.T) {
	query, args := buildTaskListQuery(domain.TaskFilter{})

	require.NotContains(t, query, "WHERE")
	require.Contains(t, query, "ORDER BY t.created_at DESC")
	require.Empty(t, args)
}

func TestBuildTaskListQuery_AllFiltersCompose(t *testing.T) {
	owner := "u-1"
	category := "cat-1"
	priority := domain.PriorityHigh
	completed := false

	query, args := buildTaskListQuery(domain.TaskFilter{
		OwnerID:    &owner,
		CategoryID: &category,
		Priority:   &priority,
		Completed:  &completed,
		Search:     "Report",
		Limit:      10,
	})

	require.Contains(t, query, "t.user_id = ?")
	require.Contains(t, query, "t.category_id = ?")
	require.Contains(t, query, "t.priority = ?")
	require.Contains(t, query, "t.completed = ?")
	require.Contains(t, query, "LOWER(t.name) LIKE ?")
	require.Contains(t, query, "LIMIT ?")
	require.Equal(t, 3, strings.Count(query, " AND "))

	// Search is matched case-insensitively against name and description.
	require.Equal(t, []any{"u-1", "cat-1", "high", false, "%report%", "%report%", 10}, args)
}

func TestBuildTaskListQuery_UnscopedForAdminAll(t *testing.T) {
	query, args := buildTaskListQuery(domain.TaskFilter{Limit: 5})

	require.NotContains(t, query, "t.user_id")
	require.Equal(t, []any{5}, args)
}

func TestTaskOrderBy(t *testing.T) {
	require.Equal(t, "t.created_at DESC", taskOrderBy(domain.SortNewest))
	require.Equal(t, "t.created_at ASC", taskOrderBy(domain.SortOldest))
	require.Equal(t, "t.name ASC", taskOrderBy(domain.SortName))

	// Unset falls back to newest-first.
	require.Equal(t, "t.created_at DESC", taskOrderBy(""))

	priority := taskOrderBy(domain.SortPriority)
	require.Contains(t, priority, "WHEN 'high' THEN 3")
	require.True(t, strings.HasSuffix(priority, "DESC, t.created_at DESC"))

	// Tasks without a due date must come last, not first.
	require.Equal(t, "t.due_date IS NULL, t.due_date ASC", taskOrderBy(domain.SortDueDate))
}
