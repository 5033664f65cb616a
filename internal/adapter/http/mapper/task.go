package mapper

import (
	"time"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Name:      task.Name,
		Priority:  string(task.Priority),
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
		Tags:      ToTagItems(task.Tags),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.Category != nil {
		item.Category = &dto.CategoryRef{
			ID:          task.Category.ID,
			Name:        task.Category.Name,
			Description: task.Category.Description,
		}
	}

	if task.Owner != nil {
		item.User = &dto.UserRef{
			ID:       task.Owner.ID,
			Username: task.Owner.Username,
		}
	}

	return item
}
