package mapper

import (
	"time"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	item := dto.CategoryItem{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
		UpdatedAt: category.UpdatedAt.Format(time.RFC3339),
	}

	if category.Description != nil {
		value := *category.Description
		item.Description = &value
	}

	if len(category.Tasks) > 0 {
		item.Tasks = ToTaskItems(category.Tasks)
	}

	return item
}
