package mapper

import (
	"time"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func ToTagItems(tags []domain.Tag) []dto.TagItem {
	items := make([]dto.TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, ToTagItem(tag))
	}
	return items
}

func ToTagItem(tag domain.Tag) dto.TagItem {
	return dto.TagItem{
		ID:        tag.ID,
		Name:      tag.Name,
		Color:     tag.Color,
		UserID:    tag.OwnerID,
		CreatedAt: tag.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tag.UpdatedAt.Format(time.RFC3339),
	}
}
