package mapper

import (
	"time"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToActivityItems(entries []domain.ActivityEntry) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToActivityItem(entry))
	}
	return items
}

func ToActivityItem(entry domain.ActivityEntry) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:         entry.ID,
		Action:     string(entry.Action),
		EntityType: string(entry.EntityType),
		EntityName: entry.EntityName,
		CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.User != nil {
		item.User = &dto.UserRef{
			ID:       entry.User.ID,
			Username: entry.User.Username,
		}
	}
	return item
}
