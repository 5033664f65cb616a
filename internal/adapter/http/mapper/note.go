package mapper

import (
	"time"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func ToNoteItems(notes []domain.Note) []dto.NoteItem {
	items := make([]dto.NoteItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, ToNoteItem(note))
	}
	return items
}

func ToNoteItem(note domain.Note) dto.NoteItem {
	item := dto.NoteItem{
		ID:        note.ID,
		Text:      note.Text,
		TaskID:    note.TaskID,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
	if note.Author != nil {
		item.User = &dto.UserRef{
			ID:       note.Author.ID,
			Username: note.Author.Username,
		}
	}
	return item
}
