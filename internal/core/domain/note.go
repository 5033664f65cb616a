package domain

import (
	"strings"
	"time"
)

const maxNoteTextLen = 500

type Note struct {
	ID        string
	Text      string
	TaskID    string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserRef
}

func (n *Note) OwnerRef() *string {
	return &n.OwnerID
}

// CreateNoteInput deliberately carries no task or author reference: the task
// comes from the URL and the author from the authenticated actor.
type CreateNoteInput struct {
	Text string
}

func (in *CreateNoteInput) Validate() error {
	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		return Errorf(KindValidationFailed, "note text is required")
	}
	if len(in.Text) > maxNoteTextLen {
		return Errorf(KindValidationFailed, "note text cannot exceed %d characters", maxNoteTextLen)
	}
	return nil
}
