package dto

type NoteItem struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	TaskID    string   `json:"task"`
	User      *UserRef `json:"user,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type CreateNoteRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}
