package dto

type TagItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	UserID    string `json:"user"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateTagRequest struct {
	Name  string  `json:"name" binding:"required,max=30"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=30"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}
