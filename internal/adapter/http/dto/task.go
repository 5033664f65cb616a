package dto

type TaskItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Priority    string       `json:"priority"`
	Completed   bool         `json:"completed"`
	DueDate     *string      `json:"due_date,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Category    *CategoryRef `json:"category,omitempty"`
	User        *UserRef     `json:"user,omitempty"`
	Tags        []TagItem    `json:"tags"`
}

type CreateTaskRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool    `json:"completed"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  string   `json:"category" binding:"required"`
	TagIDs      []string `json:"tags"`
}

type UpdateTaskRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool    `json:"completed"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *string  `json:"category"`
	TagIDs      []string `json:"tags"`
}
