package dto

// UserRef is the owner/author summary embedded in task and note responses.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserItem never carries the password hash.
type UserItem struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the envelope returned by register and login.
type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	Data    UserItem `json:"data"`
}
