package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the identity resolved from a bearer credential. It is the sole
// trust anchor for authorization decisions; nothing from a request body is
// ever used to establish identity.
type Actor struct {
	UserID string
	Role   Role
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// UserRef is the owner/author summary embedded in populated responses.
type UserRef struct {
	ID       string
	Username string
}
