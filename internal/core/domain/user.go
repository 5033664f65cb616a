package domain

import (
	"strings"
	"time"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 6
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (in *RegisterInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if len(in.Username) < minUsernameLen || len(in.Username) > maxUsernameLen {
		return Errorf(KindValidationFailed, "username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return Errorf(KindValidationFailed, "a valid email is required")
	}
	if len(in.Password) < minPasswordLen {
		return Errorf(KindValidationFailed, "password must be at least %d characters", minPasswordLen)
	}
	return nil
}

type LoginInput struct {
	Email    string
	Password string
}

func (in *LoginInput) Validate() error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return Errorf(KindValidationFailed, "email and password are required")
	}
	return nil
}
