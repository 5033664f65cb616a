package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	maxTagNameLen   = 30
	DefaultTagColor = "#6366f1"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Tag struct {
	ID        string
	Name      string
	Color     string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Tag) OwnerRef() *string {
	return &t.OwnerID
}

type CreateTagInput struct {
	Name  string
	Color *string
}

func (in *CreateTagInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Errorf(KindValidationFailed, "tag name is required")
	}
	if len(in.Name) > maxTagNameLen {
		return Errorf(KindValidationFailed, "tag name cannot exceed %d characters", maxTagNameLen)
	}
	if in.Color != nil && !hexColorRe.MatchString(*in.Color) {
		return Errorf(KindValidationFailed, "tag color must be a hex string like #6366f1")
	}
	return nil
}

type UpdateTagInput struct {
	Name  *string
	Color *string
}

func (in *UpdateTagInput) Validate() error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Errorf(KindValidationFailed, "tag name is required")
		}
		if len(name) > maxTagNameLen {
			return Errorf(KindValidationFailed, "tag name cannot exceed %d characters", maxTagNameLen)
		}
		in.Name = &name
	}
	if in.Color != nil && !hexColorRe.MatchString(*in.Color) {
		return Errorf(KindValidationFailed, "tag color must be a hex string like #6366f1")
	}
	return nil
}
