package domain

import (
	"strings"
	"time"
)

const (
	maxCategoryNameLen        = 50
	maxCategoryDescriptionLen = 200
)

// Category is shared taxonomy: it has no owner, and any authenticated user
// may modify it. Deleting one cascades to every task that references it.
type Category struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Tasks is populated only on single-category reads.
	Tasks []Task
}

type CreateCategoryInput struct {
	Name        string
	Description *string
}

func (in *CreateCategoryInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Errorf(KindValidationFailed, "category name is required")
	}
	if len(in.Name) > maxCategoryNameLen {
		return Errorf(KindValidationFailed, "category name cannot exceed %d characters", maxCategoryNameLen)
	}
	if in.Description != nil && len(*in.Description) > maxCategoryDescriptionLen {
		return Errorf(KindValidationFailed, "category description cannot exceed %d characters", maxCategoryDescriptionLen)
	}
	return nil
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

func (in *UpdateCategoryInput) Validate() error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Errorf(KindValidationFailed, "category name is required")
		}
		if len(name) > maxCategoryNameLen {
			return Errorf(KindValidationFailed, "category name cannot exceed %d characters", maxCategoryNameLen)
		}
		in.Name = &name
	}
	if in.Description != nil && len(*in.Description) > maxCategoryDescriptionLen {
		return Errorf(KindValidationFailed, "category description cannot exceed %d characters", maxCategoryDescriptionLen)
	}
	return nil
}
