package domain

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Weight orders priorities for sorting: high=3, medium=2, low=1.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

const (
	maxTaskNameLen        = 100
	maxTaskDescriptionLen = 500
)

type Task struct {
	ID          string
	Name        string
	Description *string
	Priority    Priority
	Completed   bool
	DueDate     *time.Time
	CategoryID  string
	OwnerID     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated references, filled in by the repository on reads.
	Category *Category
	Owner    *UserRef
	Tags     []Tag
}

// OwnerRef implements policy.Ownable. A task created without an auth context
// has no owner; only an admin passes owner checks for it.
func (t *Task) OwnerRef() *string {
	return t.OwnerID
}

type CreateTaskInput struct {
	Name        string
	Description *string
	Priority    Priority
	Completed   bool
	DueDate     *time.Time
	CategoryID  string
	TagIDs      []string
}

func (in *CreateTaskInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Errorf(KindValidationFailed, "task name is required")
	}
	if len(in.Name) > maxTaskNameLen {
		return Errorf(KindValidationFailed, "task name cannot exceed %d characters", maxTaskNameLen)
	}
	if in.Description != nil && len(*in.Description) > maxTaskDescriptionLen {
		return Errorf(KindValidationFailed, "task description cannot exceed %d characters", maxTaskDescriptionLen)
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if !in.Priority.Valid() {
		return Errorf(KindValidationFailed, "priority must be one of low, medium, high")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return Errorf(KindValidationFailed, "task category is required")
	}
	return nil
}

// UpdateTaskInput carries partial updates. Nil pointers leave the field
// untouched; DueDateSet distinguishes "clear the due date" from "no change".
// A nil TagIDs slice keeps the current tag set.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	Priority    *Priority
	Completed   *bool
	DueDate     *time.Time
	DueDateSet  bool
	CategoryID  *string
	TagIDs      []string
}

func (in *UpdateTaskInput) Validate() error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Errorf(KindValidationFailed, "task name is required")
		}
		if len(name) > maxTaskNameLen {
			return Errorf(KindValidationFailed, "task name cannot exceed %d characters", maxTaskNameLen)
		}
		in.Name = &name
	}
	if in.Description != nil && len(*in.Description) > maxTaskDescriptionLen {
		return Errorf(KindValidationFailed, "task description cannot exceed %d characters", maxTaskDescriptionLen)
	}
	if in.Priority != nil && !in.Priority.Valid() {
		return Errorf(KindValidationFailed, "priority must be one of low, medium, high")
	}
	if in.CategoryID != nil && strings.TrimSpace(*in.CategoryID) == "" {
		return Errorf(KindValidationFailed, "task category is required")
	}
	return nil
}
