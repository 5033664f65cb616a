package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	input := domain.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TagIDs:      req.TagIDs,
	}

	if req.Priority != nil {
		input.Priority = domain.Priority(*req.Priority)
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}
	if req.DueDate != nil {
		parsed, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &parsed
	}

	return input, nil
}

// DecodeUpdateTaskRequest reads the body once and decodes it both into the
// typed request and a raw field map, so "field absent" and "field set to
// null" stay distinguishable.
func DecodeUpdateTaskRequest(c *gin.Context) (dto.UpdateTaskRequest, map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return dto.UpdateTaskRequest{}, nil, ErrInvalidTaskPayload
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return dto.UpdateTaskRequest{}, nil, ErrInvalidTaskPayload
	}

	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return dto.UpdateTaskRequest{}, nil, ErrInvalidTaskPayload
	}

	return req, raw, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Completed:   req.Completed,
		CategoryID:  req.CategoryID,
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority := domain.Priority(*req.Priority)
		input.Priority = &priority
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			parsed, err := time.Parse(dueDateLayout, *req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.DueDate = &parsed
		}
	}

	if hasJSONField(raw, "tags") {
		// tags:null clears the set; absence leaves it alone.
		if isJSONNull(raw["tags"]) || req.TagIDs == nil {
			input.TagIDs = []string{}
		} else {
			input.TagIDs = req.TagIDs
		}
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "tags")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
