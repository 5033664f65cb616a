package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/mapper"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
	"github.com/dench1k1ng/final-web-backend/pkg/apierrors"
)

type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

var noteErrKeys = errKeys{notFound: apierrors.MsgNoteNotFound}

// ListTaskNotes is nested under the task route: access follows the
// parent task's ownership, not the notes' authors.
func (h *NoteHandler) ListTaskNotes(c *gin.Context) {
	actor := middleware.GetActor(c)

	notes, err := h.noteService.ListForTask(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, errKeys{notFound: apierrors.MsgTaskNotFound})
		return
	}

	c.JSON(http.StatusOK, dto.OKList(mapper.ToNoteItems(notes), len(notes)))
}

func (h *NoteHandler) CreateTaskNote(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), actor, c.Param("id"), domain.CreateNoteInput{
		Text: req.Text,
	})
	if err != nil {
		respondError(c, err, errKeys{notFound: apierrors.MsgTaskNotFound})
		return
	}

	c.JSON(http.StatusCreated, dto.OK(mapper.ToNoteItem(*note)))
}

// DeleteNote sits under the task route like the other note endpoints. The
// note id alone identifies the row; the task segment is part of the path
// contract only.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	actor := middleware.GetActor(c)

	if err := h.noteService.Delete(c.Request.Context(), actor, c.Param("noteID")); err != nil {
		respondError(c, err, noteErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{}))
}
