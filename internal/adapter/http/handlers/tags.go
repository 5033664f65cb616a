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

type TagHandler struct {
	tagService ports.TagService
}

func NewTagHandler(tagService ports.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

var tagErrKeys = errKeys{
	notFound: apierrors.MsgTagNotFound,
	conflict: apierrors.MsgTagExists,
}

func (h *TagHandler) ListTags(c *gin.Context) {
	actor := middleware.GetActor(c)

	tags, err := h.tagService.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, tagErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OKList(mapper.ToTagItems(tags), len(tags)))
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), actor, domain.CreateTagInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondError(c, err, tagErrKeys)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(mapper.ToTagItem(*tag)))
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	tag, err := h.tagService.Update(c.Request.Context(), actor, c.Param("id"), domain.UpdateTagInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondError(c, err, tagErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToTagItem(*tag)))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	actor := middleware.GetActor(c)

	if err := h.tagService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, tagErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{}))
}
