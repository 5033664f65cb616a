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

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

var categoryErrKeys = errKeys{
	notFound: apierrors.MsgCategoryNotFound,
	conflict: apierrors.MsgCategoryExists,
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, categoryErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OKList(mapper.ToCategoryItems(categories), len(categories)))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, categoryErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToCategoryItem(*category)))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), actor, domain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, categoryErrKeys)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(mapper.ToCategoryItem(*category)))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), actor, c.Param("id"), domain.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, categoryErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToCategoryItem(*category)))
}

// DeleteCategory cascades: every task in the category is removed with it.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	actor := middleware.GetActor(c)

	if err := h.categoryService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, categoryErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{}))
}
