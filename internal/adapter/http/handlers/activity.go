package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/mapper"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListActivity(c *gin.Context) {
	actor := middleware.GetActor(c)

	limit := domain.DefaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	all := c.Query("all") == "true"

	entries, err := h.activityService.List(c.Request.Context(), actor, all, limit)
	if err != nil {
		respondError(c, err, errKeys{})
		return
	}

	c.JSON(http.StatusOK, dto.OKList(mapper.ToActivityItems(entries), len(entries)))
}
