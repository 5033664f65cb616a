package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/dto"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/mapper"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
	"github.com/dench1k1ng/final-web-backend/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

var userErrKeys = errKeys{notFound: apierrors.MsgUserNotFound}

func (h *UserHandler) ListUsers(c *gin.Context) {
	actor := middleware.GetActor(c)

	users, err := h.userService.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, userErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.OKList(mapper.ToUserItems(users), len(users)))
}

func (h *UserHandler) GetUserTasks(c *gin.Context) {
	actor := middleware.GetActor(c)

	user, tasks, err := h.userService.Tasks(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, userErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.UserTasksEnvelope{
		Success: true,
		User:    mapper.ToUserItem(*user),
		Count:   len(tasks),
		Data:    mapper.ToTaskItems(tasks),
	})
}
