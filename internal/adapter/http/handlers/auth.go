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

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

var authErrKeys = errKeys{conflict: apierrors.MsgUserExists}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, authErrKeys)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Token:   token,
		Data:    mapper.ToUserItem(*user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadPayload(c)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, authErrKeys)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   token,
		Data:    mapper.ToUserItem(*user),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.GetActor(c)

	user, err := h.authService.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, errKeys{notFound: apierrors.MsgUserNotFound})
		return
	}

	c.JSON(http.StatusOK, dto.OK(mapper.ToUserItem(*user)))
}
