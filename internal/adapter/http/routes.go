package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/handlers"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/auth"
	"github.com/dench1k1ng/final-web-backend/internal/core/ports"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Task     *handlers.TaskHandler
	Category *handlers.CategoryHandler
	Tag      *handlers.TagHandler
	Note     *handlers.NoteHandler
	User     *handlers.UserHandler
	Activity *handlers.ActivityHandler
}

func RegisterRoutes(r *gin.Engine, jwt *auth.JWTManager, users ports.UserRepository, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	authed := middleware.RequireAuth(jwt, users)
	admin := middleware.RequireAdmin()

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/report", h.Health.CheckHealthReport)

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", authed, h.Auth.Me)

	// Single-task reads and category reads are public; everything that
	// mutates or lists per-user data requires a token.
	api.GET("/tasks", authed, h.Task.ListTasks)
	api.GET("/tasks/:id", h.Task.GetTask)
	api.POST("/tasks", authed, h.Task.CreateTask)
	api.PUT("/tasks/:id", authed, h.Task.UpdateTask)
	api.DELETE("/tasks/:id", authed, h.Task.DeleteTask)

	api.GET("/tasks/:id/notes", authed, h.Note.ListTaskNotes)
	api.POST("/tasks/:id/notes", authed, h.Note.CreateTaskNote)
	api.DELETE("/tasks/:id/notes/:noteID", authed, h.Note.DeleteNote)

	api.GET("/categories", h.Category.ListCategories)
	api.GET("/categories/:id", h.Category.GetCategory)
	api.POST("/categories", authed, h.Category.CreateCategory)
	api.PUT("/categories/:id", authed, h.Category.UpdateCategory)
	api.DELETE("/categories/:id", authed, h.Category.DeleteCategory)

	api.GET("/tags", authed, h.Tag.ListTags)
	api.POST("/tags", authed, h.Tag.CreateTag)
	api.PUT("/tags/:id", authed, h.Tag.UpdateTag)
	api.DELETE("/tags/:id", authed, h.Tag.DeleteTag)

	api.GET("/activity", authed, h.Activity.ListActivity)

	api.GET("/users", authed, admin, h.User.ListUsers)
	api.GET("/users/:id/tasks", authed, admin, h.User.GetUserTasks)
}
