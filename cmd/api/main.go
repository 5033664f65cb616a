package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dench1k1ng/final-web-backend/internal/activity"
	dbadapter "github.com/dench1k1ng/final-web-backend/internal/adapter/db"
	httpadapter "github.com/dench1k1ng/final-web-backend/internal/adapter/http"
	"github.com/dench1k1ng/final-web-backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/dench1k1ng/final-web-backend/internal/adapter/http/middleware"
	"github.com/dench1k1ng/final-web-backend/internal/app/service"
	"github.com/dench1k1ng/final-web-backend/internal/auth"
	"github.com/dench1k1ng/final-web-backend/internal/config"
	"github.com/dench1k1ng/final-web-backend/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	categoryRepo := dbadapter.NewCategoryRepository(db)
	tagRepo := dbadapter.NewTagRepository(db)
	noteRepo := dbadapter.NewNoteRepository(db)
	activityRepo := dbadapter.NewActivityRepository(db)

	recorder := activity.NewRecorder(activityRepo, cfg.ActivityQueueSize)
	defer recorder.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	h := httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(service.NewAuthService(userRepo, jwtManager, cfg.BcryptCost)),
		Task:     handlers.NewTaskHandler(service.NewTaskService(taskRepo, categoryRepo, recorder)),
		Category: handlers.NewCategoryHandler(service.NewCategoryService(categoryRepo, recorder)),
		Tag:      handlers.NewTagHandler(service.NewTagService(tagRepo, recorder)),
		Note:     handlers.NewNoteHandler(service.NewNoteService(noteRepo, taskRepo, recorder)),
		User:     handlers.NewUserHandler(service.NewUserService(userRepo, taskRepo)),
		Activity: handlers.NewActivityHandler(service.NewActivityService(activityRepo)),
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(r, jwtManager, userRepo, h)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
