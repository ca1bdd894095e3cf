package router

import (
	"github.com/harulog/haru-diary/go-api-server/internal/auth"
	"github.com/harulog/haru-diary/go-api-server/internal/config"
	"github.com/harulog/haru-diary/go-api-server/internal/diary"
	"github.com/harulog/haru-diary/go-api-server/internal/meta"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/database"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/middleware"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/token"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/upload"
	"github.com/harulog/haru-diary/go-api-server/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, storage upload.Storage) {
	// Meta handler (health check) and Prometheus metrics
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 로컬 드라이버일 때만 업로드 파일 정적 서빙
	if cfg.Upload.Driver == "local" || cfg.Upload.Driver == "" {
		router.Static("/uploads", cfg.Upload.LocalDir)
	}

	// repository
	userRepository := user.NewUserRepository()
	diaryRepository := diary.NewDiaryRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, userRepository, tokenManager)
	userService := user.NewUserService(db.DB, userRepository)
	diaryService := diary.NewDiaryService(db.DB, diaryRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	userHandler := user.NewUserHandler(userService)
	diaryHandler := diary.NewDiaryHandler(diaryService, storage)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
	}

	userV1 := router.Group("/api/v1/users")
	userV1.Use(middleware.JWT(cfg))
	{
		userV1.GET("/me", userHandler.GetProfile)
	}

	diaryV1 := router.Group("/api/v1/diaries")
	diaryV1.Use(middleware.JWT(cfg))
	{
		diaryV1.GET("", diaryHandler.ListRecent)
		diaryV1.GET("/weekly", diaryHandler.ListWeeklyViews)
		diaryV1.POST("", diaryHandler.Create)
		diaryV1.GET("/:diary_id", diaryHandler.Get)
		diaryV1.PUT("/:diary_id", diaryHandler.Update)
		diaryV1.DELETE("/:diary_id", diaryHandler.Delete)
		diaryV1.POST("/:diary_id/view", diaryHandler.CountView)
	}
}
