package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyplan-backend/internal/handlers"
	"github.com/yungbote/studyplan-backend/internal/middleware"
)

type RouterConfig struct {
	FrontendOrigin string
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	UserHandler    *handlers.UserHandler
	SubjectHandler *handlers.SubjectHandler
	PlanHandler    *handlers.PlanHandler
	QuizHandler    *handlers.QuizHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600 * time.Second,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/", handlers.Root)
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/signup", cfg.AuthHandler.Signup)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/logout", cfg.AuthHandler.Logout)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// User
	protected.GET("/api/user", cfg.UserHandler.GetMe)
	// Subjects
	protected.GET("/subjects", cfg.SubjectHandler.List)
	protected.POST("/api/subjects", cfg.SubjectHandler.Create)
	protected.PUT("/api/subjects/:id", cfg.SubjectHandler.Rename)
	protected.DELETE("/api/subjects/:id", cfg.SubjectHandler.Delete)
	// Plans
	protected.POST("/api/generate_plan", cfg.PlanHandler.Generate)
	protected.GET("/api/plan/:id", cfg.PlanHandler.GetByID)
	// Quiz
	protected.GET("/api/quiz/result/:id", cfg.QuizHandler.Result)
	protected.POST("/api/quiz/submit", cfg.QuizHandler.Submit)

	return router
}
