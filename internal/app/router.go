package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyplan-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		FrontendOrigin: cfg.FrontendOrigin,
		AuthHandler:    handlerset.Auth,
		AuthMiddleware: mw.Auth,
		UserHandler:    handlerset.User,
		SubjectHandler: handlerset.Subject,
		PlanHandler:    handlerset.Plan,
		QuizHandler:    handlerset.Quiz,
	})
}
