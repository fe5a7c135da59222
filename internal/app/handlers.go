package app

import (
	"github.com/yungbote/studyplan-backend/internal/handlers"
	"github.com/yungbote/studyplan-backend/internal/logger"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Subject *handlers.SubjectHandler
	Plan    *handlers.PlanHandler
	Quiz    *handlers.QuizHandler
}

func wireHandlers(log *logger.Logger, cfg Config, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:    handlers.NewAuthHandler(serviceset.Auth, cfg.CookieSecure),
		User:    handlers.NewUserHandler(serviceset.Auth),
		Subject: handlers.NewSubjectHandler(serviceset.Subject),
		Plan:    handlers.NewPlanHandler(serviceset.Plan),
		Quiz:    handlers.NewQuizHandler(serviceset.Quiz),
	}
}
