package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/clients/gemini"
	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/plangen"
	"github.com/yungbote/studyplan-backend/internal/services"
	"github.com/yungbote/studyplan-backend/internal/sessions"
)

type Services struct {
	Auth    services.AuthService
	Subject services.SubjectService
	Plan    services.PlanService
	Quiz    services.QuizService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, store sessions.Store) (Services, error) {
	log.Info("Wiring services...")

	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		return Services{}, fmt.Errorf("init gemini client: %w", err)
	}
	generator := plangen.NewGenerator(geminiClient, cfg.Plangen, log)

	return Services{
		Auth:    services.NewAuthService(db, log, reposet.User, store),
		Subject: services.NewSubjectService(db, log, reposet.Subject),
		Plan:    services.NewPlanService(db, log, reposet.Subject, reposet.StudyPlan, generator),
		Quiz:    services.NewQuizService(db, log, reposet.StudyPlan, reposet.QuizAttempt),
	}, nil
}
