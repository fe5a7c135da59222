package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/repos"
)

type Repos struct {
	User        repos.UserRepo
	Subject     repos.SubjectRepo
	StudyPlan   repos.StudyPlanRepo
	QuizAttempt repos.QuizAttemptRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        repos.NewUserRepo(db, log),
		Subject:     repos.NewSubjectRepo(db, log),
		StudyPlan:   repos.NewStudyPlanRepo(db, log),
		QuizAttempt: repos.NewQuizAttemptRepo(db, log),
	}
}
