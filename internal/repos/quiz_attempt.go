package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/types"
)

type QuizAttemptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *types.QuizAttempt) error
	GetByUserAndPlan(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID) (*types.QuizAttempt, error)
}

type quizAttemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizAttemptRepo(db *gorm.DB, baseLog *logger.Logger) QuizAttemptRepo {
	return &quizAttemptRepo{db: db, log: baseLog.With("repo", "QuizAttemptRepo")}
}

func (r *quizAttemptRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *quizAttemptRepo) Create(ctx context.Context, tx *gorm.DB, attempt *types.QuizAttempt) error {
	return r.conn(tx).WithContext(ctx).Create(attempt).Error
}

func (r *quizAttemptRepo) GetByUserAndPlan(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID) (*types.QuizAttempt, error) {
	var attempt types.QuizAttempt
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}
