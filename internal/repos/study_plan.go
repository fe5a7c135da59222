package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/types"
)

// PlanWithSubject is a plan row joined with the owning subject's name and
// level, for the plan detail endpoint.
type PlanWithSubject struct {
	types.StudyPlan
	SubjectName    string `json:"subject_name"`
	EducationLevel string `json:"education_level"`
}

type StudyPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) error
	GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.StudyPlan, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*PlanWithSubject, error)
}

type studyPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyPlanRepo(db *gorm.DB, baseLog *logger.Logger) StudyPlanRepo {
	return &studyPlanRepo{db: db, log: baseLog.With("repo", "StudyPlanRepo")}
}

func (r *studyPlanRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *studyPlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) error {
	return r.conn(tx).WithContext(ctx).Create(plan).Error
}

func (r *studyPlanRepo) GetBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uuid.UUID) (*types.StudyPlan, error) {
	var plan types.StudyPlan
	if err := r.conn(tx).WithContext(ctx).
		Where("subject_id = ?", subjectID).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByIDForUser scopes the read to the subject's owner, so a foreign plan
// id reads as not found.
func (r *studyPlanRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*PlanWithSubject, error) {
	var row PlanWithSubject
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.StudyPlan{}).
		Select("study_plans.*, subjects.subject_name, subjects.education_level").
		Joins("JOIN subjects ON subjects.id = study_plans.subject_id").
		Where("study_plans.id = ? AND subjects.user_id = ?", planID, userID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
