package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/types"
)

// SubjectWithPlan is a subject row joined with the id of its study plan,
// when one exists.
type SubjectWithPlan struct {
	ID             uuid.UUID  `json:"id"`
	SubjectName    string     `json:"subject_name"`
	EducationLevel string     `json:"education_level"`
	UpdatedAt      time.Time  `json:"updated_at"`
	PlanID         *uuid.UUID `json:"plan_id"`
}

type SubjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subject *types.Subject) error
	GetByID(ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID) (*types.Subject, error)
	GetByNameLevel(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name, level string) (*types.Subject, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]SubjectWithPlan, error)
	Rename(ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID, name string, studiedAt time.Time) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID) (int64, error)
}

type subjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SubjectRepo {
	return &subjectRepo{db: db, log: baseLog.With("repo", "SubjectRepo")}
}

func (r *subjectRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *subjectRepo) Create(ctx context.Context, tx *gorm.DB, subject *types.Subject) error {
	return r.conn(tx).WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID) (*types.Subject, error) {
	var subject types.Subject
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", subjectID, userID).
		First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) GetByNameLevel(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name, level string) (*types.Subject, error) {
	var subject types.Subject
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND subject_name = ? AND education_level = ?", userID, name, level).
		First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]SubjectWithPlan, error) {
	var rows []SubjectWithPlan
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.Subject{}).
		Select("subjects.id, subjects.subject_name, subjects.education_level, subjects.updated_at, study_plans.id AS plan_id").
		Joins("LEFT JOIN study_plans ON study_plans.subject_id = subjects.id").
		Where("subjects.user_id = ?", userID).
		Order("subjects.updated_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *subjectRepo) Rename(ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID, name string, studiedAt time.Time) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Model(&types.Subject{}).
		Where("id = ? AND user_id = ?", subjectID, userID).
		Updates(map[string]any{"subject_name": name, "last_studied": studiedAt})
	return res.RowsAffected, res.Error
}

func (r *subjectRepo) Delete(ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", subjectID, userID).
		Delete(&types.Subject{})
	return res.RowsAffected, res.Error
}
