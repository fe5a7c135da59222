package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	// PlanSourceModel marks a plan produced by the generation model.
	PlanSourceModel = "model"
	// PlanSourceFallback marks a plan synthesized locally after both
	// generation attempts failed validation.
	PlanSourceFallback = "fallback"
)

// StudyPlan holds the generated artifact for one subject. The unique index
// on subject_id makes "at most one plan per subject" a storage guarantee;
// a duplicate insert from a concurrent request surfaces as a duplicate-key
// error, never a second row.
type StudyPlan struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_study_plans_subject" json:"subject_id"`
	Subject       *Subject       `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubjectID;references:ID" json:"-"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Summary       string         `gorm:"not null;column:summary" json:"summary"`
	Roadmap       datatypes.JSON `gorm:"not null;column:roadmap" json:"roadmap"`
	QuizQuestions datatypes.JSON `gorm:"not null;column:quiz_questions" json:"quiz_questions"`
	Source        string         `gorm:"not null;column:source;default:model" json:"-"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
}

func (StudyPlan) TableName() string { return "study_plans" }
