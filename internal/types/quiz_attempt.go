package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttempt records one submission per (user, plan). The composite unique
// index rejects a second submission at the storage layer; the first row is
// never overwritten.
type QuizAttempt struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_quiz_attempts_user_plan" json:"user_id"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	PlanID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_quiz_attempts_user_plan" json:"plan_id"`
	Plan           *StudyPlan     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"-"`
	Answers        datatypes.JSON `gorm:"not null;column:answers" json:"answers"`
	Score          int            `gorm:"not null;column:score" json:"score"`
	TotalQuestions int            `gorm:"not null;column:total_questions" json:"total_questions"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
