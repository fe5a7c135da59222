package types

import (
	"time"

	"github.com/google/uuid"
)

// Subject is unique per (user_id, subject_name); duplicate creations are
// rejected, not merged.
type Subject struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_subjects_user_name" json:"user_id"`
	User           *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	SubjectName    string     `gorm:"not null;column:subject_name;uniqueIndex:idx_subjects_user_name" json:"subject_name"`
	EducationLevel string     `gorm:"not null;column:education_level" json:"education_level"`
	LastStudied    *time.Time `gorm:"column:last_studied" json:"last_studied,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

func (Subject) TableName() string { return "subjects" }
