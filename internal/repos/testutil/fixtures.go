package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    email,
		Password: "hashed-pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSubject(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, name, level string) *types.Subject {
	tb.Helper()
	s := &types.Subject{
		ID:             uuid.New(),
		UserID:         userID,
		SubjectName:    name,
		EducationLevel: level,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed subject: %v", err)
	}
	return s
}

func SeedPlan(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, subjectID uuid.UUID) *types.StudyPlan {
	tb.Helper()
	p := &types.StudyPlan{
		ID:            uuid.New(),
		SubjectID:     subjectID,
		UserID:        userID,
		Summary:       "summary",
		Roadmap:       datatypes.JSON([]byte(`[]`)),
		QuizQuestions: datatypes.JSON([]byte(`[]`)),
		Source:        types.PlanSourceModel,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed plan: %v", err)
	}
	return p
}
