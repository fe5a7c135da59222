package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplan-backend/internal/repos"
	"github.com/yungbote/studyplan-backend/internal/repos/testutil"
)

func newQuizService(t *testing.T) (QuizService, *gorm.DB) {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	return NewQuizService(tx, log,
		repos.NewStudyPlanRepo(tx, log),
		repos.NewQuizAttemptRepo(tx, log)), tx
}

func TestSubmitThenResult(t *testing.T) {
	ctx := context.Background()
	svc, tx := newQuizService(t)
	user := testutil.SeedUser(t, ctx, tx, "quiz@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, user.ID, "Algebra", "College")
	plan := testutil.SeedPlan(t, ctx, tx, user.ID, subject.ID)

	answers := map[int]string{0: "A) 2", 1: "C) 4"}
	attempt, err := svc.Submit(ctx, user.ID, plan.ID, answers, 7, 10)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempt.Score != 7 || attempt.TotalQuestions != 10 {
		t.Fatalf("attempt %+v", attempt)
	}

	result, err := svc.Result(ctx, user.ID, plan.ID)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if !result.Attempted {
		t.Fatal("Attempted false after submit")
	}
	if result.Score != 7 || result.TotalQuestions != 10 {
		t.Fatalf("result %+v", result)
	}
	if result.Answers[1] != "C) 4" {
		t.Fatalf("answers %+v", result.Answers)
	}
	if result.SubmittedAt == nil {
		t.Fatal("SubmittedAt missing")
	}
}

func TestSubmitSecondAttemptConflicts(t *testing.T) {
	ctx := context.Background()
	svc, tx := newQuizService(t)
	user := testutil.SeedUser(t, ctx, tx, "quiz-dup@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, user.ID, "Calculus", "College")
	plan := testutil.SeedPlan(t, ctx, tx, user.ID, subject.ID)

	if _, err := svc.Submit(ctx, user.ID, plan.ID, map[int]string{0: "A"}, 3, 10); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	_, err := svc.Submit(ctx, user.ID, plan.ID, map[int]string{0: "B"}, 10, 10)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	// First submission stays on record.
	result, err := svc.Result(ctx, user.ID, plan.ID)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.Score != 3 {
		t.Fatalf("score %d, want original 3", result.Score)
	}
}

func TestSubmitForeignPlan(t *testing.T) {
	ctx := context.Background()
	svc, tx := newQuizService(t)
	owner := testutil.SeedUser(t, ctx, tx, "quiz-owner@example.com")
	stranger := testutil.SeedUser(t, ctx, tx, "quiz-stranger@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, owner.ID, "Geometry", "College")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, subject.ID)

	if _, err := svc.Submit(ctx, stranger.ID, plan.ID, map[int]string{0: "A"}, 1, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign submit: want ErrNotFound, got %v", err)
	}
	if _, err := svc.Result(ctx, stranger.ID, plan.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign result: want ErrNotFound, got %v", err)
	}
}

func TestSubmitValidatesScore(t *testing.T) {
	ctx := context.Background()
	svc, tx := newQuizService(t)
	user := testutil.SeedUser(t, ctx, tx, "quiz-score@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, user.ID, "Statistics", "College")
	plan := testutil.SeedPlan(t, ctx, tx, user.ID, subject.ID)

	cases := []struct {
		name         string
		score, total int
	}{
		{"negative score", -1, 10},
		{"zero total", 5, 0},
		{"score above total", 11, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(ctx, user.ID, plan.ID, nil, tc.score, tc.total); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestResultBeforeSubmit(t *testing.T) {
	ctx := context.Background()
	svc, tx := newQuizService(t)
	user := testutil.SeedUser(t, ctx, tx, "quiz-none@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, user.ID, "Topology", "College")
	plan := testutil.SeedPlan(t, ctx, tx, user.ID, subject.ID)

	result, err := svc.Result(ctx, user.ID, plan.ID)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.Attempted {
		t.Fatal("Attempted true with no submission")
	}

	if _, err := svc.Result(ctx, user.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing plan: want ErrNotFound, got %v", err)
	}
}
