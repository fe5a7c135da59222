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

func newSubjectService(t *testing.T) (SubjectService, *gorm.DB) {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	return NewSubjectService(tx, log, repos.NewSubjectRepo(tx, log)), tx
}

func TestCreateSubjectDefaultsLevel(t *testing.T) {
	ctx := context.Background()
	svc, tx := newSubjectService(t)
	user := testutil.SeedUser(t, ctx, tx, "subjects@example.com")

	subject, err := svc.Create(ctx, user.ID, "  Linear Algebra ", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if subject.SubjectName != "Linear Algebra" {
		t.Fatalf("name not trimmed: %q", subject.SubjectName)
	}
	if subject.EducationLevel != DefaultEducationLevel {
		t.Fatalf("level %q, want %q", subject.EducationLevel, DefaultEducationLevel)
	}
}

func TestCreateSubjectRequiresName(t *testing.T) {
	ctx := context.Background()
	svc, tx := newSubjectService(t)
	user := testutil.SeedUser(t, ctx, tx, "blank@example.com")

	if _, err := svc.Create(ctx, user.ID, "   ", "College"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestCreateSubjectDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	svc, tx := newSubjectService(t)
	user := testutil.SeedUser(t, ctx, tx, "dupsubj@example.com")

	if _, err := svc.Create(ctx, user.ID, "Chemistry", "College"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(ctx, user.ID, "Chemistry", "High School"); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestRenameAndDeleteScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc, tx := newSubjectService(t)
	owner := testutil.SeedUser(t, ctx, tx, "owner@example.com")
	stranger := testutil.SeedUser(t, ctx, tx, "stranger@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, owner.ID, "Physics", "College")

	if err := svc.Rename(ctx, stranger.ID, subject.ID, "Hijacked"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign rename: want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, stranger.ID, subject.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete: want ErrNotFound, got %v", err)
	}

	if err := svc.Rename(ctx, owner.ID, subject.ID, "Quantum Physics"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	rows, err := svc.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].SubjectName != "Quantum Physics" {
		t.Fatalf("unexpected rows after rename: %+v", rows)
	}

	if err := svc.Delete(ctx, owner.ID, subject.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, owner.ID, subject.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestRenameMissingSubject(t *testing.T) {
	ctx := context.Background()
	svc, tx := newSubjectService(t)
	user := testutil.SeedUser(t, ctx, tx, "missing@example.com")

	if err := svc.Rename(ctx, user.ID, uuid.New(), "Anything"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
