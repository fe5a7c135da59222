package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studyplan-backend/internal/repos/testutil"
	"github.com/yungbote/studyplan-backend/internal/types"
)

func TestSubjectRepo_DuplicateNameRejected(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewSubjectRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "subjects@example.com")
	testutil.SeedSubject(t, ctx, tx, user.ID, "Calculus", "College")

	dup := &types.Subject{
		ID:             uuid.New(),
		UserID:         user.ID,
		SubjectName:    "Calculus",
		EducationLevel: "High School",
	}
	if err := repo.Create(ctx, tx, dup); !IsDuplicateKey(err) {
		t.Fatalf("expected duplicate-key error for same (user, name), got %v", err)
	}

	// A different user may register the same subject name.
	other := testutil.SeedUser(t, ctx, tx, "subjects2@example.com")
	ok := &types.Subject{
		ID:             uuid.New(),
		UserID:         other.ID,
		SubjectName:    "Calculus",
		EducationLevel: "College",
	}
	if err := repo.Create(ctx, tx, ok); err != nil {
		t.Fatalf("create for other user: %v", err)
	}
}

func TestSubjectRepo_ListIncludesPlanID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewSubjectRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "list@example.com")
	withPlan := testutil.SeedSubject(t, ctx, tx, user.ID, "History", "High School")
	testutil.SeedSubject(t, ctx, tx, user.ID, "Geography", "High School")
	plan := testutil.SeedPlan(t, ctx, tx, user.ID, withPlan.ID)

	rows, err := repo.ListByUser(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(rows))
	}

	byName := map[string]SubjectWithPlan{}
	for _, row := range rows {
		byName[row.SubjectName] = row
	}
	if got := byName["History"].PlanID; got == nil || *got != plan.ID {
		t.Fatalf("History plan id = %v, want %v", got, plan.ID)
	}
	if got := byName["Geography"].PlanID; got != nil {
		t.Fatalf("Geography should have no plan, got %v", *got)
	}
}

func TestSubjectRepo_RenameAndDeleteScopedToOwner(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewSubjectRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "scope1@example.com")
	intruder := testutil.SeedUser(t, ctx, tx, "scope2@example.com")
	subject := testutil.SeedSubject(t, ctx, tx, owner.ID, "Latin", "College")

	if n, err := repo.Rename(ctx, tx, intruder.ID, subject.ID, "Greek", time.Now()); err != nil || n != 0 {
		t.Fatalf("foreign rename touched %d rows (err=%v)", n, err)
	}
	if n, err := repo.Rename(ctx, tx, owner.ID, subject.ID, "Greek", time.Now()); err != nil || n != 1 {
		t.Fatalf("owner rename touched %d rows (err=%v)", n, err)
	}

	if n, err := repo.Delete(ctx, tx, intruder.ID, subject.ID); err != nil || n != 0 {
		t.Fatalf("foreign delete touched %d rows (err=%v)", n, err)
	}
	if n, err := repo.Delete(ctx, tx, owner.ID, subject.ID); err != nil || n != 1 {
		t.Fatalf("owner delete touched %d rows (err=%v)", n, err)
	}
}
