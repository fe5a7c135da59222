package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/studyplan-backend/internal/repos"
	"github.com/yungbote/studyplan-backend/internal/repos/testutil"
	"github.com/yungbote/studyplan-backend/internal/sessions"
)

func newAuthService(t *testing.T) (AuthService, *sessions.MemoryStore) {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	store := sessions.NewMemoryStore()
	return NewAuthService(tx, log, repos.NewUserRepo(tx, log), store), store
}

func TestRegisterHashesAndNormalizes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, "  Ada Lovelace ", "Ada@Example.COM", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Name != "Ada Lovelace" {
		t.Fatalf("name not trimmed: %q", user.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ng!pass")); err != nil {
		t.Fatalf("stored password does not verify: %v", err)
	}
}

func TestRegisterAggregatesValidationProblems(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "X", "not-an-email", "weak")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"name", "email", "password"} {
		if !strings.Contains(strings.ToLower(msg), want) {
			t.Fatalf("error %q missing %q problem", msg, want)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	if _, err := svc.Register(ctx, "Ada Lovelace", "dup@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(ctx, "Grace Hopper", "DUP@example.com", "An0ther!pass")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestLoginCreatesSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	if _, err := svc.Register(ctx, "Ada Lovelace", "login@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, sess, err := svc.Login(ctx, "Login@Example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("empty session token")
	}
	if sess.UserID != user.ID {
		t.Fatalf("session user %s != %s", sess.UserID, user.ID)
	}

	resolved, err := svc.ResolveSession(ctx, sess.Token)
	if err != nil {
		t.Fatalf("ResolveSession: %v", err)
	}
	if resolved.UserID != user.ID {
		t.Fatalf("resolved user %s != %s", resolved.UserID, user.ID)
	}
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	if _, err := svc.Register(ctx, "Ada Lovelace", "uniform@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "Str0ng!pass")
	_, _, errWrongPw := svc.Login(ctx, "uniform@example.com", "Wr0ng!pass")

	if !errors.Is(errUnknown, ErrUnauthorized) || !errors.Is(errWrongPw, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized for both, got %v / %v", errUnknown, errWrongPw)
	}
	// The two failure modes must be indistinguishable to the client.
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("credential errors differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	if _, err := svc.Register(ctx, "Ada Lovelace", "logout@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, sess, err := svc.Login(ctx, "logout@example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.ResolveSession(ctx, sess.Token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized after logout, got %v", err)
	}

	// Logging out without a token is a no-op, not an error.
	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("Logout with empty token: %v", err)
	}
}

func TestCurrentUserTouchesLastLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	user, err := svc.Register(ctx, "Ada Lovelace", "touch@example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.LastLogin != nil {
		t.Fatal("LastLogin set before any visit")
	}

	got, err := svc.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if got.LastLogin == nil {
		t.Fatal("LastLogin not touched")
	}
}
