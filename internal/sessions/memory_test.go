package sessions

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	sess, err := store.Create(ctx, userID, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("empty token")
	}

	got, err := store.Get(ctx, sess.Token)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != userID || got.Username != "Ada Lovelace" {
		t.Fatalf("got %+v", got)
	}

	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreDistinctTokens(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	a, _ := store.Create(ctx, userID, "Ada Lovelace")
	b, _ := store.Create(ctx, userID, "Ada Lovelace")
	if a.Token == b.Token {
		t.Fatal("two sessions share a token")
	}
}
