package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/userboard/internal/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := &domain.User{Username: "alice", Email: "a@b.com", Phone: "+1234567890", Website: "cipher"}
	if err := db.Users().Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected server-assigned id")
	}

	got, err := db.Users().Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Username != "alice" || got.Website != "cipher" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepository_List_ExactVsSubstring(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "alicia", "bob"} {
		if err := db.Users().Create(ctx, &domain.User{Username: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	// Substring match by default.
	users, err := db.Users().List(ctx, domain.ListOptions{
		Filters: []domain.Filter{{Field: "username", Value: "ali"}},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 substring matches, got %d", len(users))
	}

	// Exact match with the flag.
	users, err = db.Users().List(ctx, domain.ListOptions{
		Filters: []domain.Filter{{Field: "username", Value: "alice", Exact: true}},
	})
	if err != nil {
		t.Fatalf("List exact: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("expected exactly alice, got %+v", users)
	}
}

func TestUserRepository_List_WildcardsMatchLiterally(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "100%_sure", "under_score"} {
		if err := db.Users().Create(ctx, &domain.User{Username: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	// A lone % is a literal character, not match-everything.
	users, err := db.Users().List(ctx, domain.ListOptions{
		Filters: []domain.Filter{{Field: "username", Value: "%"}},
	})
	if err != nil {
		t.Fatalf("List %%: %v", err)
	}
	if len(users) != 1 || users[0].Username != "100%_sure" {
		t.Fatalf("expected only the literal %% record, got %+v", users)
	}

	// Same for underscore.
	users, err = db.Users().List(ctx, domain.ListOptions{
		Filters: []domain.Filter{{Field: "username", Value: "r_s"}},
	})
	if err != nil {
		t.Fatalf("List _: %v", err)
	}
	if len(users) != 1 || users[0].Username != "under_score" {
		t.Fatalf("expected only the literal _ record, got %+v", users)
	}
}

func TestUserRepository_List_UnknownFieldRejected(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().List(context.Background(), domain.ListOptions{
		Filters: []domain.Filter{{Field: "password", Value: "x"}},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserRepository_DeleteTwice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := &domain.User{Username: "gone"}
	if err := db.Users().Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Users().Delete(ctx, u.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := db.Users().Delete(ctx, u.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
