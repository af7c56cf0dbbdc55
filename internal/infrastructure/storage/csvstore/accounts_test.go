package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

func newTestAccountStore(t *testing.T) (*AccountStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.csv")
	store, err := NewAccountStore(path, "admin@admin.com", "$2a$10$hash")
	if err != nil {
		t.Fatalf("NewAccountStore failed: %v", err)
	}
	return store, path
}

func TestAccountStore_SeedsAdmin(t *testing.T) {
	store, path := newTestAccountStore(t)

	admin, err := store.Find(context.Background(), "admin@admin.com")
	if err != nil {
		t.Fatalf("seeded admin not found: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatalf("seeded account must be admin")
	}
	if admin.SecretHash != "$2a$10$hash" {
		t.Fatalf("unexpected hash: %q", admin.SecretHash)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "Email,Password,IsAdmin" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestAccountStore_ReopenDoesNotReseed(t *testing.T) {
	store, path := newTestAccountStore(t)

	if err := store.Create(context.Background(), &domain.Account{Email: "u@x.com", SecretHash: "h"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reopened, err := NewAccountStore(path, "admin@admin.com", "other-hash")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if _, err := reopened.Find(context.Background(), "u@x.com"); err != nil {
		t.Fatalf("existing row lost after reopen: %v", err)
	}

	admin, err := reopened.Find(context.Background(), "admin@admin.com")
	if err != nil {
		t.Fatalf("admin lost after reopen: %v", err)
	}
	if admin.SecretHash != "$2a$10$hash" {
		t.Fatalf("reopen must not overwrite the admin row, got %q", admin.SecretHash)
	}
}

func TestAccountStore_CreateAndFind(t *testing.T) {
	store, _ := newTestAccountStore(t)

	account := &domain.Account{Email: "eve@example.com", SecretHash: "hashed", IsAdmin: false}
	if err := store.Create(context.Background(), account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := store.Find(context.Background(), "eve@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.SecretHash != "hashed" || found.IsAdmin {
		t.Fatalf("unexpected account: %+v", found)
	}
}

func TestAccountStore_CreateDuplicate(t *testing.T) {
	store, path := newTestAccountStore(t)

	account := &domain.Account{Email: "dup@example.com", SecretHash: "h1"}
	if err := store.Create(context.Background(), account); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := store.Create(context.Background(), &domain.Account{Email: "dup@example.com", SecretHash: "h2"}); err != domain.ErrDuplicateAccount {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}

	raw, _ := os.ReadFile(path)
	if got := strings.Count(string(raw), "dup@example.com"); got != 1 {
		t.Fatalf("duplicate create must not append, found %d rows", got)
	}
}

func TestAccountStore_FindMissing(t *testing.T) {
	store, _ := newTestAccountStore(t)

	if _, err := store.Find(context.Background(), "nobody@example.com"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
