package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Find(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	if _, exists := r.accounts[account.Email]; exists {
		return domain.ErrDuplicateAccount
	}
	r.accounts[account.Email] = cloneAccount(account)
	return nil
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	account, err := svc.Signup(context.Background(), "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if account == nil {
		t.Fatalf("expected account, got nil")
	}
	if account.SecretHash == "pass123" {
		t.Fatalf("expected secret to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.SecretHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match secret: %v", err)
	}
	if account.IsAdmin {
		t.Fatalf("signup must create non-admin accounts")
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "a@a.com", "pass"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "a@a.com", "pass2"); err != domain.ErrDuplicateAccount {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected exactly one stored account, got %d", len(repo.accounts))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	repo.accounts["carol@example.com"] = &domain.Account{
		Email:      "carol@example.com",
		SecretHash: string(hash),
		IsAdmin:    true,
	}

	token, account, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || !account.IsAdmin {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if claims["is_admin"] != true {
		t.Fatalf("expected is_admin claim, got %v", claims["is_admin"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	// absence must be indistinguishable from a wrong secret
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
