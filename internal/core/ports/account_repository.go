package ports

import (
	"context"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

// AccountRepository defines persistence for credential-store rows. The store
// is append-only: accounts are never updated or deleted.
type AccountRepository interface {
	// Find returns the first account matching email, or ErrAccountNotFound.
	Find(ctx context.Context, email string) (*domain.Account, error)
	// Create appends a new account. Returns ErrDuplicateAccount when the
	// email is already taken.
	Create(ctx context.Context, account *domain.Account) error
}
