package ports

import (
	"context"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

// AuthService gates access to the intake pipeline and the ranking view.
type AuthService interface {
	// Signup creates a non-admin account for email.
	Signup(ctx context.Context, email, password string) (*domain.Account, error)
	// Login verifies the claimed secret and issues a session token carrying
	// the identifier and the admin flag.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
