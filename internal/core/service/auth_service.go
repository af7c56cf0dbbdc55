package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentscreen/screening-api/internal/core/domain"
	"github.com/talentscreen/screening-api/internal/core/ports"
)

// AuthService implements signup and login against the credential store.
// Secrets are stored bcrypt-hashed; sessions are stateless HS256 tokens.
type AuthService struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:      email,
		SecretHash: string(hash),
		IsAdmin:    false,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("account created")
	return account, nil
}

// Login does not reveal whether the account or the secret was wrong: both
// cases collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.Find(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.SecretHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", email).Bool("is_admin", account.IsAdmin).Msg("login succeeded")
	return token, account, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"email":    account.Email,
		"is_admin": account.IsAdmin,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
