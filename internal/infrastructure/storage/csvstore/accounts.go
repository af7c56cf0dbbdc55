// Package csvstore implements the credential store and the submission
// ledger as flat CSV files: header row first, records appended and never
// rewritten. Each store serializes its read-check-then-append sequences
// behind a single mutex so concurrent requests cannot race the append-only
// invariants.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

var accountsHeader = []string{"Email", "Password", "IsAdmin"}

// AccountStore is a CSV-backed ports.AccountRepository. The Password column
// holds a bcrypt hash, never a raw secret.
type AccountStore struct {
	path string
	mu   sync.Mutex
}

// NewAccountStore opens (or creates) the store at path. A fresh store is
// seeded with the header and a single administrator row.
func NewAccountStore(path, adminEmail, adminSecretHash string) (*AccountStore, error) {
	s := &AccountStore{path: path}

	if _, err := os.Stat(path); err == nil {
		return s, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat account store: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create account store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(accountsHeader); err != nil {
		return nil, err
	}
	if err := w.Write([]string{adminEmail, adminSecretHash, "1"}); err != nil {
		return nil, err
	}
	w.Flush()
	return s, w.Error()
}

// Find scans rows in order and returns the first account matching email.
func (s *AccountStore) Find(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(email)
}

// Create appends a new row. The duplicate check and the append happen under
// the same lock, so two concurrent signups cannot both pass the check.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findLocked(account.Email); err == nil {
		return domain.ErrDuplicateAccount
	} else if err != domain.ErrAccountNotFound {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open account store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	isAdmin := "0"
	if account.IsAdmin {
		isAdmin = "1"
	}
	if err := w.Write([]string{account.Email, account.SecretHash, isAdmin}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *AccountStore) findLocked(email string) (*domain.Account, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open account store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// skip header
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil, domain.ErrAccountNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("read account store: %w", err)
		}
		if len(row) < 3 {
			continue
		}
		if row[0] == email {
			return &domain.Account{
				Email:      row[0],
				SecretHash: row[1],
				IsAdmin:    row[2] == "1",
			}, nil
		}
	}
}
