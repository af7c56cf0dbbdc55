package domain

import "errors"

// Account models a credential-store row. The email is the unique,
// case-sensitive identifier; the secret is only ever held as a bcrypt hash.
type Account struct {
	Email      string `json:"email"`
	SecretHash string `json:"-"`
	IsAdmin    bool   `json:"is_admin"`
}

var ErrDuplicateAccount = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
