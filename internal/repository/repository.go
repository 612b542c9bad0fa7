package repository

import (
	"context"
	"database/sql"
	"errors"

	"paywall/internal/models"
)

// ErrDuplicateEmail reports an insert that violated the unique email
// constraint. Uniqueness is enforced by the store itself, never by a
// check-then-insert in application code.
var ErrDuplicateEmail = errors.New("email already registered")

// Users persists user identity and payment status.
type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	MarkPaid(ctx context.Context, userID int) error
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
