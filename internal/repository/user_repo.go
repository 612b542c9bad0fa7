package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"paywall/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`

	selectUserByEmailSQL = `SELECT id, name, email, password_hash, has_paid, created_at FROM users WHERE email = $1`

	markPaidSQL = `UPDATE users SET has_paid = TRUE WHERE id = $1`
)

const uniqueViolationCode = "23505"

// Create inserts a new user with has_paid=false and returns its ID.
// A unique-constraint violation on email maps to ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, insertUserSQL, name, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	return id, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.HasPaid, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

// MarkPaid flips has_paid to true. The write is idempotent: racing
// callbacks for the same user both land on the same target state.
func (r *UserRepository) MarkPaid(ctx context.Context, userID int) error {
	res, err := r.db.ExecContext(ctx, markPaidSQL, userID)
	if err != nil {
		return fmt.Errorf("mark user %d paid: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %d: %w", userID, err)
	}
	if n == 0 {
		return fmt.Errorf("mark user %d paid: no such user", userID)
	}
	return nil
}
