package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paywall/internal/models"
	"paywall/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

// Domain errors for auth flows.
var (
	// ErrEmailTaken reports a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and session tokens.
type AuthService struct {
	users  repository.Users
	secret []byte
}

func NewAuthService(users repository.Users, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

// Register validates input, hashes the password and creates a new user
// with has_paid=false. A duplicate email surfaces as ErrEmailTaken; the
// store's unique constraint is the only arbiter, so concurrent registrations
// of the same email cannot both succeed.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (int, error) {
	if anyBlank(name, email, password) {
		return 0, ErrMissingFields
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	id, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// Login verifies credentials and issues a session token carrying the
// user's id and current payment status. Unknown email and wrong password
// return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.IssueSession(u.ID, u.HasPaid)
}

// Claims defines the session JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int  `json:"user_id"`
	HasPaid bool `json:"has_paid"`
}

// IssueSession signs a fresh session token. Payment success calls this
// again with hasPaid=true to refresh the client's session.
func (s *AuthService) IssueSession(userID int, hasPaid bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:  userID,
		HasPaid: hasPaid,
	})
	return token.SignedString(s.secret)
}

// ParseToken parses a session token and returns the session it carries.
func (s *AuthService) ParseToken(accessToken string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return models.Session{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Session{}, ErrInvalidToken
	}

	return models.Session{UserID: claims.UserID, HasPaid: claims.HasPaid}, nil
}

// helper: true if any field is empty after trimming
func anyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
