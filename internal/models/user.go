package models

import "time"

// User is the sole persisted entity: identity plus payment status.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never leaves the server
	HasPaid      bool      `json:"has_paid"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session binds a client to a user id and the payment status cached at
// token-issue time. Dashboard access trusts the cached value; it is only
// refreshed from the store at login and payment success.
type Session struct {
	UserID  int  `json:"user_id"`
	HasPaid bool `json:"has_paid"`
}
