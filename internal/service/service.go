package service

import (
	"context"
	"errors"

	"paywall/internal/gateway"
	"paywall/internal/mailer"
	"paywall/internal/models"
	"paywall/internal/repository"
)

// ErrMissingFields is returned when a required input field is empty.
var ErrMissingFields = errors.New("all fields are required")

// Authorization drives the account state machine: registration, login and
// session tokens.
type Authorization interface {
	Register(ctx context.Context, name, email, password string) (int, error)
	Login(ctx context.Context, email, password string) (string, error)
	IssueSession(userID int, hasPaid bool) (string, error)
	ParseToken(accessToken string) (models.Session, error)
}

// Payment creates fixed-fee orders and confirms payment callbacks after
// signature verification.
type Payment interface {
	CreateOrder(ctx context.Context) (gateway.Order, error)
	Confirm(ctx context.Context, userID int, orderID, paymentID, signature string) error
}

// Contact relays contact-form submissions to the operator mailbox.
type Contact interface {
	Send(ctx context.Context, name, email, message string) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Payment
	Contact
}

// Deps carries everything the services need: the repository layer, the
// external collaborators and the two secrets (session signing key and the
// gateway shared secret).
type Deps struct {
	Repos         *repository.Repository
	Gateway       gateway.OrderCreator
	Mailer        mailer.Sender
	SessionSecret string
	GatewaySecret string
}

func NewService(deps Deps) *Service {
	return &Service{
		Authorization: NewAuthService(deps.Repos.Users, deps.SessionSecret),
		Payment:       NewPaymentService(deps.Repos.Users, deps.Gateway, deps.GatewaySecret),
		Contact:       NewContactService(deps.Mailer),
	}
}
