package service

import (
	"context"
	"fmt"
	"time"

	"paywall/internal/gateway"
	"paywall/internal/repository"

	"github.com/google/uuid"
)

// The fee is a fixed server-side constant so the client can never tamper
// with the price. Amount is in paise (smallest INR unit).
const (
	feeAmountPaise = 49900 // ₹499
	feeCurrency    = "INR"
)

// PaymentService creates orders and confirms verified callbacks.
type PaymentService struct {
	users   repository.Users
	gateway gateway.OrderCreator
	secret  string // shared with the gateway; signs callback payloads
}

func NewPaymentService(users repository.Users, gw gateway.OrderCreator, secret string) *PaymentService {
	return &PaymentService{users: users, gateway: gw, secret: secret}
}

// CreateOrder asks the gateway for a fixed-fee order tagged with a fresh
// receipt id and returns the gateway's order object verbatim. Gateway
// failures are surfaced as-is; there is no automatic retry.
func (s *PaymentService) CreateOrder(ctx context.Context) (gateway.Order, error) {
	order, err := s.gateway.CreateOrder(ctx, feeAmountPaise, feeCurrency, newReceiptID())
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	return order, nil
}

// Confirm verifies the callback signature and only then marks the user as
// paid. The signature check strictly precedes the store write; if the
// write fails the caller keeps its unpaid session, so the visible state
// stays consistent with the store.
func (s *PaymentService) Confirm(ctx context.Context, userID int, orderID, paymentID, signature string) error {
	if err := verifySignature(s.secret, orderID, paymentID, signature); err != nil {
		return err
	}
	if err := s.users.MarkPaid(ctx, userID); err != nil {
		return fmt.Errorf("persist payment: %w", err)
	}
	return nil
}

// newReceiptID tags an order for reconciliation. Not security-relevant,
// just unique enough to find the order later.
func newReceiptID() string {
	return fmt.Sprintf("rcpt_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
}
