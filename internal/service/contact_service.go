package service

import (
	"context"
	"fmt"

	"paywall/internal/mailer"
)

// ContactService validates contact-form submissions and relays them to
// the operator mailbox.
type ContactService struct {
	mailer mailer.Sender
}

func NewContactService(m mailer.Sender) *ContactService {
	return &ContactService{mailer: m}
}

// Send requires all three fields; nothing is sent when validation fails.
func (s *ContactService) Send(ctx context.Context, name, email, message string) error {
	if anyBlank(name, email, message) {
		return ErrMissingFields
	}
	if err := s.mailer.Send(ctx, mailer.Message{Name: name, Email: email, Body: message}); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}
	return nil
}
