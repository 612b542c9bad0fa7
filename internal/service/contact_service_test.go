package service

import (
	"context"
	"errors"
	"testing"

	"paywall/internal/mailer"
)

type mockSender struct {
	err  error
	sent []mailer.Message
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestContactService_Send(t *testing.T) {
	sender := &mockSender{}
	svc := NewContactService(sender)

	err := svc.Send(context.Background(), "Alice", "a@x.com", "hello there")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 sent message, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.Name != "Alice" || msg.Email != "a@x.com" || msg.Body != "hello there" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestContactService_Send_MissingFieldsSendNothing(t *testing.T) {
	sender := &mockSender{}
	svc := NewContactService(sender)

	cases := []struct {
		name, email, message string
	}{
		{"", "a@x.com", "hi"},
		{"Alice", "", "hi"},
		{"Alice", "a@x.com", ""},
		{"Alice", "a@x.com", "   "},
	}
	for _, tc := range cases {
		err := svc.Send(context.Background(), tc.name, tc.email, tc.message)
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %+v, got %v", tc, err)
		}
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no mail for invalid input, got %d", len(sender.sent))
	}
}

func TestContactService_Send_DeliveryFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("smtp rejected")}
	svc := NewContactService(sender)

	err := svc.Send(context.Background(), "Alice", "a@x.com", "hello")
	if err == nil {
		t.Fatalf("expected delivery error, got nil")
	}
	if errors.Is(err, ErrMissingFields) {
		t.Fatalf("delivery failure misclassified as validation: %v", err)
	}
}
