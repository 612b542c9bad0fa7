package mailer

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// Message is a contact-form submission to relay to the operator.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Sender delivers a single message synchronously; both success and
// failure are reported to the caller.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

const sendTimeout = 15 * time.Second

// SMTPSender delivers contact messages over SMTP to a fixed operator
// address, with the submitter set as Reply-To.
type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	operator string
}

func NewSMTPSender(host string, port int, username, password, operator string) *SMTPSender {
	return &SMTPSender{
		dialer:   gomail.NewDialer(host, port, username, password),
		from:     username,
		operator: operator,
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.operator)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", fmt.Sprintf("Contact form: %s", msg.Name))
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body))

	// gomail has no context support; bound the send so a stuck SMTP
	// connection fails instead of hanging the request.
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send contact mail: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send contact mail: %w", err)
		}
		return nil
	}
}
