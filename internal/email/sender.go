// Package email sends customer-facing notification email for receptionist
// lifecycle events.
package email

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"ringly_backend/platform/config"
)

// Sender delivers lifecycle notification email.
type Sender interface {
	// SendReceptionistLive tells the customer their receptionist is
	// answering calls.
	SendReceptionistLive(ctx context.Context, toEmail, businessName string) error
	// SendSubscriptionCancelled confirms the cancellation.
	SendSubscriptionCancelled(ctx context.Context, toEmail string) error
}

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a sender with the given SMTP credentials.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// SendReceptionistLive implements Sender.
func (s *SMTPSender) SendReceptionistLive(ctx context.Context, toEmail, businessName string) error {
	subject := fmt.Sprintf("Your AI receptionist for %s is live", businessName)
	body := fmt.Sprintf(`<p>Great news!</p>
<p>Your AI receptionist for <strong>%s</strong> is now live and answering calls.</p>
<p>You can review your configuration at any time from your dashboard.</p>`, businessName)
	return s.send(ctx, toEmail, subject, body)
}

// SendSubscriptionCancelled implements Sender.
func (s *SMTPSender) SendSubscriptionCancelled(ctx context.Context, toEmail string) error {
	body := `<p>Your subscription has been cancelled and your AI receptionist has been taken offline.</p>
<p>If this was a mistake, you can set up a new receptionist at any time.</p>`
	return s.send(ctx, toEmail, "Your subscription has been cancelled", body)
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct{}

// SendReceptionistLive implements Sender.
func (NoopSender) SendReceptionistLive(context.Context, string, string) error { return nil }

// SendSubscriptionCancelled implements Sender.
func (NoopSender) SendSubscriptionCancelled(context.Context, string) error { return nil }

// NewSender returns an SMTP sender when email is enabled, otherwise a noop.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(cfg)
}
