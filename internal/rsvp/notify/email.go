package notify

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"gopkg.in/gomail.v2"
)

// Sender is the part of *gomail.Dialer the EmailNotifier needs.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// EmailNotifier sends email-channel notifications over SMTP.
type EmailNotifier struct {
	sender Sender
	from   string
}

func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &EmailNotifier{
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// NewEmailNotifierWithSender is used with a non-SMTP Sender.
func NewEmailNotifierWithSender(s Sender, from string) *EmailNotifier {
	return &EmailNotifier{sender: s, from: from}
}

func (e *EmailNotifier) Notify(ctx context.Context, n domain.Notification) error {
	if n.Channel != domain.ChannelEmail || n.To == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", e.from)
	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/plain", n.Body)

	if err := e.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %s email: %w", n.Kind, err)
	}
	return nil
}
