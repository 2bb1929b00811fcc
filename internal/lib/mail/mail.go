// Package mail sends the contact form notifications over SMTP.
package mail

import (
	"context"
	"debaren/internal/config"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Client delivers messages through the configured SMTP relay.
type Client struct {
	smtp *gomail.Client
}

func New(cfg config.Mail) (*Client, error) {
	const op = "mail.New"

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	c, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Client{smtp: c}, nil
}

// Send opens one connection for all msgs.
func (c *Client) Send(ctx context.Context, msgs ...*gomail.Msg) error {
	if err := c.smtp.DialAndSendWithContext(ctx, msgs...); err != nil {
		return fmt.Errorf("mail.Client.Send: %w", err)
	}
	return nil
}
