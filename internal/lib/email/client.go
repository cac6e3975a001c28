// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// bodies from HTML templates embedded in the binary.
package email

import (
	"context"
	"fmt"

	"github.com/lightbnb/backend/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

const sender = "LightBnB <onboarding@resend.dev>"

// Client wraps the Resend client and a logger.
type Client struct {
	// client is nil when no API key is configured; sends are then skipped.
	client *resend.Client
	logger *zerolog.Logger
}

// NewClient creates an email Client from the Resend key in cfg.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{logger: logger}
	if cfg.Integration.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Integration.ResendAPIKey)
	}
	return c
}

// Enabled reports whether emails are actually delivered.
func (c *Client) Enabled() bool {
	return c.client != nil
}

// SendEmail renders templateName with data and sends it to a single
// recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data map[string]string) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}

	if !c.Enabled() {
		c.logger.Warn().
			Str("template", string(templateName)).
			Str("to", to).
			Msg("email delivery disabled, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    sender,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
