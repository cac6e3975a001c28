package email

import (
	"context"
	"strings"
)

// SendWelcomeEmail sends a welcome email to a newly registered user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, name string) error {
	data := map[string]string{
		"UserFirstName": FirstName(name),
		"UserEmail":     to,
	}

	return c.SendEmail(ctx, to, "Welcome to LightBnB!", TemplateWelcome, data)
}

// FirstName returns the first word of a full name, or the whole trimmed
// name when it has a single word.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
