// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders bodies
// from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"fmt"

	"github.com/deppfellow/lazy-virtuoso/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

const senderName = "The Lazy Virtuoso"

// sender is the part of the Resend emails service the client calls.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails sender
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client with the API key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return newClient(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Integration.EmailFrom, logger)
}

func newClient(emails sender, from string, logger *zerolog.Logger) *Client {
	return &Client{
		emails: emails,
		from:   from,
		logger: logger,
	}
}

// Render executes the named template with data.
func Render(templateName Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName.file(), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data any) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", senderName, c.from),
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := c.emails.Send(params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Str("email_id", sent.Id).
		Msg("email accepted by provider")

	return nil
}
