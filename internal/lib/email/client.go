// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// email bodies from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFiles embed.FS

// sender is the part of the Resend emails API this client uses.
type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails    sender
	from      string
	inbox     string
	templates *template.Template
	logger    *zerolog.Logger
}

// NewClient creates an email Client from the integration config.
func NewClient(cfg *config.IntegrationConfig, logger *zerolog.Logger) *Client {
	return newClient(resend.NewClient(cfg.ResendAPIKey).Emails, cfg, logger)
}

func newClient(emails sender, cfg *config.IntegrationConfig, logger *zerolog.Logger) *Client {
	return &Client{
		emails:    emails,
		from:      cfg.EmailFrom,
		inbox:     cfg.ContactInbox,
		templates: template.Must(template.ParseFS(templateFiles, "templates/*.html")),
		logger:    logger,
	}
}

// Message is one outgoing email.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	Template Template
	Data     map[string]string
}

// Send renders the message template and sends it through Resend.
func (c *Client) Send(ctx context.Context, msg Message) error {
	var body bytes.Buffer
	if err := c.templates.ExecuteTemplate(&body, msg.Template.file(), msg.Data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", msg.Template)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    body.String(),
		ReplyTo: msg.ReplyTo,
	}

	sent, err := c.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("template", string(msg.Template)).
		Str("email_id", sent.Id).
		Msg("email sent")

	return nil
}
