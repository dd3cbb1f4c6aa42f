package email

import (
	"context"
	"fmt"
)

// SendContactMessage relays a contact-form message to the portfolio inbox.
// Replies go straight to the visitor.
func (c *Client) SendContactMessage(ctx context.Context, name, from, message string) error {
	return c.Send(ctx, Message{
		To:       c.inbox,
		ReplyTo:  from,
		Subject:  fmt.Sprintf("New message from %s", name),
		Template: TemplateContact,
		Data: map[string]string{
			"Name":    name,
			"Email":   from,
			"Message": message,
		},
	})
}

// SendContactAcknowledgement thanks a visitor for their message.
func (c *Client) SendContactAcknowledgement(ctx context.Context, to, name string) error {
	return c.Send(ctx, Message{
		To:       to,
		Subject:  "Thanks for reaching out",
		Template: TemplateContactAck,
		Data: map[string]string{
			"Name": name,
		},
	})
}
