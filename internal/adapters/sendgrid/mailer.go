// Package sendgrid sends transactional email through the SendGrid v3 API.
package sendgrid

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

// Client is the part of the SendGrid client the mailer needs.
type Client interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type Mailer struct {
	client    Client
	fromName  string
	fromEmail string
}

var _ ports.Mailer = (*Mailer)(nil)

func New(apiKey, fromName, fromEmail string) *Mailer {
	return NewWithClient(sg.NewSendClient(apiKey), fromName, fromEmail)
}

func NewWithClient(client Client, fromName, fromEmail string) *Mailer {
	return &Mailer{client: client, fromName: fromName, fromEmail: fromEmail}
}

func (m *Mailer) Send(ctx context.Context, msg ports.EmailMessage) error {
	if msg.To == "" {
		return domain.Validation("sendgrid.Send", "recipient is required")
	}
	message := buildMessage(mail.NewEmail(m.fromName, m.fromEmail), msg)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return domain.Upstream("sendgrid.Send", err)
	}
	// SendGrid answers 202 on accept; anything outside 2xx is a rejection.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Upstream("sendgrid.Send", fmt.Errorf("status %d: %s", resp.StatusCode, resp.Body))
	}
	return nil
}

func buildMessage(from *mail.Email, msg ports.EmailMessage) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	message.AddPersonalizations(p)

	if msg.Text != "" {
		message.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	message.AddContent(mail.NewContent("text/html", msg.HTML))
	for _, a := range msg.Attachments {
		message.AddAttachment(buildAttachment(a))
	}
	return message
}

func buildAttachment(a ports.Attachment) *mail.Attachment {
	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(a.Content))
	attachment.SetType(a.ContentType)
	attachment.SetFilename(a.Filename)
	attachment.SetDisposition("attachment")
	return attachment
}
