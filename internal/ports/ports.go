package ports

import (
	"context"
	"time"

	"readiness/internal/domain"
)

// PaymentGateway wraps the external payment provider.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error)
	VerifySession(ctx context.Context, sessionID string) (domain.SessionVerification, error)
	// ParseEvent authenticates payload against signature before decoding it.
	ParseEvent(payload []byte, signature string) (domain.PaymentEvent, error)
}

// Renderer turns an analysis snapshot into a report document.
type Renderer interface {
	Render(analysis domain.Analysis, email string, generatedAt time.Time) ([]byte, error)
}

// ObjectStore persists binary objects and returns a public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}

// Attachment is a file sent with an email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Mailer sends email through an external transport.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// ReportEmail is the content of a report delivery email.
type ReportEmail struct {
	To           string
	Domain       string
	OverallScore int
	CheckCount   int
	PdfURL       *string
	Filename     string
	Document     []byte
}

// Delivery stores rendered documents and emails them to recipients.
type Delivery interface {
	Store(ctx context.Context, key string, document []byte) (url string, err error)
	SendReport(ctx context.Context, email ReportEmail) error
}
