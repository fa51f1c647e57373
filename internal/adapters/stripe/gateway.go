// Package stripe adapts the Stripe API to ports.PaymentGateway. Stripe errors
// never leave this package untranslated.
package stripe

import (
	"context"
	"errors"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

// SessionAPI is the subset of the checkout session client the gateway uses.
type SessionAPI interface {
	New(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
	Get(id string, params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

// Gateway wraps Stripe Checkout and webhook verification.
type Gateway struct {
	sessions      SessionAPI
	webhookSecret string
}

var _ ports.PaymentGateway = (*Gateway)(nil)

// New creates a gateway bound to secretKey without touching the global stripe.Key.
func New(secretKey, webhookSecret string) *Gateway {
	return NewWithSessions(&session.Client{B: stripego.GetBackend(stripego.APIBackend), Key: secretKey}, webhookSecret)
}

func NewWithSessions(sessions SessionAPI, webhookSecret string) *Gateway {
	return &Gateway{sessions: sessions, webhookSecret: webhookSecret}
}

// CreateSession creates a one-off card payment session for the single report SKU.
func (g *Gateway) CreateSession(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		CustomerEmail:      stripego.String(req.Email),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency: stripego.String(req.Currency),
					ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripego.String(req.ProductName),
						Description: stripego.String("Detailed analysis and action plan for " + req.Domain),
						Metadata: map[string]string{
							domain.MetaAnalysisID: req.AnalysisID,
							domain.MetaDomain:     req.Domain,
						},
					},
					UnitAmount: stripego.Int64(req.AmountCents),
				},
				Quantity: stripego.Int64(1),
			},
		},
		SuccessURL: stripego.String(req.SuccessURL),
		CancelURL:  stripego.String(req.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata(domain.MetaAnalysisID, req.AnalysisID)
	params.AddMetadata(domain.MetaLeadID, req.LeadID)
	params.AddMetadata(domain.MetaEmail, req.Email)
	params.AddMetadata(domain.MetaDomain, req.Domain)

	cs, err := g.sessions.New(params)
	if err != nil {
		return domain.CheckoutSession{}, translate("stripe.CreateSession", err)
	}
	return domain.CheckoutSession{ID: cs.ID, URL: cs.URL}, nil
}

// VerifySession reports whether the session has been paid.
func (g *Gateway) VerifySession(ctx context.Context, sessionID string) (domain.SessionVerification, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	cs, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return domain.SessionVerification{}, translate("stripe.VerifySession", err)
	}
	return domain.SessionVerification{
		Paid:     cs.PaymentStatus == stripego.CheckoutSessionPaymentStatusPaid,
		Email:    sessionEmail(cs),
		Metadata: cs.Metadata,
	}, nil
}

func sessionEmail(cs *stripego.CheckoutSession) string {
	if cs.CustomerEmail != "" {
		return cs.CustomerEmail
	}
	if cs.CustomerDetails != nil && cs.CustomerDetails.Email != "" {
		return cs.CustomerDetails.Email
	}
	return cs.Metadata[domain.MetaEmail]
}

func translate(op string, err error) error {
	var se *stripego.Error
	if errors.As(err, &se) {
		if se.Code == stripego.ErrorCodeResourceMissing {
			return domain.NotFound(op, "checkout session not found")
		}
		if se.Type == stripego.ErrorTypeInvalidRequest {
			return &domain.Error{Kind: domain.ErrUpstream, Op: op, Msg: se.Msg, Err: err}
		}
	}
	return domain.Upstream(op, err)
}
