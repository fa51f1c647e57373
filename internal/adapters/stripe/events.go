package stripe

import (
	"encoding/json"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"readiness/internal/domain"
)

// ParseEvent verifies the Stripe-Signature header against the raw body and
// narrows the event into a domain.PaymentEvent. Events signed for another API
// version are accepted; only the fields read below matter.
func (g *Gateway) ParseEvent(payload []byte, signature string) (domain.PaymentEvent, error) {
	if signature == "" {
		return nil, domain.InvalidSignature("stripe.ParseEvent", nil)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, domain.InvalidSignature("stripe.ParseEvent", err)
	}
	header := domain.EventHeader{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return domain.OtherEvent{EventHeader: header}, nil
	}

	switch event.Type {
	case stripego.EventTypeCheckoutSessionCompleted:
		var cs stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, domain.Validation("stripe.ParseEvent", "malformed checkout session")
		}
		ev := domain.CheckoutCompleted{
			EventHeader: header,
			SessionID:   cs.ID,
			AnalysisID:  cs.Metadata[domain.MetaAnalysisID],
			LeadID:      cs.Metadata[domain.MetaLeadID],
			Email:       cs.Metadata[domain.MetaEmail],
			AmountTotal: cs.AmountTotal,
			Currency:    string(cs.Currency),
		}
		if ev.Email == "" {
			ev.Email = sessionEmail(&cs)
		}
		if cs.PaymentIntent != nil {
			ev.PaymentIntentID = cs.PaymentIntent.ID
		}
		return ev, nil

	case stripego.EventTypeCheckoutSessionExpired:
		var cs stripego.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, domain.Validation("stripe.ParseEvent", "malformed checkout session")
		}
		return domain.CheckoutExpired{EventHeader: header, SessionID: cs.ID}, nil

	case stripego.EventTypeChargeRefunded:
		var ch stripego.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return nil, domain.Validation("stripe.ParseEvent", "malformed charge")
		}
		ev := domain.ChargeRefunded{EventHeader: header, ChargeID: ch.ID}
		if ch.PaymentIntent != nil {
			ev.PaymentIntentID = ch.PaymentIntent.ID
		}
		return ev, nil
	}
	return domain.OtherEvent{EventHeader: header}, nil
}
