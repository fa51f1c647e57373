package domain

// PaymentEvent is an authenticated notification from the payment provider.
// The concrete type tells the kind; unknown kinds arrive as OtherEvent.
type PaymentEvent interface {
	EventID() string
	EventType() string
	isPaymentEvent()
}

// EventHeader is common to every payment event.
type EventHeader struct {
	ID   string
	Type string
}

func (h EventHeader) EventID() string   { return h.ID }
func (h EventHeader) EventType() string { return h.Type }
func (EventHeader) isPaymentEvent()     {}

// CheckoutCompleted: the customer paid for a checkout session.
type CheckoutCompleted struct {
	EventHeader
	SessionID       string
	PaymentIntentID string
	AnalysisID      string
	LeadID          string
	Email           string
	AmountTotal     int64
	Currency        string
}

// CheckoutExpired: the session timed out unpaid.
type CheckoutExpired struct {
	EventHeader
	SessionID string
}

// ChargeRefunded: a charge was refunded; purchases are matched by payment intent.
type ChargeRefunded struct {
	EventHeader
	ChargeID        string
	PaymentIntentID string
}

// OtherEvent is any kind this service does not act on.
type OtherEvent struct {
	EventHeader
}

// Session metadata keys carried through the provider.
const (
	MetaAnalysisID = "analysis_id"
	MetaLeadID     = "lead_id"
	MetaEmail      = "email"
	MetaDomain     = "domain"
)

// CheckoutRequest describes the single-SKU checkout session to create.
type CheckoutRequest struct {
	AnalysisID  string
	Domain      string
	Email       string
	LeadID      string
	AmountCents int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the provider-hosted checkout page.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionVerification is the provider's current view of a checkout session.
type SessionVerification struct {
	Paid     bool
	Email    string
	Metadata map[string]string
}
