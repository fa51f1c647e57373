// Package fulfillment coordinates a paid report from checkout to delivery.
//
// Primary steps (creating the checkout session, persisting a verified payment,
// rendering the document) fail the call. Secondary steps (recording the
// pending purchase, creating the report row, storage upload, email) are
// collected as SideEffects, logged with the ids needed for manual
// reconciliation, and never turn a usable result into an error.
package fulfillment

import (
	"errors"
	"time"

	"github.com/apex/log"

	"readiness/internal/domain"
	"readiness/internal/metrics"
	"readiness/internal/ports"
)

// Secondary step names, used in logs and as the metrics label.
const (
	StepLookupLead     = "lookup_lead"
	StepRecordPurchase = "record_purchase"
	StepCreateReport   = "create_report"
	StepStoreDocument  = "store_document"
	StepSendEmail      = "send_email"
	StepCompleteReport = "complete_report"
	StepFailReport     = "fail_report"
)

// SideEffect is a secondary step that failed without failing its operation.
type SideEffect struct {
	Step string
	Err  error
}

type SideEffects []SideEffect

func (s *SideEffects) add(step string, err error) {
	if err != nil {
		*s = append(*s, SideEffect{Step: step, Err: err})
	}
}

// Failed reports whether step is among the recorded failures.
func (s SideEffects) Failed(step string) bool {
	for _, e := range s {
		if e.Step == step {
			return true
		}
	}
	return false
}

// Err joins all recorded failures, or returns nil.
func (s SideEffects) Err() error {
	errs := make([]error, 0, len(s))
	for _, e := range s {
		errs = append(errs, e.Err)
	}
	return errors.Join(errs...)
}

// report logs and counts every recorded failure.
func (s SideEffects) report(op string, fields log.Fields) {
	for _, e := range s {
		metrics.SideEffectFailuresTotal.WithLabelValues(e.Step).Inc()
		log.WithFields(fields).WithField("op", op).WithField("step", e.Step).WithError(e.Err).
			Error("secondary step failed")
	}
}

// Pricing is the single report SKU.
type Pricing struct {
	AmountCents int64
	Currency    string
	ProductName string
}

var DefaultPricing = Pricing{AmountCents: 4900, Currency: "usd", ProductName: "AI Readiness Report"}

type Config struct {
	// PublicBaseURL is where the provider redirects after checkout.
	PublicBaseURL string
	Pricing       Pricing
}

type Service struct {
	store    ports.RecordStore
	payments ports.PaymentGateway
	renderer ports.Renderer
	delivery ports.Delivery
	cfg      Config
	now      func() time.Time
	newKey   func(analysisID string) string
}

func New(store ports.RecordStore, payments ports.PaymentGateway, renderer ports.Renderer, delivery ports.Delivery, cfg Config) *Service {
	if cfg.Pricing == (Pricing{}) {
		cfg.Pricing = DefaultPricing
	}
	return &Service{
		store:    store,
		payments: payments,
		renderer: renderer,
		delivery: delivery,
		cfg:      cfg,
		now:      time.Now,
		newKey:   storageKey,
	}
}

// SetClock replaces the service's time source.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
