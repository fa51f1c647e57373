package fulfillment

import (
	"context"
	"errors"

	"github.com/apex/log"

	"readiness/internal/domain"
	"readiness/internal/metrics"
)

// EventResult describes what a payment event changed.
type EventResult struct {
	Kind        string
	Ignored     bool
	Purchase    *domain.Purchase
	Report      *domain.PdfReport
	SideEffects SideEffects
}

// HandlePaymentEvent authenticates payload before trusting any of it, then
// applies the event. Every branch is a conditional status set, so redelivery
// converges on the same state. Report generation is left to GenerateReport
// and the reconciliation sweep.
func (s *Service) HandlePaymentEvent(ctx context.Context, payload []byte, signature string) (EventResult, error) {
	ev, err := s.payments.ParseEvent(payload, signature)
	if err != nil {
		return EventResult{}, err
	}

	var res EventResult
	fields := log.Fields{"event_id": ev.EventID(), "event_type": ev.EventType()}
	switch e := ev.(type) {
	case domain.CheckoutCompleted:
		res, err = s.onCheckoutCompleted(ctx, e)
		fields["session_id"] = e.SessionID
	case domain.CheckoutExpired:
		res, err = s.onCheckoutExpired(ctx, e)
		fields["session_id"] = e.SessionID
	case domain.ChargeRefunded:
		res, err = s.onChargeRefunded(ctx, e)
		fields["payment_intent_id"] = e.PaymentIntentID
	default:
		res = EventResult{Kind: "other", Ignored: true}
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Error("payment event not applied")
		return EventResult{}, err
	}
	if res.Purchase != nil {
		fields["purchase_id"] = res.Purchase.ID
	}
	if res.Report != nil {
		fields["report_id"] = res.Report.ID
	}

	metrics.PaymentEventsTotal.WithLabelValues(res.Kind).Inc()
	res.SideEffects.report("fulfillment.HandlePaymentEvent", fields)
	log.WithFields(fields).WithField("ignored", res.Ignored).Info("payment event handled")
	return res, nil
}

func (s *Service) onCheckoutCompleted(ctx context.Context, e domain.CheckoutCompleted) (EventResult, error) {
	res := EventResult{Kind: "checkout_completed"}
	purchase, err := s.completeOrReconcile(ctx, e)
	if errors.Is(err, domain.ErrValidation) {
		// Nothing to reconcile from; acknowledge so the provider stops retrying.
		res.Ignored = true
		res.SideEffects.add(StepRecordPurchase, err)
		return res, nil
	}
	if err != nil {
		return res, err
	}
	res.Purchase = &purchase
	if purchase.Status != domain.PurchaseCompleted {
		// An expired or refunded purchase is not revived.
		res.Ignored = true
		return res, nil
	}
	if purchase.AnalysisID == "" {
		return res, nil
	}

	report, _, err := s.store.CreatePendingReport(ctx, purchase.AnalysisID, purchase.ID)
	if err != nil {
		res.SideEffects.add(StepCreateReport, err)
		return res, nil
	}
	res.Report = &report
	return res, nil
}

// completeOrReconcile marks the session's purchase completed, creating it from
// the event metadata when the checkout-time insert never landed.
func (s *Service) completeOrReconcile(ctx context.Context, e domain.CheckoutCompleted) (domain.Purchase, error) {
	const op = "fulfillment.HandlePaymentEvent"
	now := s.now()
	purchase, err := s.store.CompletePurchase(ctx, e.SessionID, e.PaymentIntentID, now)
	if !isNotFound(err) {
		return purchase, err
	}
	if e.AnalysisID == "" {
		return domain.Purchase{}, domain.Validation(op, "completed session carries no analysis id")
	}

	amount, currency := e.AmountTotal, e.Currency
	if amount == 0 {
		amount = s.cfg.Pricing.AmountCents
	}
	if currency == "" {
		currency = s.cfg.Pricing.Currency
	}
	purchase, err = s.store.CreatePurchase(ctx, domain.Purchase{
		AnalysisID:        e.AnalysisID,
		LeadID:            strPtr(e.LeadID),
		CheckoutSessionID: e.SessionID,
		PaymentIntentID:   strPtr(e.PaymentIntentID),
		Status:            domain.PurchaseCompleted,
		AmountCents:       amount,
		Currency:          currency,
		Email:             e.Email,
		CompletedAt:       &now,
	})
	if errors.Is(err, domain.ErrConflict) {
		// The checkout insert or a concurrent delivery won the race.
		return s.store.CompletePurchase(ctx, e.SessionID, e.PaymentIntentID, now)
	}
	if err == nil {
		log.WithFields(log.Fields{"session_id": e.SessionID, "purchase_id": purchase.ID}).
			Warn("purchase reconciled from payment event")
	}
	return purchase, err
}

func (s *Service) onCheckoutExpired(ctx context.Context, e domain.CheckoutExpired) (EventResult, error) {
	res := EventResult{Kind: "checkout_expired"}
	purchase, err := s.store.ExpirePurchase(ctx, e.SessionID)
	if isNotFound(err) {
		res.Ignored = true
		return res, nil
	}
	if err != nil {
		return res, err
	}
	res.Purchase = &purchase
	res.Ignored = purchase.Status != domain.PurchaseExpired
	return res, nil
}

func (s *Service) onChargeRefunded(ctx context.Context, e domain.ChargeRefunded) (EventResult, error) {
	res := EventResult{Kind: "charge_refunded"}
	if e.PaymentIntentID == "" {
		res.Ignored = true
		return res, nil
	}
	purchase, err := s.store.RefundPurchase(ctx, e.PaymentIntentID, s.now())
	if isNotFound(err) {
		res.Ignored = true
		return res, nil
	}
	if err != nil {
		return res, err
	}
	res.Purchase = &purchase
	res.Ignored = purchase.Status != domain.PurchaseRefunded
	return res, nil
}
