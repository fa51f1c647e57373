package fulfillment

import (
	"context"
	"strings"

	"github.com/apex/log"

	"readiness/internal/domain"
	"readiness/internal/metrics"
)

type CheckoutResult struct {
	CheckoutURL string
	SessionID   string
	SideEffects SideEffects
}

// InitiateCheckout opens a provider checkout session for the analysis and
// records a pending purchase. A failed insert does not abort the checkout;
// the completed webhook reconciles the missing row.
func (s *Service) InitiateCheckout(ctx context.Context, analysisID, email string) (CheckoutResult, error) {
	const op = "fulfillment.InitiateCheckout"
	analysisID, email = strings.TrimSpace(analysisID), strings.TrimSpace(email)
	if analysisID == "" || email == "" {
		return CheckoutResult{}, domain.Validation(op, "analysisId and email are required")
	}
	if !strings.Contains(email, "@") {
		return CheckoutResult{}, domain.Validation(op, "invalid email")
	}

	analysis, err := s.store.GetAnalysis(ctx, analysisID)
	if err != nil {
		return CheckoutResult{}, err
	}

	var res CheckoutResult
	var leadID string
	lead, err := s.store.LeadForAnalysis(ctx, analysisID)
	switch {
	case err == nil:
		leadID = lead.ID
	case !isNotFound(err):
		res.SideEffects.add(StepLookupLead, err)
	}

	site := analysis.SiteDomain()
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	session, err := s.payments.CreateSession(ctx, domain.CheckoutRequest{
		AnalysisID:  analysisID,
		Domain:      site,
		Email:       email,
		LeadID:      leadID,
		AmountCents: s.cfg.Pricing.AmountCents,
		Currency:    s.cfg.Pricing.Currency,
		ProductName: s.cfg.Pricing.ProductName,
		SuccessURL:  base + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   base + "/?cancelled=true",
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
		return CheckoutResult{}, err
	}
	res.CheckoutURL, res.SessionID = session.URL, session.ID

	_, err = s.store.CreatePurchase(ctx, domain.Purchase{
		AnalysisID:        analysisID,
		LeadID:            strPtr(leadID),
		CheckoutSessionID: session.ID,
		Status:            domain.PurchasePending,
		AmountCents:       s.cfg.Pricing.AmountCents,
		Currency:          s.cfg.Pricing.Currency,
		Email:             email,
	})
	res.SideEffects.add(StepRecordPurchase, err)

	result := "ok"
	if res.SideEffects.Failed(StepRecordPurchase) {
		result = "unrecorded"
	}
	metrics.CheckoutsTotal.WithLabelValues(result).Inc()
	res.SideEffects.report(op, log.Fields{"analysis_id": analysisID, "session_id": session.ID})
	return res, nil
}

// Verification is what the success page shows after the provider redirect.
type Verification struct {
	Paid       bool
	Email      string
	Domain     string
	AnalysisID string
	PdfStatus  string
}

// VerifyCheckout asks the provider whether the session is paid and projects
// the stored purchase. Before the webhook has landed the session metadata is
// used and the report is reported as pending.
func (s *Service) VerifyCheckout(ctx context.Context, sessionID string) (Verification, error) {
	const op = "fulfillment.VerifyCheckout"
	if strings.TrimSpace(sessionID) == "" {
		return Verification{}, domain.Validation(op, "session_id is required")
	}
	v, err := s.payments.VerifySession(ctx, sessionID)
	if err != nil {
		return Verification{}, err
	}
	if !v.Paid {
		return Verification{Paid: false}, nil
	}

	out := Verification{Paid: true, PdfStatus: string(domain.ReportPending)}
	purchase, err := s.store.PurchaseBySession(ctx, sessionID)
	if isNotFound(err) {
		out.Email = v.Email
		if out.Email == "" {
			out.Email = v.Metadata[domain.MetaEmail]
		}
		out.Domain = v.Metadata[domain.MetaDomain]
		if out.Domain == "" {
			out.Domain = domain.UnknownSite
		}
		out.AnalysisID = v.Metadata[domain.MetaAnalysisID]
		return out, nil
	}
	if err != nil {
		return Verification{}, err
	}

	out.AnalysisID = purchase.AnalysisID
	out.Email = purchase.Email
	if out.Email == "" {
		out.Email = v.Email
	}
	out.Domain = domain.UnknownSite
	if analysis, err := s.store.GetAnalysis(ctx, purchase.AnalysisID); err == nil {
		out.Domain = analysis.SiteDomain()
	} else if !isNotFound(err) {
		return Verification{}, err
	}
	report, err := s.store.LatestReportForPurchase(ctx, purchase.ID)
	switch {
	case err == nil:
		out.PdfStatus = string(report.Status)
	case !isNotFound(err):
		return Verification{}, err
	}
	return out, nil
}
