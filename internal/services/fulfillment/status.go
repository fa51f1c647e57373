package fulfillment

import (
	"context"
	"strings"

	"readiness/internal/domain"
)

// StatusQuery selects a report by checkout session or, failing that, by analysis.
type StatusQuery struct {
	SessionID  string
	AnalysisID string
}

// GetStatus projects the current report state. Nothing stored yet is the
// not_found status rather than an error; the webhook may still be in flight.
func (s *Service) GetStatus(ctx context.Context, q StatusQuery) (domain.FulfillmentStatus, error) {
	q.SessionID, q.AnalysisID = strings.TrimSpace(q.SessionID), strings.TrimSpace(q.AnalysisID)
	if q.SessionID == "" && q.AnalysisID == "" {
		return domain.FulfillmentStatus{}, domain.Validation("fulfillment.GetStatus", "session_id or analysis_id is required")
	}

	var report domain.PdfReport
	var err error
	if q.SessionID != "" {
		var purchase domain.Purchase
		purchase, err = s.store.PurchaseBySession(ctx, q.SessionID)
		if err == nil {
			report, err = s.store.LatestReportForPurchase(ctx, purchase.ID)
		}
	} else {
		report, err = s.store.LatestReportForAnalysis(ctx, q.AnalysisID)
	}
	if isNotFound(err) {
		return domain.FulfillmentStatus{Status: domain.StatusNotFound}, nil
	}
	if err != nil {
		return domain.FulfillmentStatus{}, err
	}

	created := report.CreatedAt
	return domain.FulfillmentStatus{
		Status:      string(report.Status),
		PdfURL:      report.PdfURL,
		CreatedAt:   &created,
		CompletedAt: report.CompletedAt,
	}, nil
}
