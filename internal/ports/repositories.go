package ports

import (
	"context"
	"time"

	"readiness/internal/domain"
)

// Lookups return an error matching domain.ErrNotFound when no row exists.

// AnalysisRepository reads analyses and attaches AI-enhancement fields.
type AnalysisRepository interface {
	GetAnalysis(ctx context.Context, id string) (domain.Analysis, error)
	PatchInsights(ctx context.Context, id string, patch domain.InsightsPatch) (domain.Analysis, error)
	DeleteAnalyses(ctx context.Context, ids []string) (int, error)
}

// LeadRepository stores captured contacts.
type LeadRepository interface {
	LeadForAnalysis(ctx context.Context, analysisID string) (domain.Lead, error)
	CreateLead(ctx context.Context, lead domain.Lead) (string, error)
	UpdateLeadContact(ctx context.Context, id, email string, companyName *string, marketingConsent bool) error
	LeadsByEmail(ctx context.Context, email string) ([]domain.Lead, error)
	DeleteLeads(ctx context.Context, ids []string) error
	// ReferencedAnalyses returns the subset of analysisIDs still referenced by any lead.
	ReferencedAnalyses(ctx context.Context, analysisIDs []string) (map[string]bool, error)
}

// PurchaseRepository stores payment attempts. Status updates are conditional
// on the current state; a disallowed transition leaves the row untouched and
// returns it as is.
type PurchaseRepository interface {
	// CreatePurchase inserts p; a duplicate checkout session id yields domain.ErrConflict.
	CreatePurchase(ctx context.Context, p domain.Purchase) (domain.Purchase, error)
	GetPurchase(ctx context.Context, id string) (domain.Purchase, error)
	PurchaseBySession(ctx context.Context, sessionID string) (domain.Purchase, error)
	CompletePurchase(ctx context.Context, sessionID, paymentIntentID string, at time.Time) (domain.Purchase, error)
	ExpirePurchase(ctx context.Context, sessionID string) (domain.Purchase, error)
	RefundPurchase(ctx context.Context, paymentIntentID string, at time.Time) (domain.Purchase, error)
}

// ReportRepository stores report generation tasks. At most one non-failed
// report exists per purchase.
type ReportRepository interface {
	// CreatePendingReport returns the purchase's active report, creating a
	// pending one when there is none. created tells which happened.
	CreatePendingReport(ctx context.Context, analysisID, purchaseID string) (report domain.PdfReport, created bool, err error)
	ActiveReportForPurchase(ctx context.Context, purchaseID string) (domain.PdfReport, error)
	// LatestReportForPurchase includes failed reports, most recent first.
	LatestReportForPurchase(ctx context.Context, purchaseID string) (domain.PdfReport, error)
	LatestReportForAnalysis(ctx context.Context, analysisID string) (domain.PdfReport, error)
	StartReport(ctx context.Context, reportID string, at time.Time) (domain.PdfReport, error)
	// CompleteReport reports false when the report was no longer generating.
	CompleteReport(ctx context.Context, reportID string, pdfURL, storageKey *string, at time.Time) (bool, error)
	FailReport(ctx context.Context, reportID, message string, at time.Time) error
}

// RecordStore is the full persistence surface.
type RecordStore interface {
	AnalysisRepository
	LeadRepository
	PurchaseRepository
	ReportRepository
}
