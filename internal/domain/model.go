package domain

import (
	"encoding/json"
	"time"
)

// Core domain models. Storage rows and HTTP payloads are mapped onto these in
// the adapters; keep them free of driver and provider types.

// CheckStatus is the outcome of one readiness metric.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// CheckResult is one scored metric of an Analysis.
type CheckResult struct {
	ID             string      `json:"id"`
	Label          string      `json:"label"`
	Status         CheckStatus `json:"status"`
	Score          int         `json:"score"`
	Details        string      `json:"details,omitempty"`
	Recommendation string      `json:"recommendation,omitempty"`
	ActionItems    []string    `json:"actionItems,omitempty"`
}

// AnalysisMetadata is the free-form page metadata captured by the scorer.
type AnalysisMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	AnalyzedAt  string `json:"analyzedAt,omitempty"`
}

// Analysis is a scored snapshot of one website. It is produced upstream and
// only ever mutated to attach the AI-enhancement fields.
type Analysis struct {
	ID                 string
	URL                string
	Domain             string
	OverallScore       int
	Checks             []CheckResult
	Metadata           AnalysisMetadata
	AIInsights         json.RawMessage
	AIOverallReadiness *string
	AITopPriorities    []string
	EnhancedScore      *int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// InsightsPatch is the allow-listed partial update of an Analysis. Nil fields
// are left untouched.
type InsightsPatch struct {
	AIInsights         json.RawMessage
	AIOverallReadiness *string
	AITopPriorities    []string
	EnhancedScore      *int
}

// Empty reports whether the patch carries no allowed field.
func (p InsightsPatch) Empty() bool {
	return p.AIInsights == nil && p.AIOverallReadiness == nil && p.AITopPriorities == nil && p.EnhancedScore == nil
}

// Attribution holds the UTM/referrer fields stored with a Lead.
type Attribution struct {
	Source   *string
	Medium   *string
	Campaign *string
	Term     *string
	Content  *string
	Referrer *string
}

// Lead is a captured contact, linked to at most one Analysis.
type Lead struct {
	ID               string
	AnalysisID       *string
	Email            string
	CompanyName      *string
	MarketingConsent bool
	PrivacyAccepted  bool
	ConsentAt        time.Time
	Attribution      Attribution
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Purchase is one payment attempt for one Analysis. CheckoutSessionID is the
// idempotency key and never changes once set.
type Purchase struct {
	ID                string
	AnalysisID        string
	LeadID            *string
	CheckoutSessionID string
	PaymentIntentID   *string
	Status            PurchaseStatus
	AmountCents       int64
	Currency          string
	Email             string
	CreatedAt         time.Time
	CompletedAt       *time.Time
	RefundedAt        *time.Time
}

// PdfReport is one generation task for a Purchase and its resulting artifact.
type PdfReport struct {
	ID           string
	AnalysisID   string
	PurchaseID   string
	Status       ReportStatus
	PdfURL       *string
	StorageKey   *string
	ErrorMessage *string
	Attempts     int
	CreatedAt    time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// FulfillmentStatus is the client-facing projection of a PdfReport.
type FulfillmentStatus struct {
	Status      string
	PdfURL      *string
	CreatedAt   *time.Time
	CompletedAt *time.Time
}

// StatusNotFound is reported while nothing has been persisted yet.
const StatusNotFound = "not_found"
