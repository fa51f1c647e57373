package domain

// PurchaseStatus is the lifecycle of a Purchase:
// pending -> completed -> refunded, or pending -> expired.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseExpired   PurchaseStatus = "expired"
	PurchaseRefunded  PurchaseStatus = "refunded"
)

// CanTransition reports whether moving from s to next is a forward move.
// Re-applying the current status is not a transition.
func (s PurchaseStatus) CanTransition(next PurchaseStatus) bool {
	switch s {
	case PurchasePending:
		return next == PurchaseCompleted || next == PurchaseExpired
	case PurchaseCompleted:
		return next == PurchaseRefunded
	}
	return false
}

// ReportStatus is the lifecycle of a PdfReport:
// pending -> generating -> completed, or pending/generating -> failed.
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s ReportStatus) Terminal() bool {
	return s == ReportCompleted || s == ReportFailed
}

// Active reports whether the report still counts against the
// one-report-per-purchase rule.
func (s ReportStatus) Active() bool {
	return s != ReportFailed
}

// CanTransition reports whether moving from s to next is allowed. A generating
// report may be re-entered by a retried generation.
func (s ReportStatus) CanTransition(next ReportStatus) bool {
	switch s {
	case ReportPending:
		return next == ReportGenerating || next == ReportFailed
	case ReportGenerating:
		return next == ReportGenerating || next == ReportCompleted || next == ReportFailed
	}
	return false
}
