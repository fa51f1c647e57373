package ports

import (
	"context"
	"time"
)

// ReportJob is a claimed report that needs (re)generation.
type ReportJob struct {
	ReportID   string
	AnalysisID string
	PurchaseID string
	Email      string
	Attempts   int
}

// ClaimPolicy decides which reports count as stuck.
type ClaimPolicy struct {
	PendingGrace    time.Duration
	StaleGenerating time.Duration
	MaxAttempts     int
}

// JobRepository supports claiming stuck reports for the reconciliation sweep.
type JobRepository interface {
	// ClaimNext locks the oldest stuck report, marks it generating and bumps
	// its attempt counter.
	ClaimNext(ctx context.Context, policy ClaimPolicy) (job ReportJob, found bool, err error)
	// ClaimOrphan creates and claims a report for a completed purchase that
	// has had no report row for longer than PendingGrace.
	ClaimOrphan(ctx context.Context, policy ClaimPolicy) (job ReportJob, found bool, err error)
	// FailExhausted marks stuck reports that used up their attempts as failed.
	FailExhausted(ctx context.Context, policy ClaimPolicy) (int, error)
}
