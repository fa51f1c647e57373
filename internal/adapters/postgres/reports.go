package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"readiness/internal/domain"
)

const reportColumns = `
    id::text, analysis_id::text, purchase_id::text, status, pdf_url, storage_key, error_message, attempts,
    created_at, generation_started_at, generation_completed_at`

func scanReport(row pgx.Row) (domain.PdfReport, error) {
	var r domain.PdfReport
	var status string
	err := row.Scan(&r.ID, &r.AnalysisID, &r.PurchaseID, &status, &r.PdfURL, &r.StorageKey, &r.ErrorMessage,
		&r.Attempts, &r.CreatedAt, &r.StartedAt, &r.CompletedAt)
	r.Status = domain.ReportStatus(status)
	return r, err
}

// CreatePendingReport relies on the partial unique index over active reports,
// so concurrent webhook deliveries converge on a single row.
func (db *DB) CreatePendingReport(ctx context.Context, analysisID, purchaseID string) (domain.PdfReport, bool, error) {
	r, err := scanReport(db.Pool.QueryRow(ctx, `
        INSERT INTO pdf_reports (analysis_id, purchase_id, status)
        VALUES ($1, $2, 'pending')
        ON CONFLICT (purchase_id) WHERE status <> 'failed' DO NOTHING
        RETURNING `+reportColumns, analysisID, purchaseID))
	if err == nil {
		return r, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return r, false, mapErr("postgres.CreatePendingReport", err)
	}
	r, err = db.ActiveReportForPurchase(ctx, purchaseID)
	return r, false, err
}

func (db *DB) ActiveReportForPurchase(ctx context.Context, purchaseID string) (domain.PdfReport, error) {
	r, err := scanReport(db.Pool.QueryRow(ctx, `
        SELECT `+reportColumns+` FROM pdf_reports
        WHERE purchase_id = $1 AND status <> 'failed'
        ORDER BY created_at DESC
        LIMIT 1
    `, purchaseID))
	return r, mapErr("postgres.ActiveReportForPurchase", err)
}

func (db *DB) LatestReportForPurchase(ctx context.Context, purchaseID string) (domain.PdfReport, error) {
	r, err := scanReport(db.Pool.QueryRow(ctx, `
        SELECT `+reportColumns+` FROM pdf_reports
        WHERE purchase_id = $1
        ORDER BY created_at DESC
        LIMIT 1
    `, purchaseID))
	return r, mapErr("postgres.LatestReportForPurchase", err)
}

func (db *DB) LatestReportForAnalysis(ctx context.Context, analysisID string) (domain.PdfReport, error) {
	r, err := scanReport(db.Pool.QueryRow(ctx, `
        SELECT `+reportColumns+` FROM pdf_reports
        WHERE analysis_id = $1
        ORDER BY created_at DESC
        LIMIT 1
    `, analysisID))
	return r, mapErr("postgres.LatestReportForAnalysis", err)
}

func (db *DB) StartReport(ctx context.Context, reportID string, at time.Time) (domain.PdfReport, error) {
	r, err := scanReport(db.Pool.QueryRow(ctx, `
        UPDATE pdf_reports SET status = 'generating', generation_started_at = $2
        WHERE id = $1 AND status IN ('pending', 'generating')
        RETURNING `+reportColumns, reportID, at))
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return r, mapErr("postgres.StartReport", err)
	}
	r, err = scanReport(db.Pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM pdf_reports WHERE id = $1`, reportID))
	return r, mapErr("postgres.StartReport", err)
}

func (db *DB) CompleteReport(ctx context.Context, reportID string, pdfURL, storageKey *string, at time.Time) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE pdf_reports
        SET status = 'completed', pdf_url = $2, storage_key = $3, generation_completed_at = $4, error_message = NULL
        WHERE id = $1 AND status = 'generating'
    `, reportID, pdfURL, storageKey, at)
	if err != nil {
		return false, mapErr("postgres.CompleteReport", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (db *DB) FailReport(ctx context.Context, reportID, message string, at time.Time) error {
	_, err := db.Pool.Exec(ctx, `
        UPDATE pdf_reports
        SET status = 'failed', error_message = $2, generation_completed_at = $3
        WHERE id = $1 AND status IN ('pending', 'generating')
    `, reportID, message, at)
	return mapErr("postgres.FailReport", err)
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
