package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"readiness/internal/ports"
)

const stuckPredicate = `
    ((r.status = 'pending' AND r.created_at <= now() - make_interval(secs => $1))
     OR (r.status = 'generating' AND COALESCE(r.generation_started_at, r.created_at) <= now() - make_interval(secs => $2)))`

// ClaimNext selects the oldest stuck report using SKIP LOCKED and marks it generating.
func (db *DB) ClaimNext(ctx context.Context, policy ports.ClaimPolicy) (job ports.ReportJob, found bool, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            SELECT r.id::text, r.analysis_id::text, r.purchase_id::text, p.email, r.attempts
            FROM pdf_reports r
            JOIN purchases p ON p.id = r.purchase_id
            WHERE `+stuckPredicate+` AND r.attempts < $3
            ORDER BY r.created_at
            FOR UPDATE OF r SKIP LOCKED
            LIMIT 1
        `, policy.PendingGrace.Seconds(), policy.StaleGenerating.Seconds(), policy.MaxAttempts).
			Scan(&job.ReportID, &job.AnalysisID, &job.PurchaseID, &job.Email, &job.Attempts)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		// Mark generating and bump attempts so other sweepers skip it until it goes stale again.
		if _, err := tx.Exec(ctx, `
            UPDATE pdf_reports SET status = 'generating', generation_started_at = now(), attempts = attempts + 1
            WHERE id = $1
        `, job.ReportID); err != nil {
			return err
		}
		job.Attempts++
		found = true
		return nil
	})
	if err != nil {
		return ports.ReportJob{}, false, mapErr("postgres.ClaimNext", err)
	}
	return job, found, nil
}

// ClaimOrphan adopts the oldest completed purchase that never got a report
// row, inserting it already claimed. Purchases whose reports all failed are
// left to an operator redrive.
func (db *DB) ClaimOrphan(ctx context.Context, policy ports.ClaimPolicy) (job ports.ReportJob, found bool, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            SELECT p.id::text, p.analysis_id::text, p.email
            FROM purchases p
            WHERE p.status = 'completed'
              AND COALESCE(p.completed_at, p.created_at) <= now() - make_interval(secs => $1)
              AND NOT EXISTS (SELECT 1 FROM pdf_reports r WHERE r.purchase_id = p.id)
            ORDER BY p.created_at
            FOR UPDATE OF p SKIP LOCKED
            LIMIT 1
        `, policy.PendingGrace.Seconds()).Scan(&job.PurchaseID, &job.AnalysisID, &job.Email)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, `
            INSERT INTO pdf_reports (analysis_id, purchase_id, status, attempts, generation_started_at)
            VALUES ($1, $2, 'generating', 1, now())
            ON CONFLICT (purchase_id) WHERE status <> 'failed' DO NOTHING
            RETURNING id::text
        `, job.AnalysisID, job.PurchaseID).Scan(&job.ReportID)
		if errors.Is(err, pgx.ErrNoRows) {
			// a webhook redelivery created the report meanwhile
			return nil
		}
		if err != nil {
			return err
		}
		job.Attempts = 1
		found = true
		return nil
	})
	if err != nil || !found {
		return ports.ReportJob{}, false, mapErr("postgres.ClaimOrphan", err)
	}
	return job, true, nil
}

func (db *DB) FailExhausted(ctx context.Context, policy ports.ClaimPolicy) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
        UPDATE pdf_reports r
        SET status = 'failed', error_message = 'generation attempts exhausted', generation_completed_at = now()
        WHERE `+stuckPredicate+` AND r.attempts >= $3
    `, policy.PendingGrace.Seconds(), policy.StaleGenerating.Seconds(), policy.MaxAttempts)
	if err != nil {
		return 0, mapErr("postgres.FailExhausted", err)
	}
	return int(tag.RowsAffected()), nil
}
