package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"readiness/internal/domain"
)

const purchaseColumns = `
    id::text, analysis_id::text, lead_id::text, checkout_session_id, payment_intent_id, status,
    amount_cents, currency, email, created_at, completed_at, refunded_at`

func scanPurchase(row pgx.Row) (domain.Purchase, error) {
	var p domain.Purchase
	var status string
	err := row.Scan(&p.ID, &p.AnalysisID, &p.LeadID, &p.CheckoutSessionID, &p.PaymentIntentID, &status,
		&p.AmountCents, &p.Currency, &p.Email, &p.CreatedAt, &p.CompletedAt, &p.RefundedAt)
	p.Status = domain.PurchaseStatus(status)
	return p, err
}

func (db *DB) CreatePurchase(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	if p.Status == "" {
		p.Status = domain.PurchasePending
	}
	out, err := scanPurchase(db.Pool.QueryRow(ctx, `
        INSERT INTO purchases (analysis_id, lead_id, checkout_session_id, payment_intent_id, status,
                               amount_cents, currency, email, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+purchaseColumns,
		p.AnalysisID, p.LeadID, p.CheckoutSessionID, p.PaymentIntentID, string(p.Status),
		p.AmountCents, p.Currency, p.Email, p.CompletedAt))
	return out, mapErr("postgres.CreatePurchase", err)
}

func (db *DB) GetPurchase(ctx context.Context, id string) (domain.Purchase, error) {
	p, err := scanPurchase(db.Pool.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id))
	return p, mapErr("postgres.GetPurchase", err)
}

func (db *DB) PurchaseBySession(ctx context.Context, sessionID string) (domain.Purchase, error) {
	p, err := scanPurchase(db.Pool.QueryRow(ctx, `
        SELECT `+purchaseColumns+` FROM purchases WHERE checkout_session_id = $1
    `, sessionID))
	return p, mapErr("postgres.PurchaseBySession", err)
}

// transition runs a conditional update; when it matches nothing the current
// row is returned unchanged, or ErrNotFound when the row does not exist.
func (db *DB) transition(ctx context.Context, op, update, lookup string, args ...any) (domain.Purchase, error) {
	p, err := scanPurchase(db.Pool.QueryRow(ctx, update+` RETURNING `+purchaseColumns, args...))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return p, mapErr(op, err)
	}
	p, err = scanPurchase(db.Pool.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE `+lookup, args[0]))
	return p, mapErr(op, err)
}

func (db *DB) CompletePurchase(ctx context.Context, sessionID, paymentIntentID string, at time.Time) (domain.Purchase, error) {
	return db.transition(ctx, "postgres.CompletePurchase", `
        UPDATE purchases
        SET status = 'completed',
            payment_intent_id = COALESCE(payment_intent_id, NULLIF($2, '')),
            completed_at = COALESCE(completed_at, $3)
        WHERE checkout_session_id = $1 AND status IN ('pending', 'completed')
    `, `checkout_session_id = $1`, sessionID, paymentIntentID, at)
}

func (db *DB) ExpirePurchase(ctx context.Context, sessionID string) (domain.Purchase, error) {
	return db.transition(ctx, "postgres.ExpirePurchase", `
        UPDATE purchases SET status = 'expired'
        WHERE checkout_session_id = $1 AND status = 'pending'
    `, `checkout_session_id = $1`, sessionID)
}

func (db *DB) RefundPurchase(ctx context.Context, paymentIntentID string, at time.Time) (domain.Purchase, error) {
	return db.transition(ctx, "postgres.RefundPurchase", `
        UPDATE purchases SET status = 'refunded', refunded_at = $2
        WHERE payment_intent_id = $1 AND status = 'completed'
    `, `payment_intent_id = $1 ORDER BY created_at DESC LIMIT 1`, paymentIntentID, at)
}
