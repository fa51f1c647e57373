package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"readiness/internal/domain"
)

const leadColumns = `
    id::text, analysis_id::text, email, company_name, marketing_consent, privacy_accepted, consent_timestamp,
    utm_source, utm_medium, utm_campaign, utm_term, utm_content, referrer, created_at, updated_at`

func scanLead(row pgx.Row) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.AnalysisID, &l.Email, &l.CompanyName, &l.MarketingConsent, &l.PrivacyAccepted,
		&l.ConsentAt, &l.Attribution.Source, &l.Attribution.Medium, &l.Attribution.Campaign,
		&l.Attribution.Term, &l.Attribution.Content, &l.Attribution.Referrer, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// LeadForAnalysis returns the canonical (oldest) lead linked to an analysis.
func (db *DB) LeadForAnalysis(ctx context.Context, analysisID string) (domain.Lead, error) {
	l, err := scanLead(db.Pool.QueryRow(ctx, `
        SELECT `+leadColumns+` FROM leads
        WHERE analysis_id = $1
        ORDER BY created_at
        LIMIT 1
    `, analysisID))
	return l, mapErr("postgres.LeadForAnalysis", err)
}

func (db *DB) CreateLead(ctx context.Context, lead domain.Lead) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO leads (analysis_id, email, company_name, marketing_consent, privacy_accepted, consent_timestamp,
                           utm_source, utm_medium, utm_campaign, utm_term, utm_content, referrer)
        VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, now()), $7, $8, $9, $10, $11, $12)
        RETURNING id::text
    `, lead.AnalysisID, strings.TrimSpace(lead.Email), lead.CompanyName, lead.MarketingConsent, lead.PrivacyAccepted,
		nullTime(lead.ConsentAt), lead.Attribution.Source, lead.Attribution.Medium, lead.Attribution.Campaign,
		lead.Attribution.Term, lead.Attribution.Content, lead.Attribution.Referrer).Scan(&id)
	return id, mapErr("postgres.CreateLead", err)
}

func (db *DB) UpdateLeadContact(ctx context.Context, id, email string, companyName *string, marketingConsent bool) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE leads SET email = $2, company_name = $3, marketing_consent = $4, updated_at = now()
        WHERE id = $1
    `, id, strings.TrimSpace(email), companyName, marketingConsent)
	if err != nil {
		return mapErr("postgres.UpdateLeadContact", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("postgres.UpdateLeadContact", "lead not found")
	}
	return nil
}

func (db *DB) LeadsByEmail(ctx context.Context, email string) ([]domain.Lead, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+leadColumns+` FROM leads WHERE email = $1`, strings.TrimSpace(email))
	if err != nil {
		return nil, mapErr("postgres.LeadsByEmail", err)
	}
	defer rows.Close()
	var out []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, mapErr("postgres.LeadsByEmail", err)
		}
		out = append(out, l)
	}
	return out, mapErr("postgres.LeadsByEmail", rows.Err())
}

func (db *DB) DeleteLeads(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM leads WHERE id = ANY($1::uuid[])`, ids)
	return mapErr("postgres.DeleteLeads", err)
}

func (db *DB) ReferencedAnalyses(ctx context.Context, analysisIDs []string) (map[string]bool, error) {
	out := map[string]bool{}
	if len(analysisIDs) == 0 {
		return out, nil
	}
	rows, err := db.Pool.Query(ctx, `
        SELECT DISTINCT analysis_id::text FROM leads WHERE analysis_id = ANY($1::uuid[])
    `, analysisIDs)
	if err != nil {
		return nil, mapErr("postgres.ReferencedAnalyses", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapErr("postgres.ReferencedAnalyses", err)
		}
		out[id] = true
	}
	return out, mapErr("postgres.ReferencedAnalyses", rows.Err())
}
