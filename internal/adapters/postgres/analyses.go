package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"readiness/internal/domain"
)

const analysisColumns = `
    id::text, url, domain, overall_score, checks, COALESCE(metadata, '{}'::jsonb),
    ai_insights, ai_overall_readiness, ai_top_priorities, enhanced_score, created_at, updated_at`

func scanAnalysis(row pgx.Row) (domain.Analysis, error) {
	var a domain.Analysis
	var checks, metadata, insights, priorities []byte
	err := row.Scan(&a.ID, &a.URL, &a.Domain, &a.OverallScore, &checks, &metadata,
		&insights, &a.AIOverallReadiness, &priorities, &a.EnhancedScore, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(checks, &a.Checks); err != nil {
		return a, fmt.Errorf("decode checks: %w", err)
	}
	if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
		return a, fmt.Errorf("decode metadata: %w", err)
	}
	if insights != nil {
		a.AIInsights = json.RawMessage(insights)
	}
	if priorities != nil {
		if err := json.Unmarshal(priorities, &a.AITopPriorities); err != nil {
			return a, fmt.Errorf("decode ai_top_priorities: %w", err)
		}
	}
	return a, nil
}

func (db *DB) GetAnalysis(ctx context.Context, id string) (domain.Analysis, error) {
	a, err := scanAnalysis(db.Pool.QueryRow(ctx, `SELECT `+analysisColumns+` FROM analyses WHERE id = $1`, id))
	return a, mapErr("postgres.GetAnalysis", err)
}

// PatchInsights writes only the allow-listed AI-enhancement columns present in patch.
func (db *DB) PatchInsights(ctx context.Context, id string, patch domain.InsightsPatch) (domain.Analysis, error) {
	sets := []string{}
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.AIInsights != nil {
		add("ai_insights", []byte(patch.AIInsights))
	}
	if patch.AIOverallReadiness != nil {
		add("ai_overall_readiness", *patch.AIOverallReadiness)
	}
	if patch.AITopPriorities != nil {
		b, err := json.Marshal(patch.AITopPriorities)
		if err != nil {
			return domain.Analysis{}, domain.Validation("postgres.PatchInsights", "invalid aiTopPriorities")
		}
		add("ai_top_priorities", b)
	}
	if patch.EnhancedScore != nil {
		add("enhanced_score", *patch.EnhancedScore)
	}
	if len(sets) == 0 {
		return domain.Analysis{}, domain.Validation("postgres.PatchInsights", "no valid fields to update")
	}
	q := `UPDATE analyses SET ` + strings.Join(sets, ", ") + `, updated_at = now() WHERE id = $1 RETURNING ` + analysisColumns
	a, err := scanAnalysis(db.Pool.QueryRow(ctx, q, args...))
	return a, mapErr("postgres.PatchInsights", err)
}

func (db *DB) DeleteAnalyses(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM analyses WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, mapErr("postgres.DeleteAnalyses", err)
	}
	return int(tag.RowsAffected()), nil
}
