package analyses

import (
	"context"
	"strings"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

type Service struct {
	repo ports.AnalysisRepository
}

func New(repo ports.AnalysisRepository) *Service { return &Service{repo: repo} }

func (s *Service) Get(ctx context.Context, id string) (domain.Analysis, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Analysis{}, domain.Validation("analyses.Get", "analysis id is required")
	}
	return s.repo.GetAnalysis(ctx, id)
}

// PatchInsights attaches AI-enhancement fields. Nothing else on an analysis
// can change after it is scored.
func (s *Service) PatchInsights(ctx context.Context, id string, patch domain.InsightsPatch) (domain.Analysis, error) {
	const op = "analyses.PatchInsights"
	if strings.TrimSpace(id) == "" {
		return domain.Analysis{}, domain.Validation(op, "analysis id is required")
	}
	if patch.Empty() {
		return domain.Analysis{}, domain.Validation(op, "no valid fields to update")
	}
	if patch.EnhancedScore != nil && (*patch.EnhancedScore < 0 || *patch.EnhancedScore > 100) {
		return domain.Analysis{}, domain.Validation(op, "enhancedScore must be between 0 and 100")
	}
	return s.repo.PatchInsights(ctx, id, patch)
}
