package httpadapter

import (
	"context"
	"encoding/json"

	api "readiness/internal/api"
	"readiness/internal/domain"
	"readiness/internal/services/leads"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func viewChecks(checks []domain.CheckResult) []api.CheckResult {
	out := make([]api.CheckResult, 0, len(checks))
	for _, c := range checks {
		v := api.CheckResult{
			Id:             c.ID,
			Label:          c.Label,
			Status:         api.CheckResultStatus(c.Status),
			Score:          c.Score,
			Details:        optional(c.Details),
			Recommendation: optional(c.Recommendation),
		}
		if len(c.ActionItems) > 0 {
			items := c.ActionItems
			v.ActionItems = &items
		}
		out = append(out, v)
	}
	return out
}

func viewAnalysis(a domain.Analysis) api.AnalysisResponse {
	v := api.Analysis{
		Id:           a.ID,
		Url:          a.URL,
		Domain:       a.Domain,
		OverallScore: a.OverallScore,
		Checks:       viewChecks(a.Checks),
		Metadata: api.AnalysisMetadata{
			Title:       optional(a.Metadata.Title),
			Description: optional(a.Metadata.Description),
			AnalyzedAt:  optional(a.Metadata.AnalyzedAt),
		},
		AiInsights:         a.AIInsights,
		AiOverallReadiness: a.AIOverallReadiness,
		EnhancedScore:      a.EnhancedScore,
		CreatedAt:          a.CreatedAt,
	}
	if a.AITopPriorities != nil {
		priorities := a.AITopPriorities
		v.AiTopPriorities = &priorities
	}
	if len(v.AiInsights) == 0 {
		v.AiInsights = json.RawMessage("null")
	}
	return api.AnalysisResponse{Success: true, Analysis: v}
}

func (s *Server) GetAnalysisId(ctx context.Context, req api.GetAnalysisIdRequestObject) (api.GetAnalysisIdResponseObject, error) {
	a, err := s.analyses.Get(ctx, req.Id)
	if err != nil {
		return nil, failed(err, "failed to fetch analysis")
	}
	return api.GetAnalysisId200JSONResponse(viewAnalysis(a)), nil
}

// PatchAnalysisId only sees the AI-enhancement allow-list; the generated body
// type drops every other field.
func (s *Server) PatchAnalysisId(ctx context.Context, req api.PatchAnalysisIdRequestObject) (api.PatchAnalysisIdResponseObject, error) {
	patch := domain.InsightsPatch{
		AIInsights:         req.Body.AiInsights,
		AIOverallReadiness: req.Body.AiOverallReadiness,
		EnhancedScore:      req.Body.EnhancedScore,
	}
	if req.Body.AiTopPriorities != nil {
		patch.AITopPriorities = *req.Body.AiTopPriorities
	}
	a, err := s.analyses.PatchInsights(ctx, req.Id, patch)
	if err != nil {
		return nil, failed(err, "failed to update analysis")
	}
	return api.PatchAnalysisId200JSONResponse(viewAnalysis(a)), nil
}

func attribution(u *api.UtmParams) domain.Attribution {
	if u == nil {
		return domain.Attribution{}
	}
	return domain.Attribution{
		Source:   optional(deref(u.UtmSource)),
		Medium:   optional(deref(u.UtmMedium)),
		Campaign: optional(deref(u.UtmCampaign)),
		Term:     optional(deref(u.UtmTerm)),
		Content:  optional(deref(u.UtmContent)),
		Referrer: optional(deref(u.Referrer)),
	}
}

func (s *Server) PostEmailCapture(ctx context.Context, req api.PostEmailCaptureRequestObject) (api.PostEmailCaptureResponseObject, error) {
	body := req.Body
	capture := leads.CaptureRequest{
		Email:            body.Email,
		AnalysisID:       deref(body.AnalysisId),
		CompanyName:      deref(body.CompanyName),
		MarketingConsent: deref(body.MarketingConsent),
		PrivacyAccepted:  deref(body.PrivacyAccepted),
		ConsentAt:        deref(body.ConsentTimestamp),
		Attribution:      attribution(body.UtmParams),
	}
	res, err := s.leads.CaptureEmail(ctx, capture)
	if err != nil {
		return nil, failed(err, "failed to capture email")
	}
	msg := "Lead captured"
	if res.Updated {
		msg = "Lead updated"
	}
	return api.PostEmailCapture200JSONResponse{Success: true, Message: msg, LeadId: res.LeadID}, nil
}

// PostDataDeletion answers the same way whether or not anything matched.
func (s *Server) PostDataDeletion(ctx context.Context, req api.PostDataDeletionRequestObject) (api.PostDataDeletionResponseObject, error) {
	if _, err := s.leads.DeleteData(ctx, req.Body.Email, deref(req.Body.Reason)); err != nil {
		return nil, failed(err, "failed to process request")
	}
	return api.PostDataDeletion200JSONResponse{
		Success: true,
		Message: "If we have any data associated with this email, it has been deleted.",
	}, nil
}
