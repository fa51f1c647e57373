package leads

import (
	"context"
	"strings"
	"time"

	"github.com/apex/log"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

type Service struct {
	leads    ports.LeadRepository
	analyses ports.AnalysisRepository
	now      func() time.Time
}

func New(leads ports.LeadRepository, analyses ports.AnalysisRepository) *Service {
	return &Service{leads: leads, analyses: analyses, now: time.Now}
}

type CaptureRequest struct {
	Email            string
	AnalysisID       string
	CompanyName      string
	MarketingConsent bool
	PrivacyAccepted  bool
	ConsentAt        time.Time
	Attribution      domain.Attribution
}

type CaptureResult struct {
	LeadID  string
	Updated bool
}

func validEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}

// CaptureEmail records a contact. An analysis keeps one canonical lead: a
// repeat capture updates its email, company name and marketing consent, and
// leaves the original consent and attribution record alone.
func (s *Service) CaptureEmail(ctx context.Context, req CaptureRequest) (CaptureResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if !validEmail(req.Email) {
		return CaptureResult{}, domain.Validation("leads.CaptureEmail", "valid email is required")
	}
	company := optional(req.CompanyName)

	if req.AnalysisID != "" {
		existing, err := s.leads.LeadForAnalysis(ctx, req.AnalysisID)
		switch {
		case err == nil:
			if err := s.leads.UpdateLeadContact(ctx, existing.ID, req.Email, company, req.MarketingConsent); err != nil {
				return CaptureResult{}, err
			}
			return CaptureResult{LeadID: existing.ID, Updated: true}, nil
		case !domain.IsNotFound(err):
			return CaptureResult{}, err
		}
	}

	consentAt := req.ConsentAt
	if consentAt.IsZero() {
		consentAt = s.now()
	}
	id, err := s.leads.CreateLead(ctx, domain.Lead{
		AnalysisID:       optional(req.AnalysisID),
		Email:            req.Email,
		CompanyName:      company,
		MarketingConsent: req.MarketingConsent,
		PrivacyAccepted:  req.PrivacyAccepted,
		ConsentAt:        consentAt,
		Attribution:      req.Attribution,
	})
	if err != nil {
		return CaptureResult{}, err
	}
	return CaptureResult{LeadID: id}, nil
}

// DeleteData erases every lead with the email, then the analyses that no
// remaining lead references. The count is for logs only; callers must not
// reveal whether anything matched.
func (s *Service) DeleteData(ctx context.Context, email, reason string) (int, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return 0, domain.Validation("leads.DeleteData", "valid email is required")
	}
	found, err := s.leads.LeadsByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if len(found) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(found))
	var analysisIDs []string
	seen := map[string]bool{}
	for _, l := range found {
		ids = append(ids, l.ID)
		if l.AnalysisID != nil && !seen[*l.AnalysisID] {
			seen[*l.AnalysisID] = true
			analysisIDs = append(analysisIDs, *l.AnalysisID)
		}
	}
	if err := s.leads.DeleteLeads(ctx, ids); err != nil {
		return 0, err
	}

	orphaned := 0
	if len(analysisIDs) > 0 {
		referenced, err := s.leads.ReferencedAnalyses(ctx, analysisIDs)
		if err != nil {
			return len(ids), err
		}
		var drop []string
		for _, id := range analysisIDs {
			if !referenced[id] {
				drop = append(drop, id)
			}
		}
		if len(drop) > 0 {
			if orphaned, err = s.analyses.DeleteAnalyses(ctx, drop); err != nil {
				return len(ids), err
			}
		}
	}

	if reason == "" {
		reason = "not specified"
	}
	log.WithFields(log.Fields{
		"leads":    len(ids),
		"analyses": orphaned,
		"reason":   reason,
	}).Info("data deletion processed")
	return len(ids), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
