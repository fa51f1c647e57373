// Package memory is an in-process Record Store. It applies the same
// conditional-update rules as the Postgres adapter and backs tests and local
// runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

type Store struct {
	mu        sync.Mutex
	now       func() time.Time
	analyses  map[string]domain.Analysis
	leads     map[string]domain.Lead
	purchases map[string]domain.Purchase
	reports   map[string]domain.PdfReport
	seq       int64
}

var (
	_ ports.RecordStore   = (*Store)(nil)
	_ ports.JobRepository = (*Store)(nil)
)

func New() *Store {
	return &Store{
		now:       time.Now,
		analyses:  map[string]domain.Analysis{},
		leads:     map[string]domain.Lead{},
		purchases: map[string]domain.Purchase{},
		reports:   map[string]domain.PdfReport{},
	}
}

// SetClock replaces the store's time source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// tick returns a strictly increasing creation time so most-recent-first
// ordering is stable even when the clock is frozen.
func (s *Store) tick() time.Time {
	s.seq++
	return s.now().Add(time.Duration(s.seq) * time.Microsecond)
}

// PutAnalysis stores an analysis as the upstream scorer would.
func (s *Store) PutAnalysis(a domain.Analysis) domain.Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.tick()
	}
	a.UpdatedAt = a.CreatedAt
	s.analyses[a.ID] = a
	return a
}

// Purchases returns a snapshot of all purchases.
func (s *Store) Purchases() []domain.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Reports returns a snapshot of all reports, oldest first.
func (s *Store) Reports() []domain.PdfReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PdfReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Leads returns a snapshot of all leads.
func (s *Store) Leads() []domain.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Analyses

func (s *Store) GetAnalysis(ctx context.Context, id string) (domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.analyses[id]
	if !ok {
		return domain.Analysis{}, domain.NotFound("memory.GetAnalysis", "analysis not found")
	}
	return a, nil
}

func (s *Store) PatchInsights(ctx context.Context, id string, patch domain.InsightsPatch) (domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.analyses[id]
	if !ok {
		return domain.Analysis{}, domain.NotFound("memory.PatchInsights", "analysis not found")
	}
	if patch.AIInsights != nil {
		a.AIInsights = patch.AIInsights
	}
	if patch.AIOverallReadiness != nil {
		a.AIOverallReadiness = patch.AIOverallReadiness
	}
	if patch.AITopPriorities != nil {
		a.AITopPriorities = patch.AITopPriorities
	}
	if patch.EnhancedScore != nil {
		a.EnhancedScore = patch.EnhancedScore
	}
	a.UpdatedAt = s.now()
	s.analyses[id] = a
	return a, nil
}

func (s *Store) DeleteAnalyses(ctx context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := map[string]bool{}
	for _, id := range ids {
		if _, ok := s.analyses[id]; ok {
			delete(s.analyses, id)
			deleted[id] = true
		}
	}
	// mirror ON DELETE SET NULL
	for lid, l := range s.leads {
		if l.AnalysisID != nil && deleted[*l.AnalysisID] {
			l.AnalysisID = nil
			s.leads[lid] = l
		}
	}
	n := len(deleted)
	return n, nil
}

// Leads

func (s *Store) LeadForAnalysis(ctx context.Context, analysisID string) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *domain.Lead
	for _, l := range s.leads {
		if l.AnalysisID != nil && *l.AnalysisID == analysisID {
			if found == nil || l.CreatedAt.Before(found.CreatedAt) {
				l := l
				found = &l
			}
		}
	}
	if found == nil {
		return domain.Lead{}, domain.NotFound("memory.LeadForAnalysis", "lead not found")
	}
	return *found, nil
}

func (s *Store) CreateLead(ctx context.Context, lead domain.Lead) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead.ID = uuid.NewString()
	lead.CreatedAt = s.tick()
	lead.UpdatedAt = lead.CreatedAt
	if lead.ConsentAt.IsZero() {
		lead.ConsentAt = lead.CreatedAt
	}
	s.leads[lead.ID] = lead
	return lead.ID, nil
}

func (s *Store) UpdateLeadContact(ctx context.Context, id, email string, companyName *string, marketingConsent bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leads[id]
	if !ok {
		return domain.NotFound("memory.UpdateLeadContact", "lead not found")
	}
	l.Email = email
	l.CompanyName = companyName
	l.MarketingConsent = marketingConsent
	l.UpdatedAt = s.now()
	s.leads[id] = l
	return nil
}

func (s *Store) LeadsByEmail(ctx context.Context, email string) ([]domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Lead
	for _, l := range s.leads {
		if l.Email == email {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) DeleteLeads(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.leads, id)
	}
	return nil
}

func (s *Store) ReferencedAnalyses(ctx context.Context, analysisIDs []string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := map[string]bool{}
	for _, id := range analysisIDs {
		want[id] = true
	}
	out := map[string]bool{}
	for _, l := range s.leads {
		if l.AnalysisID != nil && want[*l.AnalysisID] {
			out[*l.AnalysisID] = true
		}
	}
	return out, nil
}

// Purchases

func (s *Store) CreatePurchase(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.purchases {
		if existing.CheckoutSessionID == p.CheckoutSessionID {
			return domain.Purchase{}, domain.Conflict("memory.CreatePurchase", nil)
		}
	}
	p.ID = uuid.NewString()
	p.CreatedAt = s.tick()
	s.purchases[p.ID] = p
	return p, nil
}

func (s *Store) GetPurchase(ctx context.Context, id string) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[id]
	if !ok {
		return domain.Purchase{}, domain.NotFound("memory.GetPurchase", "purchase not found")
	}
	return p, nil
}

func (s *Store) PurchaseBySession(ctx context.Context, sessionID string) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.bySessionLocked(sessionID)
	if !ok {
		return domain.Purchase{}, domain.NotFound("memory.PurchaseBySession", "purchase not found")
	}
	return p, nil
}

func (s *Store) bySessionLocked(sessionID string) (domain.Purchase, bool) {
	for _, p := range s.purchases {
		if p.CheckoutSessionID == sessionID {
			return p, true
		}
	}
	return domain.Purchase{}, false
}

func (s *Store) CompletePurchase(ctx context.Context, sessionID, paymentIntentID string, at time.Time) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.bySessionLocked(sessionID)
	if !ok {
		return domain.Purchase{}, domain.NotFound("memory.CompletePurchase", "purchase not found")
	}
	if p.Status != domain.PurchaseCompleted && !p.Status.CanTransition(domain.PurchaseCompleted) {
		return p, nil
	}
	p.Status = domain.PurchaseCompleted
	if p.PaymentIntentID == nil && paymentIntentID != "" {
		p.PaymentIntentID = &paymentIntentID
	}
	if p.CompletedAt == nil {
		p.CompletedAt = &at
	}
	s.purchases[p.ID] = p
	return p, nil
}

func (s *Store) ExpirePurchase(ctx context.Context, sessionID string) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.bySessionLocked(sessionID)
	if !ok {
		return domain.Purchase{}, domain.NotFound("memory.ExpirePurchase", "purchase not found")
	}
	if p.Status.CanTransition(domain.PurchaseExpired) {
		p.Status = domain.PurchaseExpired
		s.purchases[p.ID] = p
	}
	return p, nil
}

func (s *Store) RefundPurchase(ctx context.Context, paymentIntentID string, at time.Time) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.purchases {
		if p.PaymentIntentID == nil || *p.PaymentIntentID != paymentIntentID {
			continue
		}
		if p.Status.CanTransition(domain.PurchaseRefunded) {
			p.Status = domain.PurchaseRefunded
			p.RefundedAt = &at
			s.purchases[id] = p
		}
		return p, nil
	}
	return domain.Purchase{}, domain.NotFound("memory.RefundPurchase", "purchase not found")
}

// Reports

func (s *Store) activeLocked(purchaseID string) (domain.PdfReport, bool) {
	var found domain.PdfReport
	ok := false
	for _, r := range s.reports {
		if r.PurchaseID == purchaseID && r.Status.Active() {
			if !ok || r.CreatedAt.After(found.CreatedAt) {
				found, ok = r, true
			}
		}
	}
	return found, ok
}

func (s *Store) CreatePendingReport(ctx context.Context, analysisID, purchaseID string) (domain.PdfReport, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.activeLocked(purchaseID); ok {
		return r, false, nil
	}
	r := domain.PdfReport{
		ID:         uuid.NewString(),
		AnalysisID: analysisID,
		PurchaseID: purchaseID,
		Status:     domain.ReportPending,
		CreatedAt:  s.tick(),
	}
	s.reports[r.ID] = r
	return r, true, nil
}

func (s *Store) ActiveReportForPurchase(ctx context.Context, purchaseID string) (domain.PdfReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.activeLocked(purchaseID)
	if !ok {
		return domain.PdfReport{}, domain.NotFound("memory.ActiveReportForPurchase", "report not found")
	}
	return r, nil
}

func (s *Store) LatestReportForPurchase(ctx context.Context, purchaseID string) (domain.PdfReport, error) {
	return s.latest("memory.LatestReportForPurchase", func(r domain.PdfReport) bool { return r.PurchaseID == purchaseID })
}

func (s *Store) LatestReportForAnalysis(ctx context.Context, analysisID string) (domain.PdfReport, error) {
	return s.latest("memory.LatestReportForAnalysis", func(r domain.PdfReport) bool { return r.AnalysisID == analysisID })
}

func (s *Store) latest(op string, match func(domain.PdfReport) bool) (domain.PdfReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found domain.PdfReport
	ok := false
	for _, r := range s.reports {
		if match(r) && (!ok || r.CreatedAt.After(found.CreatedAt)) {
			found, ok = r, true
		}
	}
	if !ok {
		return domain.PdfReport{}, domain.NotFound(op, "report not found")
	}
	return found, nil
}

func (s *Store) StartReport(ctx context.Context, reportID string, at time.Time) (domain.PdfReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[reportID]
	if !ok {
		return domain.PdfReport{}, domain.NotFound("memory.StartReport", "report not found")
	}
	if r.Status.CanTransition(domain.ReportGenerating) {
		r.Status = domain.ReportGenerating
		r.StartedAt = &at
		s.reports[reportID] = r
	}
	return r, nil
}

func (s *Store) CompleteReport(ctx context.Context, reportID string, pdfURL, storageKey *string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[reportID]
	if !ok {
		return false, domain.NotFound("memory.CompleteReport", "report not found")
	}
	if !r.Status.CanTransition(domain.ReportCompleted) {
		return false, nil
	}
	r.Status = domain.ReportCompleted
	r.PdfURL = pdfURL
	r.StorageKey = storageKey
	r.CompletedAt = &at
	r.ErrorMessage = nil
	s.reports[reportID] = r
	return true, nil
}

func (s *Store) FailReport(ctx context.Context, reportID, message string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[reportID]
	if !ok {
		return domain.NotFound("memory.FailReport", "report not found")
	}
	if !r.Status.CanTransition(domain.ReportFailed) {
		return nil
	}
	r.Status = domain.ReportFailed
	r.ErrorMessage = &message
	r.CompletedAt = &at
	s.reports[reportID] = r
	return nil
}

// Jobs

func (s *Store) stuckLocked(r domain.PdfReport, now time.Time, policy ports.ClaimPolicy) bool {
	switch r.Status {
	case domain.ReportPending:
		return !r.CreatedAt.After(now.Add(-policy.PendingGrace))
	case domain.ReportGenerating:
		return r.StartedAt == nil || !r.StartedAt.After(now.Add(-policy.StaleGenerating))
	}
	return false
}

func (s *Store) ClaimNext(ctx context.Context, policy ports.ClaimPolicy) (ports.ReportJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var candidates []domain.PdfReport
	for _, r := range s.reports {
		if r.Attempts < policy.MaxAttempts && s.stuckLocked(r, now, policy) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return ports.ReportJob{}, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].CreatedAt.Before(candidates[j].CreatedAt) })
	var r domain.PdfReport
	var p domain.Purchase
	found := false
	for _, c := range candidates {
		if p, found = s.purchases[c.PurchaseID]; found {
			r = c
			break
		}
	}
	if !found {
		return ports.ReportJob{}, false, nil
	}
	r.Status = domain.ReportGenerating
	r.StartedAt = &now
	r.Attempts++
	s.reports[r.ID] = r
	return ports.ReportJob{
		ReportID:   r.ID,
		AnalysisID: r.AnalysisID,
		PurchaseID: r.PurchaseID,
		Email:      p.Email,
		Attempts:   r.Attempts,
	}, true, nil
}

func (s *Store) ClaimOrphan(ctx context.Context, policy ports.ClaimPolicy) (ports.ReportJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	hasReport := map[string]bool{}
	for _, r := range s.reports {
		hasReport[r.PurchaseID] = true
	}
	var orphans []domain.Purchase
	for _, p := range s.purchases {
		if p.Status != domain.PurchaseCompleted || hasReport[p.ID] {
			continue
		}
		since := p.CreatedAt
		if p.CompletedAt != nil {
			since = *p.CompletedAt
		}
		if !since.After(now.Add(-policy.PendingGrace)) {
			orphans = append(orphans, p)
		}
	}
	if len(orphans) == 0 {
		return ports.ReportJob{}, false, nil
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].CreatedAt.Before(orphans[j].CreatedAt) })
	p := orphans[0]
	r := domain.PdfReport{
		ID:         uuid.NewString(),
		AnalysisID: p.AnalysisID,
		PurchaseID: p.ID,
		Status:     domain.ReportGenerating,
		Attempts:   1,
		StartedAt:  &now,
		CreatedAt:  s.tick(),
	}
	s.reports[r.ID] = r
	return ports.ReportJob{
		ReportID:   r.ID,
		AnalysisID: r.AnalysisID,
		PurchaseID: p.ID,
		Email:      p.Email,
		Attempts:   1,
	}, true, nil
}

func (s *Store) FailExhausted(ctx context.Context, policy ports.ClaimPolicy) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, r := range s.reports {
		if r.Attempts >= policy.MaxAttempts && s.stuckLocked(r, now, policy) {
			msg := "generation attempts exhausted"
			r.Status = domain.ReportFailed
			r.ErrorMessage = &msg
			r.CompletedAt = &now
			s.reports[id] = r
			n++
		}
	}
	return n, nil
}
