package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"readiness/internal/domain"
	"readiness/internal/metrics"
	"readiness/internal/ports"
)

// PreviewEmail is the recipient printed on preview renders.
const PreviewEmail = "preview@example.com"

// errReportSuperseded marks a delivered report whose row left generating
// mid-run, for example when the sweep failed it after exhausting attempts.
var errReportSuperseded = domain.Conflict("fulfillment.GenerateReport", errors.New("report is no longer generating"))

type GenerateRequest struct {
	AnalysisID string
	PurchaseID string
	Email      string
}

type GenerateResult struct {
	// ReportID is empty for untracked generation.
	ReportID    string
	PdfURL      *string
	SideEffects SideEffects
}

func storageKey(analysisID string) string {
	return fmt.Sprintf("reports/%s-%s.pdf", analysisID, uuid.NewString())
}

// AttachmentName is the file name the report is emailed under.
func AttachmentName(site string) string {
	return "ai-readiness-report-" + strings.ReplaceAll(site, ".", "-") + ".pdf"
}

// GenerateReport renders the analysis, stores the document and emails it.
//
// With a purchase id the purchase's active report is tracked through
// generating to completed; a missing or failed report is replaced by a new
// pending one. A report that already completed is re-rendered and re-sent
// without touching its record. Without a purchase id nothing is tracked.
//
// Only a missing analysis or a render failure fail the call. Storage and email
// failures are recorded as side effects and the report still completes.
func (s *Service) GenerateReport(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	const op = "fulfillment.GenerateReport"
	req.AnalysisID, req.Email = strings.TrimSpace(req.AnalysisID), strings.TrimSpace(req.Email)
	if req.AnalysisID == "" || req.Email == "" {
		return GenerateResult{}, domain.Validation(op, "analysisId and email are required")
	}

	var res GenerateResult
	fields := log.Fields{"analysis_id": req.AnalysisID}
	var tracked *domain.PdfReport
	if req.PurchaseID != "" {
		fields["purchase_id"] = req.PurchaseID
		r, err := s.beginTracked(ctx, req)
		if err != nil {
			return GenerateResult{}, err
		}
		if r != nil {
			tracked = r
			res.ReportID = r.ID
			fields["report_id"] = r.ID
		}
	}
	defer func() { res.SideEffects.report(op, fields) }()

	analysis, err := s.store.GetAnalysis(ctx, req.AnalysisID)
	if err != nil {
		// Any other error leaves the report generating for the stale sweep.
		if tracked != nil && isNotFound(err) {
			res.SideEffects.add(StepFailReport, s.store.FailReport(ctx, tracked.ID, "analysis not found", s.now()))
		}
		return res, err
	}

	start := time.Now()
	document, err := s.renderer.Render(analysis, req.Email, s.now())
	metrics.RenderDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReportsTotal.WithLabelValues("failed").Inc()
		if tracked != nil {
			res.SideEffects.add(StepFailReport, s.store.FailReport(ctx, tracked.ID, "PDF generation failed", s.now()))
		}
		log.WithFields(fields).WithError(err).Error("report render failed")
		return res, fmt.Errorf("%s: render: %w", op, err)
	}

	site := analysis.SiteDomain()
	key := s.newKey(analysis.ID)
	var storedKey *string
	url, err := s.delivery.Store(ctx, key, document)
	res.SideEffects.add(StepStoreDocument, err)
	if err == nil {
		res.PdfURL, storedKey = &url, &key
	}

	res.SideEffects.add(StepSendEmail, s.delivery.SendReport(ctx, ports.ReportEmail{
		To:           req.Email,
		Domain:       site,
		OverallScore: analysis.OverallScore,
		CheckCount:   len(analysis.Checks),
		PdfURL:       res.PdfURL,
		Filename:     AttachmentName(site),
		Document:     document,
	}))

	result := "completed"
	if tracked != nil {
		changed, err := s.store.CompleteReport(ctx, tracked.ID, res.PdfURL, storedKey, s.now())
		if err == nil && !changed {
			err = errReportSuperseded
			result = "superseded"
		}
		res.SideEffects.add(StepCompleteReport, err)
	}
	metrics.ReportsTotal.WithLabelValues(result).Inc()
	log.WithFields(fields).WithField("bytes", len(document)).WithField("stored", res.PdfURL != nil).Info("report generated")
	return res, nil
}

// beginTracked resolves the purchase's report and moves it to generating. It
// returns nil when generation should run without tracking.
func (s *Service) beginTracked(ctx context.Context, req GenerateRequest) (*domain.PdfReport, error) {
	const op = "fulfillment.GenerateReport"
	purchase, err := s.store.GetPurchase(ctx, req.PurchaseID)
	if isNotFound(err) {
		return nil, domain.NotFound(op, "purchase not found")
	}
	if err != nil {
		return nil, err
	}
	if purchase.AnalysisID != req.AnalysisID {
		return nil, domain.Validation(op, "purchase does not belong to analysis")
	}
	if purchase.Status != domain.PurchaseCompleted {
		return nil, domain.Validation(op, "purchase is not completed")
	}

	report, err := s.store.ActiveReportForPurchase(ctx, purchase.ID)
	if isNotFound(err) {
		report, _, err = s.store.CreatePendingReport(ctx, purchase.AnalysisID, purchase.ID)
	}
	if err != nil {
		return nil, err
	}
	if report.Status == domain.ReportCompleted {
		return nil, nil
	}

	started, err := s.store.StartReport(ctx, report.ID, s.now())
	if err != nil {
		return nil, err
	}
	if started.Status != domain.ReportGenerating {
		return nil, nil
	}
	return &started, nil
}

// RedriveReport regenerates the report of a completed purchase for its buyer.
func (s *Service) RedriveReport(ctx context.Context, purchaseID string) (GenerateResult, error) {
	const op = "fulfillment.RedriveReport"
	if strings.TrimSpace(purchaseID) == "" {
		return GenerateResult{}, domain.Validation(op, "purchase id is required")
	}
	purchase, err := s.store.GetPurchase(ctx, purchaseID)
	if isNotFound(err) {
		return GenerateResult{}, domain.NotFound(op, "purchase not found")
	}
	if err != nil {
		return GenerateResult{}, err
	}
	log.WithFields(log.Fields{"purchase_id": purchase.ID, "analysis_id": purchase.AnalysisID}).Info("report redrive requested")
	return s.GenerateReport(ctx, GenerateRequest{
		AnalysisID: purchase.AnalysisID,
		PurchaseID: purchase.ID,
		Email:      purchase.Email,
	})
}

// ProcessJob runs a report claimed by the reconciliation sweep. Jobs that can
// never succeed are failed; other errors leave the report for the next sweep.
func (s *Service) ProcessJob(ctx context.Context, job ports.ReportJob) error {
	_, err := s.GenerateReport(ctx, GenerateRequest{
		AnalysisID: job.AnalysisID,
		PurchaseID: job.PurchaseID,
		Email:      job.Email,
	})
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		var de *domain.Error
		msg := err.Error()
		if errors.As(err, &de) {
			msg = de.Message()
		}
		if ferr := s.store.FailReport(ctx, job.ReportID, msg, s.now()); ferr != nil {
			return errors.Join(err, ferr)
		}
	}
	return err
}

// PreviewReport renders an analysis without payment or persistence.
func (s *Service) PreviewReport(ctx context.Context, analysisID string) ([]byte, error) {
	const op = "fulfillment.PreviewReport"
	if strings.TrimSpace(analysisID) == "" {
		return nil, domain.Validation(op, "analysis id is required")
	}
	analysis, err := s.store.GetAnalysis(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	document, err := s.renderer.Render(analysis, PreviewEmail, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: render: %w", op, err)
	}
	return document, nil
}
