package httpadapter

import (
	"bytes"
	"context"

	api "readiness/internal/api"
	"readiness/internal/domain"
	"readiness/internal/services/fulfillment"
)

func generated(res fulfillment.GenerateResult) api.GenerateResponse {
	msg := "PDF generated and sent successfully"
	if res.SideEffects.Failed(fulfillment.StepSendEmail) {
		msg = "PDF generated; email delivery failed"
	}
	out := api.GenerateResponse{Success: true, PdfUrl: res.PdfURL, Message: msg}
	if res.ReportID != "" {
		out.ReportId = &res.ReportID
	}
	return out
}

func (s *Server) PostPdfGenerate(ctx context.Context, req api.PostPdfGenerateRequestObject) (api.PostPdfGenerateResponseObject, error) {
	if req.Body.AnalysisId == "" || req.Body.Email == "" {
		return api.PostPdfGenerate400JSONResponse{Error: "analysisId and email are required"}, nil
	}
	res, err := s.fulfillment.GenerateReport(ctx, fulfillment.GenerateRequest{
		AnalysisID: req.Body.AnalysisId,
		PurchaseID: deref(req.Body.PurchaseId),
		Email:      req.Body.Email,
	})
	if err != nil {
		return nil, failed(err, "failed to generate PDF")
	}
	return api.PostPdfGenerate200JSONResponse(generated(res)), nil
}

// GetPdfStatus always carries pdfUrl, createdAt and completedAt, null until
// they are known.
func (s *Server) GetPdfStatus(ctx context.Context, req api.GetPdfStatusRequestObject) (api.GetPdfStatusResponseObject, error) {
	st, err := s.fulfillment.GetStatus(ctx, fulfillment.StatusQuery{
		SessionID:  deref(req.Params.SessionId),
		AnalysisID: deref(req.Params.AnalysisId),
	})
	if err != nil {
		return nil, failed(err, "failed to check PDF status")
	}
	out := api.GetPdfStatus200JSONResponse{
		Status:      api.ReportStatusStatus(st.Status),
		PdfUrl:      st.PdfURL,
		CreatedAt:   st.CreatedAt,
		CompletedAt: st.CompletedAt,
	}
	if st.Status == domain.StatusNotFound {
		msg := "PDF report not found"
		out.Message = &msg
	}
	return out, nil
}

func (s *Server) GetPdfPreview(ctx context.Context, req api.GetPdfPreviewRequestObject) (api.GetPdfPreviewResponseObject, error) {
	doc, err := s.fulfillment.PreviewReport(ctx, req.Params.Id)
	if err != nil {
		return nil, failed(err, "failed to generate PDF preview")
	}
	return api.GetPdfPreview200ApplicationpdfResponse{
		Body:          bytes.NewReader(doc),
		ContentLength: int64(len(doc)),
		Headers: api.GetPdfPreview200ResponseHeaders{
			ContentDisposition: `inline; filename="preview-` + req.Params.Id + `.pdf"`,
		},
	}, nil
}

func (s *Server) PostAdminPurchasesIdRedrive(ctx context.Context, req api.PostAdminPurchasesIdRedriveRequestObject) (api.PostAdminPurchasesIdRedriveResponseObject, error) {
	res, err := s.fulfillment.RedriveReport(ctx, req.Id)
	if err != nil {
		return nil, failed(err, "failed to redrive report")
	}
	return api.PostAdminPurchasesIdRedrive200JSONResponse(generated(res)), nil
}
