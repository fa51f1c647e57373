package httpadapter

import (
	"context"
	"io"
	"net/http"

	api "readiness/internal/api"
)

const maxWebhookBody = 1 << 20

func (s *Server) PostCheckout(ctx context.Context, req api.PostCheckoutRequestObject) (api.PostCheckoutResponseObject, error) {
	if req.Body.AnalysisId == "" || req.Body.Email == "" {
		return api.PostCheckout400JSONResponse{Error: "analysisId and email are required"}, nil
	}
	res, err := s.fulfillment.InitiateCheckout(ctx, req.Body.AnalysisId, req.Body.Email)
	if err != nil {
		return nil, failed(err, "failed to create checkout session")
	}
	return api.PostCheckout200JSONResponse{CheckoutUrl: res.CheckoutURL, SessionId: res.SessionID}, nil
}

func (s *Server) GetCheckoutVerify(ctx context.Context, req api.GetCheckoutVerifyRequestObject) (api.GetCheckoutVerifyResponseObject, error) {
	v, err := s.fulfillment.VerifyCheckout(ctx, req.Params.SessionId)
	if err != nil {
		return nil, failed(err, "failed to verify payment")
	}
	if !v.Paid {
		return api.GetCheckoutVerify202JSONResponse{Status: "processing", Message: "Payment is still processing"}, nil
	}
	return api.GetCheckoutVerify200JSONResponse{
		Success:    true,
		Email:      v.Email,
		Domain:     v.Domain,
		AnalysisId: v.AnalysisID,
		PdfStatus:  v.PdfStatus,
	}, nil
}

// PostWebhooksPayment passes the raw body through untouched; the signature is
// computed over the exact bytes the provider sent.
func (s *Server) PostWebhooksPayment(ctx context.Context, req api.PostWebhooksPaymentRequestObject) (api.PostWebhooksPaymentResponseObject, error) {
	payload, err := io.ReadAll(io.LimitReader(req.Body, maxWebhookBody+1))
	if err != nil {
		return nil, &runtimeError{code: http.StatusBadRequest, msg: "unreadable body"}
	}
	if len(payload) > maxWebhookBody {
		return api.PostWebhooksPayment413JSONResponse{Error: "payload too large"}, nil
	}
	if _, err := s.fulfillment.HandlePaymentEvent(ctx, payload, req.Params.StripeSignature); err != nil {
		return nil, failed(err, "webhook handler failed")
	}
	return api.PostWebhooksPayment200JSONResponse{Received: true}, nil
}
