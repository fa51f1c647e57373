package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	api "readiness/internal/api"
	"readiness/internal/domain"
	"readiness/internal/services/fulfillment"
	"readiness/internal/services/leads"
)

// Fulfillment is the purchase-to-delivery flow behind the checkout, webhook
// and report routes.
type Fulfillment interface {
	InitiateCheckout(ctx context.Context, analysisID, email string) (fulfillment.CheckoutResult, error)
	VerifyCheckout(ctx context.Context, sessionID string) (fulfillment.Verification, error)
	HandlePaymentEvent(ctx context.Context, payload []byte, signature string) (fulfillment.EventResult, error)
	GenerateReport(ctx context.Context, req fulfillment.GenerateRequest) (fulfillment.GenerateResult, error)
	GetStatus(ctx context.Context, q fulfillment.StatusQuery) (domain.FulfillmentStatus, error)
	PreviewReport(ctx context.Context, analysisID string) ([]byte, error)
	RedriveReport(ctx context.Context, purchaseID string) (fulfillment.GenerateResult, error)
}

type Leads interface {
	CaptureEmail(ctx context.Context, req leads.CaptureRequest) (leads.CaptureResult, error)
	DeleteData(ctx context.Context, email, reason string) (int, error)
}

type Analyses interface {
	Get(ctx context.Context, id string) (domain.Analysis, error)
	PatchInsights(ctx context.Context, id string, patch domain.InsightsPatch) (domain.Analysis, error)
}

// Server implements the generated StrictServerInterface.
type Server struct {
	fulfillment Fulfillment
	leads       Leads
	analyses    Analyses
	admin       AdminAuth
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(f Fulfillment, l Leads, a Analyses, admin AdminAuth) *Server {
	return &Server{fulfillment: f, leads: l, analyses: a, admin: admin}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.admin.Strict}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: paramError,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("write response")
	}
}

// runtimeError is a response decided on before reaching a service.
type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

// opError pairs a service error with the message shown when the failure is
// not the caller's.
type opError struct {
	err      error
	fallback string
}

func (e *opError) Error() string { return e.fallback + ": " + e.err.Error() }

func (e *opError) Unwrap() error { return e.err }

func failed(err error, fallback string) error {
	return &opError{err: err, fallback: fallback}
}

// statusFor maps an error kind onto an HTTP status.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrValidation, domain.ErrInvalidSignature:
		return http.StatusBadRequest
	case domain.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the caller-safe message for client errors and a
// fixed one for everything else, which is logged instead.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(err)
	msg := fallback
	if status < http.StatusInternalServerError {
		var de *domain.Error
		if errors.As(err, &de) {
			msg = de.Message()
		}
	} else {
		log.WithFields(log.Fields{
			"path":       r.URL.Path,
			"request_id": middleware.GetReqID(r.Context()),
		}).WithError(err).Error(fallback)
	}
	writeJSON(w, status, api.Error{Error: msg})
}

func responseError(w http.ResponseWriter, r *http.Request, err error) {
	var re *runtimeError
	if errors.As(err, &re) {
		writeJSON(w, re.code, api.Error{Error: re.msg})
		return
	}
	fallback := "internal server error"
	var oe *opError
	if errors.As(err, &oe) {
		fallback = oe.fallback
	}
	writeError(w, r, err, fallback)
}

func requestError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithField("path", r.URL.Path).WithError(err).Debug("bad request body")
	writeJSON(w, http.StatusBadRequest, api.Error{Error: "invalid JSON body"})
}

func paramError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
