package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/adapters/memory"
	"readiness/internal/domain"
	"readiness/internal/services/analyses"
	"readiness/internal/services/fulfillment"
	"readiness/internal/services/leads"
)

type fakeFulfillment struct {
	InitiateFunc func(ctx context.Context, analysisID, email string) (fulfillment.CheckoutResult, error)
	VerifyFunc   func(ctx context.Context, sessionID string) (fulfillment.Verification, error)
	EventFunc    func(ctx context.Context, payload []byte, signature string) (fulfillment.EventResult, error)
	GenerateFunc func(ctx context.Context, req fulfillment.GenerateRequest) (fulfillment.GenerateResult, error)
	StatusFunc   func(ctx context.Context, q fulfillment.StatusQuery) (domain.FulfillmentStatus, error)
	PreviewFunc  func(ctx context.Context, analysisID string) ([]byte, error)
	RedriveFunc  func(ctx context.Context, purchaseID string) (fulfillment.GenerateResult, error)
}

func (f *fakeFulfillment) InitiateCheckout(ctx context.Context, analysisID, email string) (fulfillment.CheckoutResult, error) {
	return f.InitiateFunc(ctx, analysisID, email)
}

func (f *fakeFulfillment) VerifyCheckout(ctx context.Context, sessionID string) (fulfillment.Verification, error) {
	return f.VerifyFunc(ctx, sessionID)
}

func (f *fakeFulfillment) HandlePaymentEvent(ctx context.Context, payload []byte, signature string) (fulfillment.EventResult, error) {
	return f.EventFunc(ctx, payload, signature)
}

func (f *fakeFulfillment) GenerateReport(ctx context.Context, req fulfillment.GenerateRequest) (fulfillment.GenerateResult, error) {
	return f.GenerateFunc(ctx, req)
}

func (f *fakeFulfillment) GetStatus(ctx context.Context, q fulfillment.StatusQuery) (domain.FulfillmentStatus, error) {
	return f.StatusFunc(ctx, q)
}

func (f *fakeFulfillment) PreviewReport(ctx context.Context, analysisID string) ([]byte, error) {
	return f.PreviewFunc(ctx, analysisID)
}

func (f *fakeFulfillment) RedriveReport(ctx context.Context, purchaseID string) (fulfillment.GenerateResult, error) {
	return f.RedriveFunc(ctx, purchaseID)
}

const adminSecret = "admin-secret"

func newTestServer(t *testing.T, f *fakeFulfillment) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.New()
	store.PutAnalysis(domain.Analysis{
		ID: "A1", URL: "https://example.com", Domain: "example.com", OverallScore: 72,
		Checks: []domain.CheckResult{{ID: "llms", Label: "llms.txt", Status: domain.CheckFail, Score: 10}},
	})
	srv := New(f, leads.New(store, store), analyses.New(store), AdminAuth{Secret: []byte(adminSecret)})
	return srv.Routes(), store
}

func newTestServerWithAdmin(t *testing.T, f *fakeFulfillment, admin AdminAuth) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.New()
	srv := New(f, leads.New(store, store), analyses.New(store), admin)
	return srv.Routes(), store
}

func do(h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func bearer(t *testing.T, secret string) map[string]string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t, &fakeFulfillment{})
	rec := do(h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestPostCheckout(t *testing.T) {
	f := &fakeFulfillment{InitiateFunc: func(ctx context.Context, analysisID, email string) (fulfillment.CheckoutResult, error) {
		if analysisID == "missing" {
			return fulfillment.CheckoutResult{}, domain.NotFound("fulfillment.InitiateCheckout", "analysis not found")
		}
		if analysisID == "boom" {
			return fulfillment.CheckoutResult{}, domain.Upstream("stripe.CreateSession", errors.New("api down"))
		}
		return fulfillment.CheckoutResult{CheckoutURL: "https://pay.example/cs_1", SessionID: "cs_1"}, nil
	}}
	h, _ := newTestServer(t, f)

	rec := do(h, http.MethodPost, "/checkout", `{"analysisId":"A1","email":"u@x.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "https://pay.example/cs_1", body["checkoutUrl"])
	assert.Equal(t, "cs_1", body["sessionId"])

	rec = do(h, http.MethodPost, "/checkout", `{"analysisId":"A1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/checkout", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/checkout", `{"analysisId":"missing","email":"u@x.com"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "analysis not found", decodeBody(t, rec)["error"])

	rec = do(h, http.MethodPost, "/checkout", `{"analysisId":"boom","email":"u@x.com"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to create checkout session", decodeBody(t, rec)["error"], "provider detail is not leaked")
}

func TestCheckoutVerify(t *testing.T) {
	paid := false
	f := &fakeFulfillment{VerifyFunc: func(ctx context.Context, sessionID string) (fulfillment.Verification, error) {
		if !paid {
			return fulfillment.Verification{}, nil
		}
		return fulfillment.Verification{Paid: true, Email: "u@x.com", Domain: "example.com", AnalysisID: "A1", PdfStatus: "pending"}, nil
	}}
	h, _ := newTestServer(t, f)

	rec := do(h, http.MethodGet, "/checkout/verify", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/checkout/verify?session_id=cs_1", "", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "processing", decodeBody(t, rec)["status"])

	paid = true
	rec = do(h, http.MethodGet, "/checkout/verify?session_id=cs_1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "example.com", body["domain"])
	assert.Equal(t, "pending", body["pdfStatus"])
}

func TestPaymentWebhook(t *testing.T) {
	var gotPayload []byte
	var gotSig string
	f := &fakeFulfillment{EventFunc: func(ctx context.Context, payload []byte, signature string) (fulfillment.EventResult, error) {
		gotPayload, gotSig = payload, signature
		if signature == "bad" {
			return fulfillment.EventResult{}, domain.InvalidSignature("stripe.ParseEvent", errors.New("mismatch"))
		}
		if signature == "db" {
			return fulfillment.EventResult{}, domain.Persistence("postgres.CompletePurchase", errors.New("conn reset"))
		}
		return fulfillment.EventResult{Kind: "checkout_completed"}, nil
	}}
	h, _ := newTestServer(t, f)
	raw := `{"id":"evt_1",  "type":"checkout.session.completed"}`

	rec := do(h, http.MethodPost, "/webhooks/payment", raw, map[string]string{"Stripe-Signature": "t=1,v1=ok"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["received"])
	assert.Equal(t, raw, string(gotPayload), "body reaches the verifier byte for byte")
	assert.Equal(t, "t=1,v1=ok", gotSig)

	gotPayload = nil
	rec = do(h, http.MethodPost, "/webhooks/payment", raw, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, gotPayload, "unsigned requests never reach the handler")

	rec = do(h, http.MethodPost, "/webhooks/payment", raw, map[string]string{"Stripe-Signature": "bad"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/webhooks/payment", raw, map[string]string{"Stripe-Signature": "db"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code, "provider retries on persistence failure")

	gotPayload = nil
	huge := `{"pad":"` + strings.Repeat("x", maxWebhookBody) + `"}`
	rec = do(h, http.MethodPost, "/webhooks/payment", huge, map[string]string{"Stripe-Signature": "t=1,v1=ok"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Nil(t, gotPayload)
}

func TestGenerate(t *testing.T) {
	url := "https://cdn.example.com/r.pdf"
	var got fulfillment.GenerateRequest
	f := &fakeFulfillment{GenerateFunc: func(ctx context.Context, req fulfillment.GenerateRequest) (fulfillment.GenerateResult, error) {
		got = req
		switch req.AnalysisID {
		case "missing":
			return fulfillment.GenerateResult{}, domain.NotFound("fulfillment.GenerateReport", "analysis not found")
		case "broken":
			return fulfillment.GenerateResult{}, errors.New("render: font missing")
		case "nomail":
			return fulfillment.GenerateResult{
				ReportID:    "R1",
				SideEffects: fulfillment.SideEffects{{Step: fulfillment.StepSendEmail, Err: errors.New("smtp")}},
			}, nil
		}
		return fulfillment.GenerateResult{ReportID: "R1", PdfURL: &url}, nil
	}}
	h, _ := newTestServer(t, f)

	rec := do(h, http.MethodPost, "/pdf/generate", `{"analysisId":"A1","purchaseId":"P1","email":"u@x.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, url, body["pdfUrl"])
	assert.Equal(t, "PDF generated and sent successfully", body["message"])
	assert.Equal(t, fulfillment.GenerateRequest{AnalysisID: "A1", PurchaseID: "P1", Email: "u@x.com"}, got)

	rec = do(h, http.MethodPost, "/pdf/generate", `{"analysisId":"nomail","email":"u@x.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Nil(t, body["pdfUrl"])
	assert.Contains(t, body["message"], "email delivery failed")

	rec = do(h, http.MethodPost, "/pdf/generate", `{"email":"u@x.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/pdf/generate", `{"analysisId":"missing","email":"u@x.com"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodPost, "/pdf/generate", `{"analysisId":"broken","email":"u@x.com"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to generate PDF", decodeBody(t, rec)["error"])
}

func TestStatus(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	url := "https://cdn.example.com/r.pdf"
	f := &fakeFulfillment{StatusFunc: func(ctx context.Context, q fulfillment.StatusQuery) (domain.FulfillmentStatus, error) {
		if q.SessionID == "" && q.AnalysisID == "" {
			return domain.FulfillmentStatus{}, domain.Validation("fulfillment.GetStatus", "session_id or analysis_id is required")
		}
		if q.SessionID == "cs_new" {
			return domain.FulfillmentStatus{Status: domain.StatusNotFound}, nil
		}
		if q.SessionID == "cs_paid" {
			return domain.FulfillmentStatus{Status: "pending", CreatedAt: &created}, nil
		}
		return domain.FulfillmentStatus{Status: "completed", PdfURL: &url, CreatedAt: &created, CompletedAt: &created}, nil
	}}
	h, _ := newTestServer(t, f)

	rec := do(h, http.MethodGet, "/pdf/status", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/pdf/status?session_id=cs_new", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, "nothing stored yet is not an error")
	body := decodeBody(t, rec)
	assert.Equal(t, "not_found", body["status"])
	assert.Equal(t, "PDF report not found", body["message"])

	rec = do(h, http.MethodGet, "/pdf/status?session_id=cs_paid", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "pending", body["status"])
	for _, key := range []string{"pdfUrl", "completedAt"} {
		v, present := body[key]
		assert.True(t, present, "%s is sent as null until known", key)
		assert.Nil(t, v)
	}
	assert.NotContains(t, body, "message")

	rec = do(h, http.MethodGet, "/pdf/status?analysis_id=A1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, url, body["pdfUrl"])
	assert.Equal(t, "2026-05-01T12:00:00Z", body["createdAt"])
	assert.Equal(t, "2026-05-01T12:00:00Z", body["completedAt"])
}

func TestPreviewRequiresAdminToken(t *testing.T) {
	f := &fakeFulfillment{PreviewFunc: func(ctx context.Context, analysisID string) ([]byte, error) {
		if analysisID != "A1" {
			return nil, domain.NotFound("fulfillment.PreviewReport", "analysis not found")
		}
		return []byte("%PDF-1.3 preview"), nil
	}}
	h, _ := newTestServer(t, f)

	rec := do(h, http.MethodGet, "/pdf/preview?id=A1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/pdf/preview?id=A1", "", bearer(t, "wrong-secret"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodGet, "/pdf/preview?id=A1", "", bearer(t, adminSecret))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3 preview", rec.Body.String())

	rec = do(h, http.MethodGet, "/pdf/preview?id=nope", "", bearer(t, adminSecret))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/pdf/preview", "", bearer(t, adminSecret))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminAuthWithoutSecret(t *testing.T) {
	f := &fakeFulfillment{PreviewFunc: func(ctx context.Context, analysisID string) ([]byte, error) {
		return []byte("%PDF-1.3 preview"), nil
	}}

	h, _ := newTestServerWithAdmin(t, f, AdminAuth{})
	rec := do(h, http.MethodGet, "/pdf/preview?id=A1", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admin endpoints are disabled", decodeBody(t, rec)["error"])

	h, _ = newTestServerWithAdmin(t, f, AdminAuth{AllowUnauthenticated: true})
	rec = do(h, http.MethodGet, "/pdf/preview?id=A1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "unsecured routes ignore admin settings")
}

func TestAdminAuthRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "operator"})
	signed, err := token.SignedString([]byte(adminSecret))
	require.NoError(t, err)

	called := false
	f := &fakeFulfillment{RedriveFunc: func(ctx context.Context, purchaseID string) (fulfillment.GenerateResult, error) {
		called = true
		return fulfillment.GenerateResult{}, nil
	}}
	h, _ := newTestServer(t, f)
	rec := do(h, http.MethodPost, "/admin/purchases/P1/redrive", "", map[string]string{"Authorization": "Bearer " + signed})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRedrive(t *testing.T) {
	f := &fakeFulfillment{RedriveFunc: func(ctx context.Context, purchaseID string) (fulfillment.GenerateResult, error) {
		if purchaseID != "P1" {
			return fulfillment.GenerateResult{}, domain.NotFound("fulfillment.RedriveReport", "purchase not found")
		}
		return fulfillment.GenerateResult{ReportID: "R2"}, nil
	}}
	h, _ := newTestServer(t, f)

	rec := do(h, http.MethodPost, "/admin/purchases/P1/redrive", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/admin/purchases/P1/redrive", "", bearer(t, adminSecret))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "R2", decodeBody(t, rec)["reportId"])

	rec = do(h, http.MethodPost, "/admin/purchases/P9/redrive", "", bearer(t, adminSecret))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalysisGetAndPatch(t *testing.T) {
	h, _ := newTestServer(t, &fakeFulfillment{})

	rec := do(h, http.MethodGet, "/analysis/A1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	a := body["analysis"].(map[string]any)
	assert.Equal(t, "example.com", a["domain"])
	assert.EqualValues(t, 72, a["overallScore"])
	assert.Nil(t, a["aiInsights"])
	assert.Len(t, a["checks"], 1)

	rec = do(h, http.MethodGet, "/analysis/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodPatch, "/analysis/A1", `{"overallScore":1,"enhancedScore":80,"aiInsights":{"k":"v"}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	a = decodeBody(t, rec)["analysis"].(map[string]any)
	assert.EqualValues(t, 72, a["overallScore"], "fields outside the allow-list are ignored")
	assert.EqualValues(t, 80, a["enhancedScore"])
	assert.Equal(t, map[string]any{"k": "v"}, a["aiInsights"])

	rec = do(h, http.MethodPatch, "/analysis/A1", `{"overallScore":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no valid fields to update", decodeBody(t, rec)["error"])
}

func TestEmailCapture(t *testing.T) {
	h, store := newTestServer(t, &fakeFulfillment{})

	rec := do(h, http.MethodPost, "/email-capture", `{
		"email":"a@b.com","analysisId":"A1","privacyAccepted":true,
		"consentTimestamp":"2026-01-02T03:04:05Z",
		"utmParams":{"utm_source":"newsletter","referrer":"https://ref.example"}
	}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Lead captured", body["message"])
	leadID := body["leadId"]

	rec = do(h, http.MethodPost, "/email-capture", `{"email":"c@d.com","analysisId":"A1","companyName":"Acme"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Lead updated", body["message"])
	assert.Equal(t, leadID, body["leadId"])

	all := store.Leads()
	require.Len(t, all, 1)
	assert.Equal(t, "c@d.com", all[0].Email)
	require.NotNil(t, all[0].Attribution.Source)
	assert.Equal(t, "newsletter", *all[0].Attribution.Source)
	assert.Nil(t, all[0].Attribution.Medium)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), all[0].ConsentAt.UTC())

	rec = do(h, http.MethodPost, "/email-capture", `{"email":"nope"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDataDeletionDoesNotDiscloseExistence(t *testing.T) {
	h, store := newTestServer(t, &fakeFulfillment{})
	a1 := "A1"
	_, err := store.CreateLead(context.Background(), domain.Lead{Email: "a@b.com", AnalysisID: &a1})
	require.NoError(t, err)

	known := do(h, http.MethodPost, "/data-deletion", `{"email":"a@b.com","reason":"gdpr"}`, nil)
	unknown := do(h, http.MethodPost, "/data-deletion", `{"email":"ghost@b.com"}`, nil)
	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
	assert.Equal(t, true, decodeBody(t, known)["success"])

	assert.Empty(t, store.Leads())
	_, err = store.GetAnalysis(context.Background(), "A1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rec := do(h, http.MethodPost, "/data-deletion", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.Validation("op", "bad"), http.StatusBadRequest},
		{domain.InvalidSignature("op", nil), http.StatusBadRequest},
		{domain.NotFound("op", "gone"), http.StatusNotFound},
		{failed(domain.NotFound("op", "gone"), "failed"), http.StatusNotFound},
		{domain.Conflict("op", errors.New("dup")), http.StatusInternalServerError},
		{domain.Persistence("op", errors.New("conn reset")), http.StatusInternalServerError},
		{domain.Upstream("op", errors.New("api down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusFor(c.err), c.err.Error())
	}
}
