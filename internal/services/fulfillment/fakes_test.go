package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"readiness/internal/adapters/memory"
	"readiness/internal/domain"
	"readiness/internal/ports"
)

const validSig = "t=1,v1=ok"

// fakeGateway decodes test events from JSON and accepts only validSig.
type fakeGateway struct {
	mu        sync.Mutex
	created   []domain.CheckoutRequest
	createErr error
	verify    map[string]domain.SessionVerification
}

func (g *fakeGateway) CreateSession(_ context.Context, req domain.CheckoutRequest) (domain.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return domain.CheckoutSession{}, g.createErr
	}
	g.created = append(g.created, req)
	id := fmt.Sprintf("cs_test_%d", len(g.created))
	return domain.CheckoutSession{ID: id, URL: "https://pay.example.com/" + id}, nil
}

func (g *fakeGateway) VerifySession(_ context.Context, id string) (domain.SessionVerification, error) {
	v, ok := g.verify[id]
	if !ok {
		return domain.SessionVerification{}, domain.NotFound("fake.VerifySession", "checkout session not found")
	}
	return v, nil
}

type testEvent struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	SessionID  string `json:"session_id"`
	Intent     string `json:"payment_intent"`
	AnalysisID string `json:"analysis_id"`
	Email      string `json:"email"`
	Amount     int64  `json:"amount"`
}

func (g *fakeGateway) ParseEvent(payload []byte, signature string) (domain.PaymentEvent, error) {
	if signature != validSig {
		return nil, domain.InvalidSignature("fake.ParseEvent", nil)
	}
	var e testEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, domain.InvalidSignature("fake.ParseEvent", err)
	}
	h := domain.EventHeader{ID: e.ID, Type: e.Kind}
	switch e.Kind {
	case "checkout.session.completed":
		return domain.CheckoutCompleted{EventHeader: h, SessionID: e.SessionID, PaymentIntentID: e.Intent,
			AnalysisID: e.AnalysisID, Email: e.Email, AmountTotal: e.Amount, Currency: "usd"}, nil
	case "checkout.session.expired":
		return domain.CheckoutExpired{EventHeader: h, SessionID: e.SessionID}, nil
	case "charge.refunded":
		return domain.ChargeRefunded{EventHeader: h, ChargeID: "ch_1", PaymentIntentID: e.Intent}, nil
	}
	return domain.OtherEvent{EventHeader: h}, nil
}

func payload(t *testing.T, e testEvent) []byte {
	t.Helper()
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return b
}

type fakeRenderer struct {
	err    error
	calls  int
	during func()
}

func (r *fakeRenderer) Render(a domain.Analysis, email string, at time.Time) ([]byte, error) {
	r.calls++
	if r.during != nil {
		r.during()
	}
	if r.err != nil {
		return nil, r.err
	}
	return []byte(fmt.Sprintf("%%PDF %s %s %d", a.ID, email, at.Unix())), nil
}

type fakeDelivery struct {
	mu       sync.Mutex
	storeErr error
	sendErr  error
	stored   []string
	emails   []ports.ReportEmail
}

func (d *fakeDelivery) Store(_ context.Context, key string, _ []byte) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.storeErr != nil {
		return "", d.storeErr
	}
	d.stored = append(d.stored, key)
	return "https://cdn.example.com/" + key, nil
}

func (d *fakeDelivery) SendReport(_ context.Context, e ports.ReportEmail) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sendErr != nil {
		return d.sendErr
	}
	d.emails = append(d.emails, e)
	return nil
}

// flakyStore injects store failures to exercise reconciliation.
type flakyStore struct {
	*memory.Store
	failCreatePurchase bool
	failCreateReport   bool
	failGetAnalysis    bool
	// missCompletes makes that many CompletePurchase calls report the
	// purchase as missing, as if the checkout insert had not committed yet.
	missCompletes int
}

func (f *flakyStore) GetAnalysis(ctx context.Context, id string) (domain.Analysis, error) {
	if f.failGetAnalysis {
		return domain.Analysis{}, domain.Persistence("flaky.GetAnalysis", errors.New("connection reset"))
	}
	return f.Store.GetAnalysis(ctx, id)
}

func (f *flakyStore) CompletePurchase(ctx context.Context, sessionID, paymentIntentID string, at time.Time) (domain.Purchase, error) {
	if f.missCompletes > 0 {
		f.missCompletes--
		return domain.Purchase{}, domain.NotFound("flaky.CompletePurchase", "purchase not found")
	}
	return f.Store.CompletePurchase(ctx, sessionID, paymentIntentID, at)
}

func (f *flakyStore) CreatePurchase(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	if f.failCreatePurchase {
		return domain.Purchase{}, domain.Persistence("flaky.CreatePurchase", errors.New("connection reset"))
	}
	return f.Store.CreatePurchase(ctx, p)
}

func (f *flakyStore) CreatePendingReport(ctx context.Context, analysisID, purchaseID string) (domain.PdfReport, bool, error) {
	if f.failCreateReport {
		return domain.PdfReport{}, false, domain.Persistence("flaky.CreatePendingReport", errors.New("connection reset"))
	}
	return f.Store.CreatePendingReport(ctx, analysisID, purchaseID)
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	store    *flakyStore
	gateway  *fakeGateway
	renderer *fakeRenderer
	delivery *fakeDelivery
	svc      *Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mem := memory.New()
	mem.SetClock(func() time.Time { return fixedNow })
	mem.PutAnalysis(domain.Analysis{
		ID: "A1", URL: "https://www.example.com", Domain: "example.com", OverallScore: 72,
		Checks: []domain.CheckResult{{ID: "c1", Label: "llms.txt", Status: domain.CheckFail, Score: 10}},
	})
	h := &harness{
		store:    &flakyStore{Store: mem},
		gateway:  &fakeGateway{verify: map[string]domain.SessionVerification{}},
		renderer: &fakeRenderer{},
		delivery: &fakeDelivery{},
	}
	h.svc = New(h.store, h.gateway, h.renderer, h.delivery, Config{PublicBaseURL: "https://app.example.com/"})
	h.svc.SetClock(func() time.Time { return fixedNow })
	h.svc.newKey = func(analysisID string) string { return "reports/" + analysisID + ".pdf" }
	return h
}

func (h *harness) complete(t *testing.T, sessionID string) EventResult {
	t.Helper()
	res, err := h.svc.HandlePaymentEvent(context.Background(), payload(t, testEvent{
		ID: "evt_" + sessionID, Kind: "checkout.session.completed", SessionID: sessionID,
		Intent: "pi_1", AnalysisID: "A1", Email: "u@x.com", Amount: 4900,
	}), validSig)
	require.NoError(t, err)
	return res
}
