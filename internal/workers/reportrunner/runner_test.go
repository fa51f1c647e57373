package reportrunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/adapters/memory"
	"readiness/internal/domain"
	"readiness/internal/ports"
)

var policy = ports.ClaimPolicy{
	PendingGrace:    2 * time.Minute,
	StaleGenerating: 10 * time.Minute,
	MaxAttempts:     2,
}

type recorder struct {
	mu    sync.Mutex
	store *memory.Store
	jobs  []ports.ReportJob
	fail  bool
}

func (r *recorder) ProcessJob(ctx context.Context, job ports.ReportJob) error {
	r.mu.Lock()
	r.jobs = append(r.jobs, job)
	r.mu.Unlock()
	if r.fail {
		return errors.New("render exploded")
	}
	url := "https://cdn.example.com/" + job.ReportID + ".pdf"
	_, err := r.store.CompleteReport(ctx, job.ReportID, &url, nil, time.Now())
	return err
}

func (r *recorder) seen() []ports.ReportJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.ReportJob(nil), r.jobs...)
}

type clock struct{ now time.Time }

func (c *clock) advance(d time.Duration) { c.now = c.now.Add(d) }

func seed(t *testing.T) (*memory.Store, *clock, domain.PdfReport) {
	t.Helper()
	store := memory.New()
	c := &clock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	store.SetClock(func() time.Time { return c.now })
	ctx := context.Background()
	p, err := store.CreatePurchase(ctx, domain.Purchase{
		AnalysisID:        "A1",
		CheckoutSessionID: "cs_1",
		Status:            domain.PurchaseCompleted,
		Email:             "u@x.com",
	})
	require.NoError(t, err)
	r, created, err := store.CreatePendingReport(ctx, "A1", p.ID)
	require.NoError(t, err)
	require.True(t, created)
	return store, c, r
}

func TestSweepOnceSkipsFreshPending(t *testing.T) {
	store, _, _ := seed(t)
	proc := &recorder{store: store}
	assert.Zero(t, SweepOnce(context.Background(), store, proc, policy))
	assert.Empty(t, proc.seen())
}

func TestSweepOnceProcessesStuckReport(t *testing.T) {
	store, c, r := seed(t)
	c.advance(3 * time.Minute)
	proc := &recorder{store: store}

	assert.Equal(t, 1, SweepOnce(context.Background(), store, proc, policy))
	jobs := proc.seen()
	require.Len(t, jobs, 1)
	assert.Equal(t, r.ID, jobs[0].ReportID)
	assert.Equal(t, "u@x.com", jobs[0].Email)
	assert.Equal(t, 1, jobs[0].Attempts)

	reports := store.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, domain.ReportCompleted, reports[0].Status)

	assert.Zero(t, SweepOnce(context.Background(), store, proc, policy), "completed reports are never reclaimed")
}

func TestSweepOnceFailsExhaustedReports(t *testing.T) {
	store, c, _ := seed(t)
	proc := &recorder{store: store, fail: true}

	for i := 0; i < policy.MaxAttempts; i++ {
		c.advance(11 * time.Minute)
		assert.Equal(t, 1, SweepOnce(context.Background(), store, proc, policy))
	}
	c.advance(11 * time.Minute)
	assert.Zero(t, SweepOnce(context.Background(), store, proc, policy))

	reports := store.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, domain.ReportFailed, reports[0].Status)
	require.NotNil(t, reports[0].ErrorMessage)
	assert.Len(t, proc.seen(), policy.MaxAttempts)
}

func TestRunDrainsAndStops(t *testing.T) {
	store, c, r := seed(t)
	c.advance(3 * time.Minute)
	proc := &recorder{store: store}

	ctx, cancel := context.WithCancel(context.Background())
	done := Run(ctx, store, proc, Options{Concurrency: 2, PollInterval: 5 * time.Millisecond, Policy: policy})

	require.Eventually(t, func() bool { return len(proc.seen()) == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, r.ID, proc.seen()[0].ReportID)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestRunWithoutWorkers(t *testing.T) {
	store, _, _ := seed(t)
	done := Run(context.Background(), store, &recorder{store: store}, Options{})
	_, open := <-done
	assert.False(t, open)
}

func TestSweepOnceAdoptsPurchaseWithoutReport(t *testing.T) {
	store := memory.New()
	c := &clock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	store.SetClock(func() time.Time { return c.now })
	ctx := context.Background()
	p, err := store.CreatePurchase(ctx, domain.Purchase{
		AnalysisID:        "A1",
		CheckoutSessionID: "cs_1",
		Status:            domain.PurchaseCompleted,
		Email:             "u@x.com",
	})
	require.NoError(t, err)
	_, err = store.CreatePurchase(ctx, domain.Purchase{
		AnalysisID:        "A2",
		CheckoutSessionID: "cs_2",
		Status:            domain.PurchasePending,
		Email:             "v@x.com",
	})
	require.NoError(t, err)
	proc := &recorder{store: store}

	assert.Zero(t, SweepOnce(ctx, store, proc, policy), "the webhook may still be creating the report")

	c.advance(3 * time.Minute)
	assert.Equal(t, 1, SweepOnce(ctx, store, proc, policy))
	jobs := proc.seen()
	require.Len(t, jobs, 1)
	assert.Equal(t, p.ID, jobs[0].PurchaseID)
	assert.Equal(t, "A1", jobs[0].AnalysisID)
	assert.Equal(t, "u@x.com", jobs[0].Email)
	assert.Equal(t, 1, jobs[0].Attempts)

	reports := store.Reports()
	require.Len(t, reports, 1, "unpaid purchases are not adopted")
	assert.Equal(t, p.ID, reports[0].PurchaseID)
	assert.Equal(t, domain.ReportCompleted, reports[0].Status)

	c.advance(time.Hour)
	assert.Zero(t, SweepOnce(ctx, store, proc, policy))
}

func TestSweepOnceDoesNotReviveFailedPurchases(t *testing.T) {
	store, c, _ := seed(t)
	proc := &recorder{store: store, fail: true}
	for i := 0; i <= policy.MaxAttempts; i++ {
		c.advance(11 * time.Minute)
		SweepOnce(context.Background(), store, proc, policy)
	}
	require.Len(t, store.Reports(), 1)
	require.Equal(t, domain.ReportFailed, store.Reports()[0].Status)

	c.advance(time.Hour)
	assert.Zero(t, SweepOnce(context.Background(), store, proc, policy), "failed purchases wait for an operator redrive")
	assert.Len(t, store.Reports(), 1)
}
