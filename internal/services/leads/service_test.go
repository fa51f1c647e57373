package leads

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/adapters/memory"
	"readiness/internal/domain"
)

func setup(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	store.PutAnalysis(domain.Analysis{ID: "X", URL: "https://x.com", Domain: "x.com", OverallScore: 40})
	store.PutAnalysis(domain.Analysis{ID: "Y", URL: "https://y.com", Domain: "y.com", OverallScore: 90})
	return New(store, store), store
}

func TestCaptureEmailCreatesThenUpdates(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	src := "newsletter"
	consent := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := svc.CaptureEmail(ctx, CaptureRequest{
		Email: "a@b.com", AnalysisID: "X", PrivacyAccepted: true, ConsentAt: consent,
		Attribution: domain.Attribution{Source: &src},
	})
	require.NoError(t, err)
	assert.False(t, first.Updated)

	second, err := svc.CaptureEmail(ctx, CaptureRequest{
		Email: "new@b.com", AnalysisID: "X", CompanyName: "Acme", MarketingConsent: true,
	})
	require.NoError(t, err)
	assert.True(t, second.Updated)
	assert.Equal(t, first.LeadID, second.LeadID)

	leads := store.Leads()
	require.Len(t, leads, 1, "repeat capture updates instead of duplicating")
	l := leads[0]
	assert.Equal(t, "new@b.com", l.Email)
	require.NotNil(t, l.CompanyName)
	assert.Equal(t, "Acme", *l.CompanyName)
	assert.True(t, l.MarketingConsent)
	assert.True(t, l.PrivacyAccepted, "original consent record is kept")
	assert.Equal(t, consent, l.ConsentAt)
	require.NotNil(t, l.Attribution.Source)
	assert.Equal(t, "newsletter", *l.Attribution.Source)
}

func TestCaptureEmailWithoutAnalysis(t *testing.T) {
	svc, store := setup(t)
	for i := 0; i < 2; i++ {
		res, err := svc.CaptureEmail(context.Background(), CaptureRequest{Email: "a@b.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.LeadID)
	}
	assert.Len(t, store.Leads(), 2)
	assert.Nil(t, store.Leads()[0].AnalysisID)
}

func TestCaptureEmailValidation(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.CaptureEmail(context.Background(), CaptureRequest{Email: "nope"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.CaptureEmail(context.Background(), CaptureRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteDataCascadesToOrphanedAnalyses(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()
	x, y := "X", "Y"
	_, err := store.CreateLead(ctx, domain.Lead{Email: "a@b.com", AnalysisID: &x})
	require.NoError(t, err)
	_, err = store.CreateLead(ctx, domain.Lead{Email: "a@b.com", AnalysisID: &y})
	require.NoError(t, err)
	_, err = store.CreateLead(ctx, domain.Lead{Email: "other@b.com", AnalysisID: &y})
	require.NoError(t, err)

	n, err := svc.DeleteData(ctx, "a@b.com", "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.GetAnalysis(ctx, "X")
	assert.ErrorIs(t, err, domain.ErrNotFound, "X had no other lead")
	_, err = store.GetAnalysis(ctx, "Y")
	assert.NoError(t, err, "Y is still referenced")

	leads := store.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, "other@b.com", leads[0].Email)
}

func TestDeleteDataNoMatch(t *testing.T) {
	svc, _ := setup(t)
	n, err := svc.DeleteData(context.Background(), "ghost@b.com", "gdpr")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.DeleteData(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
