package analyses

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/adapters/memory"
	"readiness/internal/domain"
)

func TestPatchInsights(t *testing.T) {
	store := memory.New()
	store.PutAnalysis(domain.Analysis{ID: "A1", URL: "https://example.com", Domain: "example.com", OverallScore: 55})
	svc := New(store)
	ctx := context.Background()

	score := 61
	readiness := "moderate"
	got, err := svc.PatchInsights(ctx, "A1", domain.InsightsPatch{
		AIInsights:         json.RawMessage(`{"summary":"ok"}`),
		AIOverallReadiness: &readiness,
		EnhancedScore:      &score,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"ok"}`, string(got.AIInsights))
	require.NotNil(t, got.EnhancedScore)
	assert.Equal(t, 61, *got.EnhancedScore)
	assert.Equal(t, 55, got.OverallScore, "scored fields are untouched")

	priorities := []string{"publish llms.txt"}
	got, err = svc.PatchInsights(ctx, "A1", domain.InsightsPatch{AITopPriorities: priorities})
	require.NoError(t, err)
	assert.Equal(t, priorities, got.AITopPriorities)
	require.NotNil(t, got.AIOverallReadiness, "earlier patch survives")
	assert.Equal(t, "moderate", *got.AIOverallReadiness)
}

func TestPatchInsightsValidation(t *testing.T) {
	store := memory.New()
	store.PutAnalysis(domain.Analysis{ID: "A1", URL: "https://example.com", Domain: "example.com"})
	svc := New(store)
	ctx := context.Background()

	_, err := svc.PatchInsights(ctx, "A1", domain.InsightsPatch{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	bad := 101
	_, err = svc.PatchInsights(ctx, "A1", domain.InsightsPatch{EnhancedScore: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)

	score := 10
	_, err = svc.PatchInsights(ctx, "missing", domain.InsightsPatch{EnhancedScore: &score})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Get(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
