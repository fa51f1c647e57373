package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/domain"
)

func sampleAnalysis() domain.Analysis {
	return domain.Analysis{
		ID:           "A1",
		URL:          "https://www.example.com",
		Domain:       "example.com",
		OverallScore: 64,
		Checks: []domain.CheckResult{
			{ID: "pass-perfect", Label: "HTTPS", Status: domain.CheckPass, Score: 100, Details: "Served over TLS."},
			{ID: "warn", Label: "Structured data", Status: domain.CheckWarning, Score: 50, Details: "Partial schema.org markup.", Recommendation: "Add Organization markup"},
			{ID: "fail", Label: "llms.txt", Status: domain.CheckFail, Score: 10, Details: "No llms.txt found.", Recommendation: "Publish an llms.txt file"},
			{ID: "pass", Label: "Meta description", Status: domain.CheckPass, Score: 95, Details: "Present – 140 chars.", Recommendation: "Tighten the wording"},
		},
	}
}

func TestActionItemsOrdering(t *testing.T) {
	items := ActionItems(sampleAnalysis().Checks)

	require.Len(t, items, 3, "a perfect pass needs no remediation")
	assert.Equal(t, []string{"fail", "warn", "pass"}, []string{items[0].CheckID, items[1].CheckID, items[2].CheckID})
	assert.Equal(t, []Priority{PriorityHigh, PriorityMedium, PriorityLow}, []Priority{items[0].Priority, items[1].Priority, items[2].Priority})
	assert.Equal(t, "llms.txt: Publish an llms.txt file", items[0].Text)
}

func TestActionItemsWorstFirstWithinTier(t *testing.T) {
	items := ActionItems([]domain.CheckResult{
		{ID: "f40", Status: domain.CheckFail, Score: 40},
		{ID: "w70", Status: domain.CheckWarning, Score: 70},
		{ID: "f5", Status: domain.CheckFail, Score: 5},
		{ID: "w60", Status: domain.CheckWarning, Score: 60},
		{ID: "f5b", Status: domain.CheckFail, Score: 5},
	})
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.CheckID
	}
	assert.Equal(t, []string{"f5", "f5b", "f40", "w60", "w70"}, ids)
}

func TestGradeBands(t *testing.T) {
	assert.Equal(t, "Excellent", Grade(90))
	assert.Equal(t, "Good", Grade(89))
	assert.Equal(t, "Fair", Grade(70))
	assert.Equal(t, "Needs Work", Grade(50))
	assert.Equal(t, "Critical", Grade(49))
	assert.Equal(t, colorGreen, scoreColor(80))
	assert.Equal(t, colorYellow, scoreColor(79))
	assert.Equal(t, colorRed, scoreColor(49))
}

func TestRenderIsDeterministic(t *testing.T) {
	r := New("AI Readiness", "support@example.com")
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	first, err := r.Render(sampleAnalysis(), "u@x.com", at)
	require.NoError(t, err)
	second, err := r.Render(sampleAnalysis(), "u@x.com", at)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.Equal(t, first, second)

	later, err := r.Render(sampleAnalysis(), "u@x.com", at.Add(24*time.Hour))
	require.NoError(t, err)
	assert.NotEqual(t, first, later, "generation date is embedded")
}

func TestRenderHasThreePages(t *testing.T) {
	out, err := New("AI Readiness", "support@example.com").Render(sampleAnalysis(), "u@x.com", time.Unix(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(out, []byte("/Type /Page\n")))
}

func TestRenderAllPassing(t *testing.T) {
	a := sampleAnalysis()
	a.Checks = []domain.CheckResult{{ID: "ok", Label: "HTTPS", Status: domain.CheckPass, Score: 100}}
	a.Domain = ""
	out, err := New("AI Readiness", "support@example.com").Render(a, "u@x.com", time.Unix(0, 0))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestScoreBadgeIsPNG(t *testing.T) {
	b, err := scoreBadge(72)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, badgeSize, img.Bounds().Dx())
}
