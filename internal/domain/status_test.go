package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseTransitions(t *testing.T) {
	tests := []struct {
		from, to PurchaseStatus
		want     bool
	}{
		{PurchasePending, PurchaseCompleted, true},
		{PurchasePending, PurchaseExpired, true},
		{PurchaseCompleted, PurchaseRefunded, true},
		{PurchaseCompleted, PurchasePending, false},
		{PurchaseCompleted, PurchaseCompleted, false},
		{PurchaseExpired, PurchaseCompleted, false},
		{PurchaseRefunded, PurchaseCompleted, false},
		{PurchasePending, PurchaseRefunded, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s->%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestReportTransitions(t *testing.T) {
	assert.True(t, ReportPending.CanTransition(ReportGenerating))
	assert.True(t, ReportGenerating.CanTransition(ReportGenerating))
	assert.True(t, ReportGenerating.CanTransition(ReportCompleted))
	assert.True(t, ReportGenerating.CanTransition(ReportFailed))
	assert.False(t, ReportCompleted.CanTransition(ReportGenerating))
	assert.False(t, ReportFailed.CanTransition(ReportGenerating))
	assert.False(t, ReportPending.CanTransition(ReportCompleted))

	assert.True(t, ReportFailed.Terminal())
	assert.True(t, ReportCompleted.Terminal())
	assert.False(t, ReportFailed.Active())
	assert.True(t, ReportCompleted.Active())
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Upstream("stripe.CreateSession", errors.New("boom")))
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ErrUpstream, KindOf(err))
	assert.Nil(t, KindOf(errors.New("plain")))

	nf := NotFound("analyses.Get", "analysis not found")
	assert.Equal(t, "analyses.Get: analysis not found", nf.Error())
	var de *Error
	assert.True(t, errors.As(nf, &de))
	assert.Equal(t, "analysis not found", de.Message())
}
