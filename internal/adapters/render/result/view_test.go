package result

import (
	"testing"
	"time"

	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportShowsPercentageTierAndFactors(t *testing.T) {
	report := application.ResultReport{
		Type: domain.AssessmentDiabetes,
		Result: domain.PredictionResult{
			Percentage: 62,
			RiskFactors: []domain.RiskFactor{
				{Name: "frequent_urination", Impact: 35},
				{Name: "fatigue", Impact: 10},
			},
			CapturedAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		},
	}

	output, err := Render(report, RenderOptions{Now: time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Contains(t, output, "Diabetes Risk Assessment")
	assert.Contains(t, output, "62%")
	assert.Contains(t, output, "High")
	assert.Contains(t, output, "frequent urination")
	assert.Contains(t, output, "impact 35")
	assert.Contains(t, output, "healthcare professional")
	assert.Contains(t, output, "5m ago")
}

func TestRenderHistoryListsEntriesWithTiers(t *testing.T) {
	report := application.HistoryReport{
		Account: domain.Account{Email: "user@example.com"},
		Entries: []domain.HistoryEntry{
			{Disease: domain.AssessmentDiabetes, Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), Percentage: 80},
			{Disease: domain.AssessmentThyroid, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), Percentage: 12},
		},
	}

	output, err := RenderHistory(report, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "Assessment History")
	assert.Contains(t, output, "user@example.com, 2 assessments")
	assert.Contains(t, output, "2026-08-29")
	assert.Contains(t, output, "Very High")
	assert.Contains(t, output, "Thyroid")
	assert.Contains(t, output, "Low")
}

func TestRenderHistoryEmpty(t *testing.T) {
	output, err := RenderHistory(application.HistoryReport{Account: domain.Account{Email: "user@example.com"}}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "No assessments recorded yet.")
}

func TestRenderRiskBarBounds(t *testing.T) {
	s := newStyles()

	assert.Contains(t, renderRiskBar(0, 10, s), "----------")
	assert.Contains(t, renderRiskBar(100, 10, s), "==========")
	assert.Empty(t, renderRiskBar(50, 0, s))
	assert.Contains(t, renderRiskBar(150, 10, s), "==========", "overflow clamps to full")
}

func TestFormatCapturedBuckets(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", formatCaptured(now.Add(-30*time.Second), now))
	assert.Equal(t, "10m ago", formatCaptured(now.Add(-10*time.Minute), now))
	assert.Equal(t, "3h ago", formatCaptured(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2026-08-27", formatCaptured(now.Add(-72*time.Hour), now))
	assert.Equal(t, "just now", formatCaptured(time.Time{}, now))
}
