package domain

import (
	"sort"
	"time"
)

// RiskFactor is one contributing factor of a prediction, with its
// relative impact on the final percentage.
type RiskFactor struct {
	Name   string
	Impact int
}

// PredictionResult is the outcome of one scoring call. RiskFactors is
// ordered by descending impact.
type PredictionResult struct {
	Percentage  int
	RiskFactors []RiskFactor
	CapturedAt  time.Time
}

// SortRiskFactors orders factors by descending impact, breaking ties
// by name so the order is stable across runs.
func SortRiskFactors(factors []RiskFactor) {
	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].Impact != factors[j].Impact {
			return factors[i].Impact > factors[j].Impact
		}
		return factors[i].Name < factors[j].Name
	})
}

// HistoryEntry is one prior assessment run as reported by the remote
// service. Read-only on the client.
type HistoryEntry struct {
	Disease    AssessmentType
	Date       time.Time
	Percentage int
}

// RiskTier is one of four ordered bands derived from a percentage.
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
	TierVeryHigh RiskTier = "very_high"
)

// TierFor classifies a risk percentage. This is the single source of
// truth for the band thresholds; every display consults it.
func TierFor(percentage int) RiskTier {
	switch {
	case percentage < 25:
		return TierLow
	case percentage < 50:
		return TierModerate
	case percentage < 75:
		return TierHigh
	default:
		return TierVeryHigh
	}
}

func (t RiskTier) Label() string {
	switch t {
	case TierLow:
		return "Low"
	case TierModerate:
		return "Moderate"
	case TierHigh:
		return "High"
	case TierVeryHigh:
		return "Very High"
	default:
		return string(t)
	}
}
