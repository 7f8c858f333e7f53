package application

import "github.com/kriju0726/HealiFy/internal/domain"

// ResultReport is the view projection of one finished assessment run.
type ResultReport struct {
	Type   domain.AssessmentType
	Result domain.PredictionResult
}

func (r ResultReport) Tier() domain.RiskTier {
	return domain.TierFor(r.Result.Percentage)
}

// HistoryReport is the view projection of the fetched history list.
type HistoryReport struct {
	Account domain.Account
	Entries []domain.HistoryEntry
}
