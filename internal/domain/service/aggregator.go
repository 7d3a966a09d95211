package service

import (
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// Aggregator computes both strategies for every target and reports the
// weighted one only when its confidence exceeds the configured threshold.
type Aggregator struct {
	heuristic *HeuristicScorer
	weighted  *WeightedScorer
	rules     *Rules
}

// NewAggregator creates an Aggregator over rules.
func NewAggregator(rules *Rules) *Aggregator {
	return &Aggregator{
		heuristic: NewHeuristicScorer(rules),
		weighted:  NewWeightedScorer(rules),
		rules:     rules,
	}
}

// Score returns the selected result. A heuristic result carries the weighted
// confidence as well.
func (a *Aggregator) Score(target valueobject.NormalizedTarget) model.ScoreResult {
	if !target.IsValid() {
		return model.InvalidResult()
	}

	heuristic := a.heuristic.Score(target)
	raw := a.weighted.Raw(target)
	confidence := raw.Div(hundred)

	if confidence.GreaterThan(a.rules.MLConfidenceThreshold) {
		return a.weighted.Score(target)
	}
	return heuristic.WithConfidence(confidence.InexactFloat64())
}
