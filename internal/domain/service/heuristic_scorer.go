package service

import (
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// HeuristicScorer sums the points of every triggered signal and clamps the total.
type HeuristicScorer struct {
	rules *Rules
}

// NewHeuristicScorer creates a HeuristicScorer over rules.
func NewHeuristicScorer(rules *Rules) *HeuristicScorer {
	return &HeuristicScorer{rules: rules}
}

// Score evaluates the target. Reasons follow signal evaluation order.
func (s *HeuristicScorer) Score(target valueobject.NormalizedTarget) model.ScoreResult {
	if !target.IsValid() {
		return model.InvalidResult()
	}

	score := 0
	reasons := make([]string, 0)
	for _, sig := range Extract(s.rules, target) {
		if !sig.Triggered() {
			continue
		}
		score += sig.Points()
		reasons = append(reasons, sig.Reason())
	}

	return model.NewScoreResult(score, reasons, valueobject.MethodHeuristic)
}
