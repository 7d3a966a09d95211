package service

import (
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// Scorer is a URL scoring strategy over a normalized target. HeuristicScorer,
// WeightedScorer and Aggregator implement it.
type Scorer interface {
	Score(target valueobject.NormalizedTarget) model.ScoreResult
}
