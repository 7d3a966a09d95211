package service

import (
	"github.com/shopspring/decimal"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// WeightedScorer is the hand-weighted linear "ML" strategy. It recomputes its
// features from the host and does not apply the keyword brand whitelist.
type WeightedScorer struct {
	rules *Rules
}

// NewWeightedScorer creates a WeightedScorer over rules.
func NewWeightedScorer(rules *Rules) *WeightedScorer {
	return &WeightedScorer{rules: rules}
}

// Features holds the normalized [0,1] feature values for one target.
type Features struct {
	Punycode          decimal.Decimal
	Homograph         decimal.Decimal
	SuspiciousKeyword decimal.Decimal
	IPLiteral         decimal.Decimal
	LongHost          decimal.Decimal
	ManySubdomains    decimal.Decimal
}

// Features computes the feature vector for target.
func (s *WeightedScorer) Features(target valueobject.NormalizedTarget) Features {
	w := s.rules.Weights
	return Features{
		Punycode:          flag(target.IsPunycode()),
		Homograph:         flag(target.HasMixedScripts()),
		SuspiciousKeyword: ratio(len(target.KeywordMatches(s.rules.Keywords)), w.KeywordSaturation),
		IPLiteral:         flag(ipLiteral.MatchString(target.Host())),
		LongHost:          ratio(target.Length(), w.LongHostSaturation),
		ManySubdomains:    ratio(target.DotCount(), w.SubdomainSaturation),
	}
}

// Raw returns the clamped weighted sum scaled to [0, 100] before truncation.
func (s *WeightedScorer) Raw(target valueobject.NormalizedTarget) decimal.Decimal {
	f := s.Features(target)
	w := s.rules.Weights

	sum := f.Punycode.Mul(w.Punycode).
		Add(f.Homograph.Mul(w.Homograph)).
		Add(f.SuspiciousKeyword.Mul(w.SuspiciousKeyword)).
		Add(f.IPLiteral.Mul(w.IPLiteral)).
		Add(f.LongHost.Mul(w.LongHost)).
		Add(f.ManySubdomains.Mul(w.ManySubdomains))

	return decimal.Min(sum.Mul(hundred), hundred)
}

// Score truncates the weighted sum to an integer score and attaches
// confidence = score/100.
func (s *WeightedScorer) Score(target valueobject.NormalizedTarget) model.ScoreResult {
	if !target.IsValid() {
		return model.InvalidResult()
	}

	raw := s.Raw(target)
	result := model.NewScoreResult(int(raw.IntPart()), s.reasons(target), valueobject.MethodMLEnhanced)
	return result.WithConfidence(raw.Div(hundred).InexactFloat64())
}

// reasons explains the non-zero features using the same wording as the
// heuristic detectors.
func (s *WeightedScorer) reasons(target valueobject.NormalizedTarget) []string {
	reasons := make([]string, 0)
	if target.IsPunycode() {
		reasons = append(reasons, reasonPunycode)
	}
	if matches := target.KeywordMatches(s.rules.Keywords); len(matches) > 0 {
		reasons = append(reasons, keywordReason(matches[0]))
	}
	if ipLiteral.MatchString(target.Host()) {
		reasons = append(reasons, reasonIPLiteral)
	}
	if target.Length() > s.rules.LongHostLength {
		reasons = append(reasons, reasonLongHost)
	}
	if target.DotCount() > s.rules.SubdomainDots {
		reasons = append(reasons, reasonSubdomain)
	}
	if target.HasMixedScripts() {
		reasons = append(reasons, reasonHomograph)
	}
	return reasons
}

func flag(b bool) decimal.Decimal {
	if b {
		return one
	}
	return decimal.Zero
}

// ratio returns min(n/saturation, 1).
func ratio(n, saturation int) decimal.Decimal {
	return decimal.Min(decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(int64(saturation))), one)
}
