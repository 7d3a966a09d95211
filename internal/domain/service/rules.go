package service

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// Rules is the immutable configuration of the scoring engine. The zero value is
// not usable; start from DefaultRules.
type Rules struct {
	// Points awarded by each heuristic signal. SignalExternalFeed is fixed at
	// model.MaxScore: a feed match forces the score rather than adding to it.
	Points [valueobject.SignalKindCount]int

	Keywords         []string
	KeywordWhitelist []string
	Brands           []string
	OfficialSuffixes []string

	LongHostLength int
	SubdomainDots  int

	Weights WeightedRules

	// MLConfidenceThreshold is the confidence the weighted strategy must exceed
	// to be reported instead of the heuristic one.
	MLConfidenceThreshold decimal.Decimal
}

// WeightedRules configures the linear "ML" strategy.
type WeightedRules struct {
	Punycode          decimal.Decimal
	Homograph         decimal.Decimal
	SuspiciousKeyword decimal.Decimal
	IPLiteral         decimal.Decimal
	LongHost          decimal.Decimal
	ManySubdomains    decimal.Decimal

	KeywordSaturation   int
	LongHostSaturation  int
	SubdomainSaturation int
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		Points: [valueobject.SignalKindCount]int{
			valueobject.SignalPunycode:           50,
			valueobject.SignalSuspiciousKeyword:  20,
			valueobject.SignalIPLiteral:          40,
			valueobject.SignalLongHost:           15,
			valueobject.SignalManySubdomains:     15,
			valueobject.SignalHomograph:          60,
			valueobject.SignalBrandImpersonation: 40,
			valueobject.SignalExternalFeed:       model.MaxScore,
		},
		Keywords:         []string{"secure", "login", "account", "update", "verify", "banking", "wallet"},
		KeywordWhitelist: []string{"google", "facebook"},
		Brands:           []string{"google", "facebook", "instagram", "paypal", "microsoft", "netflix"},
		OfficialSuffixes: []string{".com", ".uz"},
		LongHostLength:   50,
		SubdomainDots:    3,
		Weights: WeightedRules{
			Punycode:            decimal.RequireFromString("0.30"),
			Homograph:           decimal.RequireFromString("0.25"),
			SuspiciousKeyword:   decimal.RequireFromString("0.15"),
			IPLiteral:           decimal.RequireFromString("0.20"),
			LongHost:            decimal.RequireFromString("0.05"),
			ManySubdomains:      decimal.RequireFromString("0.05"),
			KeywordSaturation:   3,
			LongHostSaturation:  100,
			SubdomainSaturation: 5,
		},
		MLConfidenceThreshold: decimal.RequireFromString("0.7"),
	}
}

// Validate rejects rule sets that would break the score or verdict invariants.
func (r Rules) Validate() error {
	for k, p := range r.Points {
		if p < 0 {
			return fmt.Errorf("points for %s must not be negative", valueobject.SignalKind(k))
		}
	}
	if r.Points[valueobject.SignalExternalFeed] != model.MaxScore {
		return fmt.Errorf("external feed override is fixed at %d", model.MaxScore)
	}
	for name, list := range map[string][]string{
		"keywords":          r.Keywords,
		"keyword_whitelist": r.KeywordWhitelist,
		"brands":            r.Brands,
		"official_suffixes": r.OfficialSuffixes,
	} {
		if slices.Contains(list, "") {
			return fmt.Errorf("%s must not contain empty entries", name)
		}
	}
	if r.LongHostLength < 0 || r.SubdomainDots < 0 {
		return fmt.Errorf("host thresholds must not be negative")
	}

	w := r.Weights
	for name, d := range map[string]decimal.Decimal{
		"punycode":           w.Punycode,
		"homograph":          w.Homograph,
		"suspicious_keyword": w.SuspiciousKeyword,
		"ip_literal":         w.IPLiteral,
		"long_host":          w.LongHost,
		"many_subdomains":    w.ManySubdomains,
	} {
		if d.IsNegative() {
			return fmt.Errorf("weight for %s must not be negative", name)
		}
	}
	if w.KeywordSaturation <= 0 || w.LongHostSaturation <= 0 || w.SubdomainSaturation <= 0 {
		return fmt.Errorf("weighted saturation values must be positive")
	}

	if r.MLConfidenceThreshold.IsNegative() || r.MLConfidenceThreshold.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("ml confidence threshold must be within [0, 1], got %s", r.MLConfidenceThreshold)
	}
	return nil
}

// clone detaches the slices so the engine's copy cannot be mutated by the caller.
func (r Rules) clone() Rules {
	r.Keywords = slices.Clone(r.Keywords)
	r.KeywordWhitelist = slices.Clone(r.KeywordWhitelist)
	r.Brands = slices.Clone(r.Brands)
	r.OfficialSuffixes = slices.Clone(r.OfficialSuffixes)
	return r
}
