package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/service"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// rulesFile mirrors the YAML rules overlay. Absent fields keep the defaults.
type rulesFile struct {
	Points                map[string]int   `yaml:"points"`
	Weights               *weightsFile     `yaml:"weights"`
	MLConfidenceThreshold *decimal.Decimal `yaml:"ml_confidence_threshold"`
	LongHostLength        *int             `yaml:"long_host_length"`
	SubdomainDots         *int             `yaml:"subdomain_dots"`
	Keywords              []string         `yaml:"keywords"`
	KeywordWhitelist      []string         `yaml:"keyword_whitelist"`
	Brands                []string         `yaml:"brands"`
	OfficialSuffixes      []string         `yaml:"official_suffixes"`
}

type weightsFile struct {
	Punycode            *decimal.Decimal `yaml:"punycode"`
	Homograph           *decimal.Decimal `yaml:"homograph"`
	SuspiciousKeyword   *decimal.Decimal `yaml:"suspicious_keyword"`
	IPLiteral           *decimal.Decimal `yaml:"ip_literal"`
	LongHost            *decimal.Decimal `yaml:"long_host"`
	ManySubdomains      *decimal.Decimal `yaml:"many_subdomains"`
	KeywordSaturation   *int             `yaml:"keyword_saturation"`
	LongHostSaturation  *int             `yaml:"long_host_saturation"`
	SubdomainSaturation *int             `yaml:"subdomain_saturation"`
}

// LoadRules returns the default rules, overlaid with path when path is non-empty.
func LoadRules(path string) (service.Rules, error) {
	if path == "" {
		return service.DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return service.Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return service.Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules overlays a YAML document onto the default rules and validates the result.
func ParseRules(data []byte) (service.Rules, error) {
	rules := service.DefaultRules()

	var f rulesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return service.Rules{}, fmt.Errorf("decode rules: %w", err)
	}

	for name, points := range f.Points {
		kind, ok := valueobject.SignalKindFromString(name)
		if !ok {
			return service.Rules{}, fmt.Errorf("unknown signal %q in points", name)
		}
		if kind == valueobject.SignalExternalFeed {
			return service.Rules{}, fmt.Errorf("points for %s are not configurable", name)
		}
		rules.Points[kind] = points
	}

	if f.Keywords != nil {
		rules.Keywords = lowerAll(f.Keywords)
	}
	if f.KeywordWhitelist != nil {
		rules.KeywordWhitelist = lowerAll(f.KeywordWhitelist)
	}
	if f.Brands != nil {
		rules.Brands = lowerAll(f.Brands)
	}
	if f.OfficialSuffixes != nil {
		rules.OfficialSuffixes = lowerAll(f.OfficialSuffixes)
	}
	setInt(&rules.LongHostLength, f.LongHostLength)
	setInt(&rules.SubdomainDots, f.SubdomainDots)
	setDecimal(&rules.MLConfidenceThreshold, f.MLConfidenceThreshold)

	if w := f.Weights; w != nil {
		setDecimal(&rules.Weights.Punycode, w.Punycode)
		setDecimal(&rules.Weights.Homograph, w.Homograph)
		setDecimal(&rules.Weights.SuspiciousKeyword, w.SuspiciousKeyword)
		setDecimal(&rules.Weights.IPLiteral, w.IPLiteral)
		setDecimal(&rules.Weights.LongHost, w.LongHost)
		setDecimal(&rules.Weights.ManySubdomains, w.ManySubdomains)
		setInt(&rules.Weights.KeywordSaturation, w.KeywordSaturation)
		setInt(&rules.Weights.LongHostSaturation, w.LongHostSaturation)
		setInt(&rules.Weights.SubdomainSaturation, w.SubdomainSaturation)
	}

	if err := rules.Validate(); err != nil {
		return service.Rules{}, err
	}
	return rules, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDecimal(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

// Hosts are lower-cased before matching, so list entries must be too.
func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}
