package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

const (
	reasonPunycode  = "Punycode domain detected (potential homograph attack)"
	reasonIPLiteral = "IP address used as domain"
	reasonLongHost  = "Unusually long domain name"
	reasonSubdomain = "Excessive number of subdomains"
	reasonHomograph = "Homograph attack detected (mixed scripts)"
	reasonBrand     = "Brand name found in suspicious domain (potential Evilginx2)"
)

// ipLiteral matches dotted-quad shapes only; octet ranges are not checked.
var ipLiteral = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

type extractor func(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal

// localExtractors holds one handler per locally computed signal, indexed by
// kind. The external feed is queried separately and is not in this table.
var localExtractors = [valueobject.SignalExternalFeed]extractor{
	valueobject.SignalPunycode:           extractPunycode,
	valueobject.SignalSuspiciousKeyword:  extractSuspiciousKeyword,
	valueobject.SignalIPLiteral:          extractIPLiteral,
	valueobject.SignalLongHost:           extractLongHost,
	valueobject.SignalManySubdomains:     extractManySubdomains,
	valueobject.SignalHomograph:          extractHomograph,
	valueobject.SignalBrandImpersonation: extractBrandImpersonation,
}

// Extract runs every local detector against t in evaluation order. An invalid
// target yields no signals.
func Extract(r *Rules, t valueobject.NormalizedTarget) []valueobject.Signal {
	if !t.IsValid() {
		return nil
	}
	signals := make([]valueobject.Signal, 0, len(localExtractors))
	for _, fn := range localExtractors {
		signals = append(signals, fn(r, t))
	}
	return signals
}

func extractPunycode(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	if !t.IsPunycode() {
		return valueobject.Quiet(valueobject.SignalPunycode)
	}
	return valueobject.NewSignal(valueobject.SignalPunycode, r.Points[valueobject.SignalPunycode], reasonPunycode)
}

// extractSuspiciousKeyword fires on the first keyword found, unless the host
// mentions a whitelisted brand.
func extractSuspiciousKeyword(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	for _, allowed := range r.KeywordWhitelist {
		if strings.Contains(t.Host(), allowed) {
			return valueobject.Quiet(valueobject.SignalSuspiciousKeyword)
		}
	}
	matches := t.KeywordMatches(r.Keywords)
	if len(matches) == 0 {
		return valueobject.Quiet(valueobject.SignalSuspiciousKeyword)
	}
	return valueobject.NewSignal(
		valueobject.SignalSuspiciousKeyword,
		r.Points[valueobject.SignalSuspiciousKeyword],
		keywordReason(matches[0]),
	)
}

func extractIPLiteral(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	if !ipLiteral.MatchString(t.Host()) {
		return valueobject.Quiet(valueobject.SignalIPLiteral)
	}
	return valueobject.NewSignal(valueobject.SignalIPLiteral, r.Points[valueobject.SignalIPLiteral], reasonIPLiteral)
}

func extractLongHost(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	if t.Length() <= r.LongHostLength {
		return valueobject.Quiet(valueobject.SignalLongHost)
	}
	return valueobject.NewSignal(valueobject.SignalLongHost, r.Points[valueobject.SignalLongHost], reasonLongHost)
}

func extractManySubdomains(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	if t.DotCount() <= r.SubdomainDots {
		return valueobject.Quiet(valueobject.SignalManySubdomains)
	}
	return valueobject.NewSignal(valueobject.SignalManySubdomains, r.Points[valueobject.SignalManySubdomains], reasonSubdomain)
}

func extractHomograph(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	if !t.HasMixedScripts() {
		return valueobject.Quiet(valueobject.SignalHomograph)
	}
	return valueobject.NewSignal(valueobject.SignalHomograph, r.Points[valueobject.SignalHomograph], reasonHomograph)
}

// extractBrandImpersonation fires when a brand appears in a host that is not
// that brand's own domain under one of the official suffixes.
func extractBrandImpersonation(r *Rules, t valueobject.NormalizedTarget) valueobject.Signal {
	host := t.Host()
	for _, brand := range r.Brands {
		if !strings.Contains(host, brand) {
			continue
		}
		if !isOfficialBrandHost(host, brand, r.OfficialSuffixes) {
			return valueobject.NewSignal(
				valueobject.SignalBrandImpersonation,
				r.Points[valueobject.SignalBrandImpersonation],
				reasonBrand,
			)
		}
	}
	return valueobject.Quiet(valueobject.SignalBrandImpersonation)
}

func isOfficialBrandHost(host, brand string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(host, brand+suffix) {
			return true
		}
	}
	return false
}

func keywordReason(keyword string) string {
	return fmt.Sprintf("Suspicious keyword '%s' in domain", keyword)
}

func feedReason(label string) string {
	return fmt.Sprintf("Reputation feed match: %s", label)
}
