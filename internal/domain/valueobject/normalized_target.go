package valueobject

import (
	"strings"
	"unicode/utf8"
)

// NormalizedTarget is the structured form of a raw URL. Host is lower-cased and
// carries no port or credentials. An invalid target has an empty host.
type NormalizedTarget struct {
	raw               string
	host              string
	displayHost       string
	registrableDomain string
	valid             bool
}

// NewNormalizedTarget builds a valid target. displayHost and registrableDomain
// may be empty when they could not be derived.
func NewNormalizedTarget(raw, host, displayHost, registrableDomain string) NormalizedTarget {
	if displayHost == "" {
		displayHost = host
	}
	return NormalizedTarget{
		raw:               raw,
		host:              host,
		displayHost:       displayHost,
		registrableDomain: registrableDomain,
		valid:             host != "",
	}
}

// InvalidTarget builds the target for input whose host could not be extracted.
func InvalidTarget(raw string) NormalizedTarget {
	return NormalizedTarget{raw: raw}
}

func (t NormalizedTarget) Raw() string  { return t.raw }
func (t NormalizedTarget) Host() string { return t.host }
func (t NormalizedTarget) IsValid() bool {
	return t.valid
}

// DisplayHost is the Unicode rendering of the host. Never used for scoring.
func (t NormalizedTarget) DisplayHost() string { return t.displayHost }

// RegistrableDomain is the eTLD+1 of the host, or empty for IP literals and
// bare public suffixes.
func (t NormalizedTarget) RegistrableDomain() string { return t.registrableDomain }

// IsPunycode reports whether any label is ACE-encoded.
func (t NormalizedTarget) IsPunycode() bool {
	return strings.Contains(t.host, "xn--")
}

// HasMixedScripts reports whether the host mixes ASCII Latin letters with
// Cyrillic codepoints (U+0400 to U+04FF).
func (t NormalizedTarget) HasMixedScripts() bool {
	var latin, cyrillic bool
	for _, r := range t.host {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin = true
		case r >= 0x0400 && r <= 0x04FF:
			cyrillic = true
		}
		if latin && cyrillic {
			return true
		}
	}
	return false
}

// DotCount is the number of '.' characters in the host.
func (t NormalizedTarget) DotCount() int {
	return strings.Count(t.host, ".")
}

// Length is the host length in characters.
func (t NormalizedTarget) Length() int {
	return utf8.RuneCountInString(t.host)
}

// KeywordMatches returns the keywords contained in the host, in the order given.
func (t NormalizedTarget) KeywordMatches(keywords []string) []string {
	var matches []string
	for _, kw := range keywords {
		if strings.Contains(t.host, kw) {
			matches = append(matches, kw)
		}
	}
	return matches
}
