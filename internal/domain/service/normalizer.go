package service

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// Normalize extracts the lower-cased host from a raw URL. It performs no DNS
// or network access. Input without an authority (for example "example.com"
// with no scheme) has no host and is invalid.
func Normalize(raw string) valueobject.NormalizedTarget {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil {
		return valueobject.InvalidTarget(raw)
	}

	// A fully qualified name names the same host as its dotless form.
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return valueobject.InvalidTarget(raw)
	}

	return valueobject.NewNormalizedTarget(raw, host, displayHost(host), registrableDomain(host))
}

func displayHost(host string) string {
	display, err := idna.Display.ToUnicode(host)
	if err != nil {
		return host
	}
	return display
}

func registrableDomain(host string) string {
	if net.ParseIP(host) != nil || ipLiteral.MatchString(host) {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return domain
}

// BlacklistKeys returns the deny-list keys for a target: the host, then its
// registrable domain when that differs.
func BlacklistKeys(t valueobject.NormalizedTarget) []string {
	if !t.IsValid() {
		return nil
	}
	keys := []string{t.Host()}
	if d := t.RegistrableDomain(); d != "" && d != t.Host() {
		keys = append(keys, d)
	}
	return keys
}
