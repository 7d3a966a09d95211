package valueobject

// SignalKind enumerates the fixed set of detectors. The order of the constants is
// the order in which signals are evaluated and reasons are reported.
type SignalKind int

const (
	SignalPunycode SignalKind = iota
	SignalSuspiciousKeyword
	SignalIPLiteral
	SignalLongHost
	SignalManySubdomains
	SignalHomograph
	SignalBrandImpersonation
	SignalExternalFeed

	// SignalKindCount sizes per-kind lookup tables.
	SignalKindCount
)

var signalKindNames = [SignalKindCount]string{
	SignalPunycode:           "punycode",
	SignalSuspiciousKeyword:  "suspicious_keyword",
	SignalIPLiteral:          "ip_literal",
	SignalLongHost:           "long_host",
	SignalManySubdomains:     "many_subdomains",
	SignalHomograph:          "homograph",
	SignalBrandImpersonation: "brand_impersonation",
	SignalExternalFeed:       "external_feed",
}

// SignalKinds returns every kind in evaluation order.
func SignalKinds() []SignalKind {
	kinds := make([]SignalKind, 0, SignalKindCount)
	for k := SignalKind(0); k < SignalKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the snake_case name used in logs and rules files.
func (k SignalKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return signalKindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k SignalKind) Valid() bool {
	return k >= 0 && k < SignalKindCount
}

// SignalKindFromString resolves a kind by name.
func SignalKindFromString(s string) (SignalKind, bool) {
	for k, name := range signalKindNames {
		if name == s {
			return SignalKind(k), true
		}
	}
	return 0, false
}
