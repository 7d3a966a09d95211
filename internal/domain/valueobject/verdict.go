package valueobject

import "fmt"

// Verdict is an immutable value object representing the categorical outcome of a check.
type Verdict struct {
	value string
}

var (
	VerdictSafe      = Verdict{value: "safe"}
	VerdictWarning   = Verdict{value: "warning"}
	VerdictDangerous = Verdict{value: "dangerous"}
	VerdictInvalid   = Verdict{value: "invalid"}
	VerdictError     = Verdict{value: "error"}
)

// Score thresholds separating safe, warning and dangerous.
const (
	SafeScoreCeiling    = 30
	WarningScoreCeiling = 60
)

// VerdictFromString reconstructs a Verdict from its string representation.
func VerdictFromString(s string) (Verdict, error) {
	switch s {
	case "safe":
		return VerdictSafe, nil
	case "warning":
		return VerdictWarning, nil
	case "dangerous":
		return VerdictDangerous, nil
	case "invalid":
		return VerdictInvalid, nil
	case "error":
		return VerdictError, nil
	default:
		return Verdict{}, fmt.Errorf("invalid verdict: %s", s)
	}
}

// VerdictFromScore classifies a clamped score. It never yields invalid or error.
func VerdictFromScore(score int) Verdict {
	switch {
	case score <= SafeScoreCeiling:
		return VerdictSafe
	case score <= WarningScoreCeiling:
		return VerdictWarning
	default:
		return VerdictDangerous
	}
}

// String returns the string representation.
func (v Verdict) String() string {
	return v.value
}

// IsTerminal reports whether the verdict bypasses score thresholds.
func (v Verdict) IsTerminal() bool {
	return v == VerdictInvalid || v == VerdictError
}

// IsThreat reports whether the verdict counts as a detected threat.
func (v Verdict) IsThreat() bool {
	return v == VerdictDangerous
}

// IsZero returns true if the Verdict has not been set.
func (v Verdict) IsZero() bool {
	return v.value == ""
}

// Equal checks equality with another Verdict.
func (v Verdict) Equal(other Verdict) bool {
	return v.value == other.value
}
