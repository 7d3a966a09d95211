package valueobject

import "fmt"

// Method identifies which scoring strategy produced a reported result.
type Method struct {
	value string
}

var (
	MethodHeuristic  = Method{value: "heuristic"}
	MethodMLEnhanced = Method{value: "ml_enhanced"}
)

// MethodFromString reconstructs a Method from its string representation.
func MethodFromString(s string) (Method, error) {
	switch s {
	case "heuristic":
		return MethodHeuristic, nil
	case "ml_enhanced":
		return MethodMLEnhanced, nil
	default:
		return Method{}, fmt.Errorf("invalid scoring method: %s", s)
	}
}

func (m Method) String() string {
	return m.value
}

// IsZero returns true for results that were not produced by a scoring strategy
// (blacklist hits, invalid input, hash checks).
func (m Method) IsZero() bool {
	return m.value == ""
}

func (m Method) Equal(other Method) bool {
	return m.value == other.value
}
