package valueobject

import "fmt"

// TargetKind is the kind of artifact a check was run against. The string form is
// what the request log stores.
type TargetKind struct {
	value string
}

var (
	TargetKindURL = TargetKind{value: "URL"}
	TargetKindAPK = TargetKind{value: "APK"}
)

// TargetKindFromString reconstructs a TargetKind from its string representation.
func TargetKindFromString(s string) (TargetKind, error) {
	switch s {
	case "URL":
		return TargetKindURL, nil
	case "APK":
		return TargetKindAPK, nil
	default:
		return TargetKind{}, fmt.Errorf("invalid target kind: %s", s)
	}
}

func (k TargetKind) String() string {
	return k.value
}

func (k TargetKind) IsZero() bool {
	return k.value == ""
}

func (k TargetKind) Equal(other TargetKind) bool {
	return k.value == other.value
}

// Counter returns the per-user statistics counter a check of this kind increments.
func (k TargetKind) Counter() Counter {
	if k == TargetKindAPK {
		return CounterAppsScanned
	}
	return CounterURLsScanned
}
