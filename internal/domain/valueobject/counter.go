package valueobject

import "fmt"

// Counter names one of the per-user daily statistics columns.
type Counter struct {
	value string
}

var (
	CounterURLsScanned     = Counter{value: "urls_scanned"}
	CounterThreatsDetected = Counter{value: "threats_detected"}
	CounterAppsScanned     = Counter{value: "apps_scanned"}
)

// CounterFromString reconstructs a Counter from its column name.
func CounterFromString(s string) (Counter, error) {
	switch s {
	case "urls_scanned":
		return CounterURLsScanned, nil
	case "threats_detected":
		return CounterThreatsDetected, nil
	case "apps_scanned":
		return CounterAppsScanned, nil
	default:
		return Counter{}, fmt.Errorf("invalid statistics counter: %s", s)
	}
}

// Column returns the storage column name. Only the three fixed counters exist,
// so the value is safe to splice into SQL.
func (c Counter) Column() string {
	return c.value
}

func (c Counter) String() string {
	return c.value
}

func (c Counter) IsZero() bool {
	return c.value == ""
}
