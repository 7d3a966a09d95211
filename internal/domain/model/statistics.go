package model

import (
	"time"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// DailyStatistics holds one user's counters for one UTC day.
type DailyStatistics struct {
	Date            time.Time
	URLsScanned     int
	ThreatsDetected int
	AppsScanned     int
}

// Apply increments the field behind each counter once per occurrence.
func (d *DailyStatistics) Apply(counters ...valueobject.Counter) {
	for _, c := range counters {
		switch c {
		case valueobject.CounterURLsScanned:
			d.URLsScanned++
		case valueobject.CounterThreatsDetected:
			d.ThreatsDetected++
		case valueobject.CounterAppsScanned:
			d.AppsScanned++
		}
	}
}

// StatisticsSummary is the per-day breakdown for a window plus the user's
// all-time totals.
type StatisticsSummary struct {
	Daily []DailyStatistics
	Total DailyStatistics
}

// Summarize pairs the window rows with all-time totals. The total carries no date.
func Summarize(daily []DailyStatistics, total DailyStatistics) StatisticsSummary {
	if daily == nil {
		daily = []DailyStatistics{}
	}
	total.Date = time.Time{}
	return StatisticsSummary{Daily: daily, Total: total}
}

// Add accumulates other's counters into d.
func (d *DailyStatistics) Add(other DailyStatistics) {
	d.URLsScanned += other.URLsScanned
	d.ThreatsDetected += other.ThreatsDetected
	d.AppsScanned += other.AppsScanned
}

// Day truncates t to the start of its UTC day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
