package dto

import (
	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

// GetStatisticsRequest is the input DTO for the GetStatistics use case.
type GetStatisticsRequest struct {
	UserID uuid.UUID
	Days   int
}

// DailyStatisticsResponse is one day of counters. Date is YYYY-MM-DD in UTC
// and is empty for totals.
type DailyStatisticsResponse struct {
	Date            string `json:"date,omitempty"`
	URLsScanned     int    `json:"urls_scanned"`
	ThreatsDetected int    `json:"threats_detected"`
	AppsScanned     int    `json:"apps_scanned"`
}

// StatisticsResponse is the per-day breakdown plus totals.
type StatisticsResponse struct {
	Daily []DailyStatisticsResponse `json:"daily"`
	Total DailyStatisticsResponse   `json:"total"`
	Days  int                       `json:"days"`
}

// FromSummary maps a domain summary to the response DTO.
func FromSummary(s model.StatisticsSummary, days int) StatisticsResponse {
	resp := StatisticsResponse{
		Daily: make([]DailyStatisticsResponse, 0, len(s.Daily)),
		Total: fromDaily(s.Total),
		Days:  days,
	}
	for _, d := range s.Daily {
		resp.Daily = append(resp.Daily, fromDaily(d))
	}
	return resp
}

func fromDaily(d model.DailyStatistics) DailyStatisticsResponse {
	resp := DailyStatisticsResponse{
		URLsScanned:     d.URLsScanned,
		ThreatsDetected: d.ThreatsDetected,
		AppsScanned:     d.AppsScanned,
	}
	if !d.Date.IsZero() {
		resp.Date = d.Date.Format("2006-01-02")
	}
	return resp
}
