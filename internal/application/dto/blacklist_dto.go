package dto

import (
	"time"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

// AddBlacklistEntryRequest is the input DTO for adding a deny-list entry.
type AddBlacklistEntryRequest struct {
	Target string `json:"target"`
	Reason string `json:"reason"`
}

// BlacklistEntryResponse is the output DTO for a deny-list entry.
type BlacklistEntryResponse struct {
	AddedAt time.Time `json:"added_at"`
	Target  string    `json:"target"`
	Reason  string    `json:"reason"`
}

// BlacklistPage is one page of deny-list entries.
type BlacklistPage struct {
	Entries []BlacklistEntryResponse `json:"entries"`
	Total   int                      `json:"total"`
	Limit   int                      `json:"limit"`
	Offset  int                      `json:"offset"`
}

// FromBlacklistEntry maps a domain entry to the response DTO.
func FromBlacklistEntry(e model.BlacklistEntry) BlacklistEntryResponse {
	return BlacklistEntryResponse{
		Target:  e.Target(),
		Reason:  e.Reason(),
		AddedAt: e.AddedAt(),
	}
}
