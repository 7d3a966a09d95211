package dto

import (
	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

// CheckURLRequest is the input DTO for the CheckURL use case.
type CheckURLRequest struct {
	URL         string    `json:"url"`
	RequesterID uuid.UUID `json:"-"`
}

// CheckHashRequest is the input DTO for the CheckHash use case.
type CheckHashRequest struct {
	Hash        string    `json:"hash"`
	RequesterID uuid.UUID `json:"-"`
}

// ScoreResponse is the wire shape of a check result. Method and MLConfidence
// are only present for URLs that went through scoring.
type ScoreResponse struct {
	MLConfidence *float64 `json:"ml_confidence,omitempty"`
	Verdict      string   `json:"verdict"`
	Method       string   `json:"method,omitempty"`
	Reasons      []string `json:"reasons"`
	Score        int      `json:"score"`
}

// FromResult maps a domain result to the response DTO.
func FromResult(r model.ScoreResult) ScoreResponse {
	resp := ScoreResponse{
		Score:   r.Score(),
		Verdict: r.Verdict().String(),
		Reasons: r.Reasons(),
		Method:  r.Method().String(),
	}
	if c, ok := r.Confidence(); ok {
		resp.MLConfidence = &c
	}
	return resp
}
