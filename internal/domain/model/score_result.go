package model

import (
	"fmt"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

const (
	MinScore = 0
	MaxScore = 100

	reasonInvalidURL    = "Invalid URL"
	reasonInternalError = "Internal error"
)

// ScoreResult is the outcome of a URL or hash check. The score is always
// clamped to [0, 100] and, except for the terminal verdicts, the verdict is
// derived from the score.
type ScoreResult struct {
	verdict       valueobject.Verdict
	method        valueobject.Method
	reasons       []string
	score         int
	confidence    float64
	hasConfidence bool
}

// NewScoreResult clamps score and classifies it.
func NewScoreResult(score int, reasons []string, method valueobject.Method) ScoreResult {
	score = Clamp(score)
	return ScoreResult{
		score:   score,
		verdict: valueobject.VerdictFromScore(score),
		reasons: nonNil(reasons),
		method:  method,
	}
}

// InvalidResult is returned when no host could be extracted from the input.
func InvalidResult() ScoreResult {
	return ScoreResult{
		score:   0,
		verdict: valueobject.VerdictInvalid,
		reasons: []string{reasonInvalidURL},
	}
}

// ErrorResult is returned when a check failed internally.
func ErrorResult() ScoreResult {
	return ScoreResult{
		score:   0,
		verdict: valueobject.VerdictError,
		reasons: []string{reasonInternalError},
	}
}

// BlacklistedResult short-circuits a check whose target is on the deny-list.
func BlacklistedResult(reason string) ScoreResult {
	return ScoreResult{
		score:   MaxScore,
		verdict: valueobject.VerdictDangerous,
		reasons: []string{fmt.Sprintf("Blacklisted: %s", reason)},
	}
}

// SignatureResult reports a hash found in the known-malware signature set.
func SignatureResult(description string) ScoreResult {
	return ScoreResult{
		score:   MaxScore,
		verdict: valueobject.VerdictDangerous,
		reasons: []string{fmt.Sprintf("Known malicious signature: %s", description)},
	}
}

// CleanResult is the result of a hash check with no match.
func CleanResult() ScoreResult {
	return ScoreResult{
		score:   0,
		verdict: valueobject.VerdictSafe,
		reasons: []string{},
	}
}

// WithConfidence returns a copy carrying the weighted strategy's confidence.
func (r ScoreResult) WithConfidence(confidence float64) ScoreResult {
	switch {
	case confidence < 0:
		confidence = 0
	case confidence > 1:
		confidence = 1
	}
	r.reasons = append([]string(nil), r.reasons...)
	r.confidence = confidence
	r.hasConfidence = true
	return r
}

// WithOverride returns a copy forced to score with reason appended. Used for
// signals that set the score instead of adding to it.
func (r ScoreResult) WithOverride(score int, reason string) ScoreResult {
	if r.verdict.IsTerminal() {
		return r
	}
	r.score = Clamp(score)
	r.verdict = valueobject.VerdictFromScore(r.score)
	r.reasons = append(append([]string(nil), r.reasons...), reason)
	return r
}

func (r ScoreResult) Score() int                   { return r.score }
func (r ScoreResult) Verdict() valueobject.Verdict { return r.verdict }
func (r ScoreResult) Method() valueobject.Method   { return r.method }

// Reasons returns a copy of the reasons, never nil.
func (r ScoreResult) Reasons() []string {
	return append([]string{}, r.reasons...)
}

// Confidence returns the weighted confidence and whether one was attached.
func (r ScoreResult) Confidence() (float64, bool) {
	return r.confidence, r.hasConfidence
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func nonNil(reasons []string) []string {
	if reasons == nil {
		return []string{}
	}
	return append([]string{}, reasons...)
}
