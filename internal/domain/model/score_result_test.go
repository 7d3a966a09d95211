package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

func TestNewScoreResult_ClampsAndClassifies(t *testing.T) {
	tests := []struct {
		name          string
		expected      valueobject.Verdict
		score         int
		expectedScore int
	}{
		{"negative clamps to zero", valueobject.VerdictSafe, -15, 0},
		{"boundary safe", valueobject.VerdictSafe, 30, 30},
		{"boundary warning", valueobject.VerdictWarning, 60, 60},
		{"dangerous", valueobject.VerdictDangerous, 75, 75},
		{"overflow clamps to 100", valueobject.VerdictDangerous, 185, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.NewScoreResult(tt.score, nil, valueobject.MethodHeuristic)
			assert.Equal(t, tt.expectedScore, r.Score())
			assert.True(t, tt.expected.Equal(r.Verdict()))
			assert.NotNil(t, r.Reasons())
		})
	}
}

func TestFixedResults(t *testing.T) {
	invalid := model.InvalidResult()
	assert.Equal(t, 0, invalid.Score())
	assert.Equal(t, valueobject.VerdictInvalid, invalid.Verdict())
	assert.Equal(t, []string{"Invalid URL"}, invalid.Reasons())
	assert.True(t, invalid.Method().IsZero())

	blacklisted := model.BlacklistedResult("phishing kit")
	assert.Equal(t, 100, blacklisted.Score())
	assert.Equal(t, valueobject.VerdictDangerous, blacklisted.Verdict())
	assert.Equal(t, []string{"Blacklisted: phishing kit"}, blacklisted.Reasons())
	_, ok := blacklisted.Confidence()
	assert.False(t, ok)

	sig := model.SignatureResult("Test Virus Signature")
	assert.Equal(t, []string{"Known malicious signature: Test Virus Signature"}, sig.Reasons())

	clean := model.CleanResult()
	assert.Equal(t, valueobject.VerdictSafe, clean.Verdict())
	assert.Empty(t, clean.Reasons())

	assert.Equal(t, valueobject.VerdictError, model.ErrorResult().Verdict())
}

func TestScoreResult_WithOverride(t *testing.T) {
	base := model.NewScoreResult(20, []string{"Suspicious keyword 'login' in domain"}, valueobject.MethodHeuristic)

	overridden := base.WithOverride(100, "Reputation feed match: MALWARE")
	assert.Equal(t, 100, overridden.Score())
	assert.Equal(t, valueobject.VerdictDangerous, overridden.Verdict())
	assert.Equal(t, []string{
		"Suspicious keyword 'login' in domain",
		"Reputation feed match: MALWARE",
	}, overridden.Reasons())

	assert.Equal(t, 20, base.Score(), "original must be unchanged")
	assert.Len(t, base.Reasons(), 1)

	invalid := model.InvalidResult().WithOverride(100, "ignored")
	assert.Equal(t, valueobject.VerdictInvalid, invalid.Verdict())
}

func TestScoreResult_WithConfidence(t *testing.T) {
	r := model.NewScoreResult(40, nil, valueobject.MethodHeuristic).WithConfidence(0.2)
	c, ok := r.Confidence()
	assert.True(t, ok)
	assert.InDelta(t, 0.2, c, 1e-9)

	c, _ = r.WithConfidence(1.7).Confidence()
	assert.InDelta(t, 1.0, c, 1e-9)
}

func TestScoreResult_ReasonsAreCopied(t *testing.T) {
	r := model.NewScoreResult(50, []string{"a"}, valueobject.MethodHeuristic)
	reasons := r.Reasons()
	reasons[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.Reasons())
}
