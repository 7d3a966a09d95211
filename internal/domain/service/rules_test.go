package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/service"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

func TestDefaultRules_Valid(t *testing.T) {
	require.NoError(t, service.DefaultRules().Validate())
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		mutate  func(r *service.Rules)
		name    string
		wantErr string
	}{
		{
			name:    "negative points",
			mutate:  func(r *service.Rules) { r.Points[valueobject.SignalHomograph] = -1 },
			wantErr: "points for homograph",
		},
		{
			name:    "feed override above 100",
			mutate:  func(r *service.Rules) { r.Points[valueobject.SignalExternalFeed] = 150 },
			wantErr: "external feed override",
		},
		{
			name:    "feed override lowered",
			mutate:  func(r *service.Rules) { r.Points[valueobject.SignalExternalFeed] = 0 },
			wantErr: "external feed override",
		},
		{
			name:    "empty keyword",
			mutate:  func(r *service.Rules) { r.Keywords = append(r.Keywords, "") },
			wantErr: "keywords must not contain empty entries",
		},
		{
			name:    "empty whitelist entry",
			mutate:  func(r *service.Rules) { r.KeywordWhitelist = []string{""} },
			wantErr: "keyword_whitelist must not contain empty entries",
		},
		{
			name:    "empty brand",
			mutate:  func(r *service.Rules) { r.Brands = []string{"paypal", ""} },
			wantErr: "brands must not contain empty entries",
		},
		{
			name:    "negative weight",
			mutate:  func(r *service.Rules) { r.Weights.IPLiteral = decimal.NewFromFloat(-0.1) },
			wantErr: "weight for ip_literal",
		},
		{
			name:    "zero saturation",
			mutate:  func(r *service.Rules) { r.Weights.KeywordSaturation = 0 },
			wantErr: "saturation",
		},
		{
			name:    "threshold out of range",
			mutate:  func(r *service.Rules) { r.MLConfidenceThreshold = decimal.NewFromInt(-1) },
			wantErr: "ml confidence threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := service.DefaultRules()
			tt.mutate(&rules)
			err := rules.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKnownSignatures_IsCopy(t *testing.T) {
	sigs := service.KnownSignatures()
	assert.Len(t, sigs, 2)
	delete(sigs, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	assert.Len(t, service.KnownSignatures(), 2)
}
