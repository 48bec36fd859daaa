package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/summary"
)

func dims() []domain.DimensionScore {
	return []domain.DimensionScore{
		{Key: domain.ShadowAI, Score: 80},
		{Key: domain.VendorRisk, Score: 12},
		{Key: domain.DataGovernance, Score: 55},
		{Key: domain.SecurityCompliance, Score: 12},
		{Key: domain.AISpecificRisks, Score: 90},
		{Key: domain.ROITracking, Score: 30},
	}
}

func TestWeakest(t *testing.T) {
	got := summary.Weakest(dims(), 3)
	assert.Equal(t, domain.VendorRisk, got[0].Key)
	assert.Equal(t, domain.SecurityCompliance, got[1].Key)
	assert.Equal(t, domain.ROITracking, got[2].Key)

	assert.Len(t, summary.Weakest(dims()[:1], 2), 1)
	assert.Empty(t, summary.Weakest(nil, 2))
}

func TestBuild(t *testing.T) {
	s := summary.Build(summary.Input{
		Profile: domain.OrganizationProfile{
			OrganizationName: "Acme Health",
			Industry:         domain.IndustryHealthcare,
			AIMaturityLevel:  domain.Builder,
		},
		OverallScore:    38,
		RiskLevel:       domain.RiskHigh,
		DimensionScores: dims(),
		Jurisdiction:    domain.JurisdictionEU,
	})

	assert.Contains(t, s.Context, "This assessment evaluated Acme Health's AI governance posture")
	assert.Contains(t, s.Context, "As a Healthcare organization actively building AI capabilities")
	assert.Contains(t, s.Context, "patient data and clinical decision support")

	assert.Contains(t, s.Findings, "Acme Health scored 38 out of 100, placing it in the High risk category")
	assert.Contains(t, s.Findings, "The areas of greatest concern are Vendor Risk and Security & Compliance")
	assert.Contains(t, s.Findings, "EU AI Act")

	assert.Contains(t, s.Actions, "structured attention")
	assert.Contains(t, s.Actions, "structured vendor AI risk review")
}

func TestBuild_Fallbacks(t *testing.T) {
	s := summary.Build(summary.Input{
		Profile:      domain.OrganizationProfile{OrganizationName: "Nobody", Industry: domain.IndustryRetail},
		OverallScore: 0,
		RiskLevel:    domain.RiskCritical,
		Jurisdiction: "moon",
	})

	assert.Contains(t, s.Context, "organizational data and operations")
	assert.Contains(t, s.Context, "beginning to explore AI's potential")
	assert.Contains(t, s.Findings, "Critical risk category")
	assert.Contains(t, s.Findings, "the highest-scoring dimension")
	assert.Contains(t, s.Findings, "global AI regulatory landscape")
	assert.NotContains(t, s.Actions, "most pressing action")
}
