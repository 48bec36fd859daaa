package recommend_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/recommend"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/scoring"
)

func scores(v int) []domain.DimensionScore {
	out := make([]domain.DimensionScore, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		out = append(out, domain.DimensionScore{Key: d.Key, Score: v})
	}
	return out
}

func titles(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestGenerate_AllCriticalFiresEveryScoreRule(t *testing.T) {
	profile := domain.OrganizationProfile{OperatingRegions: []domain.Region{domain.Europe, domain.NorthAmerica, domain.AsiaPacific}}

	recs := recommend.Generate(scores(0), domain.RiskScore{}, profile, domain.TierFree)

	assert.Equal(t, []string{
		"Deploy Shadow AI Detection Immediately",
		"Conduct Comprehensive AI Inventory",
		"Urgent: Assess Top 10 Critical AI Vendors",
		"Establish Quarterly Vendor Review Process",
		"Form AI Governance Committee",
		"Develop AI Acceptable Use Policy",
		"Create AI Incident Response Plan",
		"Customized Vendor Assessment Questionnaire",
		"EU AI Act Compliance Roadmap",
		"US AI Regulatory Compliance Review",
		"Asia-Pacific AI Regulation Review",
		"Multi-Dimensional ROI Framework",
		"Detailed Implementation Roadmap",
		"ISO 42001 Gap Assessment & Certification Roadmap",
		"Continuous AI Monitoring Strategy",
		"AI Data Governance Framework",
		"AI Risk Mitigation Playbook",
	}, titles(recs))
	for _, r := range recs[:7] {
		assert.False(t, r.IsPaid, r.Title)
	}
	for _, r := range recs[7:] {
		assert.True(t, r.IsPaid, r.Title)
	}
}

func TestGenerate_HealthyScoresOnlyUnconditionalRules(t *testing.T) {
	recs := recommend.Generate(scores(100), domain.RiskScore{}, domain.OrganizationProfile{}, domain.TierProfessional)

	assert.Equal(t, []string{
		"Customized Vendor Assessment Questionnaire",
		"Detailed Implementation Roadmap",
		"Continuous AI Monitoring Strategy",
	}, titles(recs))
}

func TestGenerate_Thresholds(t *testing.T) {
	cases := []struct {
		key   domain.DimensionKey
		score int
		title string
		fires bool
	}{
		{domain.ShadowAI, 39, "Deploy Shadow AI Detection Immediately", true},
		{domain.ShadowAI, 40, "Deploy Shadow AI Detection Immediately", false},
		{domain.ShadowAI, 59, "Conduct Comprehensive AI Inventory", true},
		{domain.ShadowAI, 60, "Conduct Comprehensive AI Inventory", false},
		{domain.ShadowAI, 69, "Develop AI Acceptable Use Policy", true},
		{domain.ShadowAI, 70, "Develop AI Acceptable Use Policy", false},
		{domain.SecurityCompliance, 49, "Form AI Governance Committee", true},
		{domain.SecurityCompliance, 50, "Create AI Incident Response Plan", false},
		{domain.SecurityCompliance, 69, "ISO 42001 Gap Assessment & Certification Roadmap", true},
		{domain.ROITracking, 70, "Multi-Dimensional ROI Framework", false},
		{domain.DataGovernance, 49, "AI Data Governance Framework", true},
		{domain.AISpecificRisks, 50, "AI Risk Mitigation Playbook", false},
	}
	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			dims := scores(100)
			for i := range dims {
				if dims[i].Key == tc.key {
					dims[i].Score = tc.score
				}
			}
			got := titles(recommend.Generate(dims, domain.RiskScore{}, domain.OrganizationProfile{}, domain.TierFree))
			if tc.fires {
				assert.Contains(t, got, tc.title)
			} else {
				assert.NotContains(t, got, tc.title)
			}
		})
	}
}

func TestGenerate_MissingDimensionNeverFires(t *testing.T) {
	recs := recommend.Generate(nil, domain.RiskScore{}, domain.OrganizationProfile{}, domain.TierFree)
	assert.Len(t, recs, 3)
}

func TestGenerate_TierDoesNotFilter(t *testing.T) {
	free := recommend.Generate(scores(10), domain.RiskScore{}, domain.OrganizationProfile{}, domain.TierFree)
	pro := recommend.Generate(scores(10), domain.RiskScore{}, domain.OrganizationProfile{}, domain.TierProfessional)
	assert.Equal(t, free, pro)
}

func TestVendorQuestionnaire(t *testing.T) {
	assert.Contains(t, recommend.VendorQuestionnaire(domain.IndustryHealthcare), "HIPAA")
	assert.Contains(t, recommend.VendorQuestionnaire(domain.IndustryLegal), "attorney-client")
	generic := recommend.VendorQuestionnaire(domain.IndustryRetail)
	assert.True(t, strings.HasPrefix(generic, "Full 30-question vendor assessment questionnaire customized to your industry. "))
	assert.Contains(t, generic, "AI-specific contract clauses")
}

func TestVisible(t *testing.T) {
	recs := recommend.Generate(scores(0), domain.RiskScore{}, domain.OrganizationProfile{}, domain.TierFree)

	vis, hidden := recommend.Visible(recs, domain.TierFree)
	assert.Len(t, vis, 7)
	assert.Equal(t, len(recs)-7, hidden)

	vis, hidden = recommend.Visible(recs, domain.TierProfessional)
	assert.Equal(t, recs, vis)
	assert.Zero(t, hidden)
}

func TestGenerate_ExperimenterInEurope(t *testing.T) {
	profile := domain.OrganizationProfile{
		AIMaturityLevel:  domain.Experimenter,
		OperatingRegions: []domain.Region{domain.Europe},
	}
	qs := questionbank.Select(profile.AIMaturityLevel, profile.OperatingRegions)
	var rs []domain.Response
	for _, q := range qs {
		if q.Dimension == domain.ShadowAI {
			rs = append(rs, domain.Response{QuestionID: q.ID, Value: 100})
		}
	}
	res := scoring.Evaluate(rs, profile, qs)

	recs := recommend.Generate(res.DimensionScores, res.RiskScore, profile, domain.TierFree)

	var eu *domain.Recommendation
	for i := range recs {
		if strings.Contains(recs[i].Title, "EU AI Act") {
			eu = &recs[i]
		}
	}
	require.NotNil(t, eu)
	assert.True(t, eu.IsPaid)
	assert.Equal(t, domain.PriorityCritical, eu.Priority)
}
