package scoring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/scoring"
)

func question(id string, dim domain.DimensionKey) domain.Question {
	return domain.Question{
		ID:        id,
		Dimension: dim,
		Text:      "Question " + id,
		HelpText:  "Help for " + id,
		Options: []domain.Option{
			{Label: "worst", Value: 100},
			{Label: "poor", Value: 75},
			{Label: "fair", Value: 50},
			{Label: "good", Value: 25},
			{Label: "best", Value: 0},
		},
	}
}

func answer(id string, v int) domain.Response {
	return domain.Response{QuestionID: id, Value: v}
}

func TestScoreDimension_NoAnswersIsZero(t *testing.T) {
	qs := []domain.Question{question("s1", domain.ShadowAI)}

	ds := scoring.ScoreDimension(domain.ShadowAI, nil, qs)

	assert.Equal(t, 0, ds.Score)
	assert.Equal(t, domain.RiskCritical, ds.RiskLevel)
	assert.Empty(t, ds.QuestionScores)
}

func TestScoreDimension_AveragesAndInverts(t *testing.T) {
	qs := []domain.Question{
		question("s1", domain.ShadowAI),
		question("s2", domain.ShadowAI),
		question("v1", domain.VendorRisk),
	}
	rs := []domain.Response{answer("s1", 25), answer("s2", 50), answer("v1", 100)}

	ds := scoring.ScoreDimension(domain.ShadowAI, rs, qs)

	// avg 37.5 -> 62.5 -> rounds to 63
	assert.Equal(t, 63, ds.Score)
	assert.Equal(t, domain.RiskMedium, ds.RiskLevel)
	assert.Equal(t, []domain.QuestionScore{{QuestionID: "s1", Score: 25}, {QuestionID: "s2", Score: 50}}, ds.QuestionScores)
}

func TestScoreDimension_LaterAnswerWins(t *testing.T) {
	qs := []domain.Question{question("s1", domain.ShadowAI)}
	rs := []domain.Response{answer("s1", 100), answer("s1", 0)}

	ds := scoring.ScoreDimension(domain.ShadowAI, rs, qs)

	assert.Equal(t, 100, ds.Score)
	assert.Equal(t, domain.RiskLow, ds.RiskLevel)
}

func TestScoreDimension_IgnoresUnknownResponses(t *testing.T) {
	qs := []domain.Question{question("s1", domain.ShadowAI)}
	rs := []domain.Response{answer("s1", 0), answer("ghost", 100)}

	ds := scoring.ScoreDimension(domain.ShadowAI, rs, qs)

	assert.Equal(t, 100, ds.Score)
	assert.Len(t, ds.QuestionScores, 1)
}

func TestRiskLevelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{100, domain.RiskLow},
		{70, domain.RiskLow},
		{69, domain.RiskMedium},
		{40, domain.RiskMedium},
		{39, domain.RiskHigh},
		{20, domain.RiskHigh},
		{19, domain.RiskCritical},
		{0, domain.RiskCritical},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.score), func(t *testing.T) {
			assert.Equal(t, tc.want, domain.RiskLevelFor(tc.score))
		})
	}
}

func uniform(score int) []domain.DimensionScore {
	out := make([]domain.DimensionScore, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		out = append(out, domain.DimensionScore{Key: d.Key, Score: score, RiskLevel: domain.RiskLevelFor(float64(score))})
	}
	return out
}

func TestAggregate_UniformScoresConserveWeight(t *testing.T) {
	for _, s := range []int{0, 19, 20, 39, 40, 55, 69, 70, 100} {
		rs := scoring.Aggregate(uniform(s), domain.OrganizationProfile{AIMaturityLevel: domain.Builder})
		assert.Equal(t, s, rs.OverallRisk, "uniform %d", s)
		assert.Equal(t, domain.RiskLevelFor(float64(s)), rs.RiskLevel)
	}
}

func TestAggregate_WeightedSum(t *testing.T) {
	dims := []domain.DimensionScore{
		{Key: domain.ShadowAI, Score: 100},
		{Key: domain.VendorRisk, Score: 0},
		{Key: domain.DataGovernance, Score: 50},
		{Key: domain.SecurityCompliance, Score: 40},
		{Key: domain.AISpecificRisks, Score: 10},
		{Key: domain.ROITracking, Score: 80},
	}
	// 25 + 0 + 10 + 6 + 1 + 4
	rs := scoring.Aggregate(dims, domain.OrganizationProfile{AIMaturityLevel: domain.Experimenter})

	assert.Equal(t, 46, rs.OverallRisk)
	assert.Equal(t, domain.RiskMedium, rs.RiskLevel)
	assert.Equal(t, 100, rs.Dimensions[domain.ShadowAI])
}

func TestAggregate_AchieverBonusAndClamp(t *testing.T) {
	cases := []struct {
		level    domain.MaturityLevel
		overall  int
		achiever int
		target   domain.MaturityLevel
	}{
		{domain.Experimenter, 60, 60, domain.Innovator},
		{domain.Builder, 20, 25, domain.Builder},
		{domain.Innovator, 65, 75, domain.Achiever},
		{domain.Achiever, 95, 100, domain.Achiever},
		{domain.Achiever, 0, 15, domain.Experimenter},
		{"unknown", 30, 30, domain.Builder},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			rs := scoring.Aggregate(uniform(tc.overall), domain.OrganizationProfile{AIMaturityLevel: tc.level})
			assert.Equal(t, tc.achiever, rs.AchieverScore)
			assert.Equal(t, tc.target, rs.TargetMaturity)
			assert.Equal(t, tc.level.Normalize(), rs.CurrentMaturity)
		})
	}
}

func TestAggregate_MaturityGaps(t *testing.T) {
	dims := []domain.DimensionScore{
		{Key: domain.ShadowAI, Score: 15, RiskLevel: domain.RiskCritical},
		{Key: domain.VendorRisk, Score: 39, RiskLevel: domain.RiskHigh},
		{Key: domain.DataGovernance, Score: 40, RiskLevel: domain.RiskMedium},
	}

	rs := scoring.Aggregate(dims, domain.OrganizationProfile{AIMaturityLevel: domain.Experimenter})
	assert.Equal(t, []string{
		"AI Visibility & Sprawl Control governance is critical (score: 15/100)",
		"Vendor AI Risk Management governance is high (score: 39/100)",
		"No formal AI governance framework in place",
	}, rs.MaturityGaps)

	rs = scoring.Aggregate(dims, domain.OrganizationProfile{AIMaturityLevel: domain.Innovator})
	assert.Len(t, rs.MaturityGaps, 2)
}

func TestExtractBlindSpots_OrderAndCutoff(t *testing.T) {
	qs := []domain.Question{
		question("s1", domain.ShadowAI),
		question("v1", domain.VendorRisk),
		question("d1", domain.DataGovernance),
		question("r1", domain.ROITracking),
	}
	rs := []domain.Response{
		answer("s1", 75),     // score 25
		answer("v1", 100),    // score 0
		answer("d1", 50),     // score 50, above cutoff
		answer("r1", 100),    // score 0, ties with v1
		answer("ghost", 100), // unknown question
	}

	spots := scoring.ExtractBlindSpots(rs, qs)

	require.Len(t, spots, 3)
	assert.Equal(t, "v1", spots[0].QuestionID)
	assert.Equal(t, "r1", spots[1].QuestionID)
	assert.Equal(t, "s1", spots[2].QuestionID)
	assert.Equal(t, domain.RiskCritical, spots[0].Severity)
	assert.Equal(t, domain.RiskHigh, spots[2].Severity)
	assert.Equal(t, "Question v1", spots[0].Title)
	assert.Equal(t, "Help for v1", spots[0].Description)
	assert.Equal(t, scoring.ImmediateAction(domain.VendorRisk, 0), spots[0].ImmediateAction)
}

func TestExtractBlindSpots_CapsAtTen(t *testing.T) {
	qs := make([]domain.Question, 0, 15)
	rs := make([]domain.Response, 0, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("q%d", i)
		qs = append(qs, question(id, domain.ShadowAI))
		rs = append(rs, answer(id, 100))
	}

	spots := scoring.ExtractBlindSpots(rs, qs)

	require.Len(t, spots, scoring.MaxBlindSpots)
	assert.Equal(t, "q0", spots[0].QuestionID)
	assert.Equal(t, "q9", spots[9].QuestionID)
}

func TestExtractBlindSpots_CutoffAppliesAfterCap(t *testing.T) {
	qs := make([]domain.Question, 0, 12)
	rs := make([]domain.Response, 0, 12)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("q%d", i)
		qs = append(qs, question(id, domain.VendorRisk))
		v := 0
		if i < 3 {
			v = 100
		}
		rs = append(rs, answer(id, v))
	}

	spots := scoring.ExtractBlindSpots(rs, qs)

	assert.Len(t, spots, 3)
}

func TestImmediateAction_DispatchesOnDimension(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range domain.Dimensions {
		text := scoring.ImmediateAction(d.Key, 10)
		assert.NotEmpty(t, text)
		assert.False(t, seen[text], "duplicate action for %s", d.Key)
		seen[text] = true
	}
	assert.Equal(t,
		"Address this high-risk area within 30 days. Develop a remediation plan with clear ownership and timeline.",
		scoring.ImmediateAction("general", 30))
}

func TestEvaluate_AllBestAnswers(t *testing.T) {
	qs := questionbank.Select(domain.Builder, []domain.Region{domain.NorthAmerica})
	rs := make([]domain.Response, 0, len(qs))
	for _, q := range qs {
		rs = append(rs, answer(q.ID, q.BestValue()))
	}

	res := scoring.Evaluate(rs, domain.OrganizationProfile{AIMaturityLevel: domain.Builder}, qs)

	require.Len(t, res.DimensionScores, len(domain.Dimensions))
	for _, ds := range res.DimensionScores {
		assert.Equal(t, 100, ds.Score, ds.Key)
		assert.Equal(t, domain.RiskLow, ds.RiskLevel)
	}
	assert.Equal(t, 100, res.RiskScore.OverallRisk)
	assert.Equal(t, 100, res.RiskScore.AchieverScore)
	assert.Equal(t, domain.Achiever, res.RiskScore.TargetMaturity)
	assert.Empty(t, res.BlindSpots)
	assert.Empty(t, res.RiskScore.MaturityGaps)
}

func TestEvaluate_ExperimenterInEuropeWorstShadowAI(t *testing.T) {
	profile := domain.OrganizationProfile{
		AIMaturityLevel:  domain.Experimenter,
		OperatingRegions: []domain.Region{domain.Europe},
	}
	qs := questionbank.Select(profile.AIMaturityLevel, profile.OperatingRegions)
	var rs []domain.Response
	for _, q := range qs {
		if q.Dimension == domain.ShadowAI {
			rs = append(rs, answer(q.ID, q.Options[0].Value))
		}
	}
	require.NotEmpty(t, rs)

	res := scoring.Evaluate(rs, profile, qs)

	for _, ds := range res.DimensionScores {
		assert.Equal(t, domain.RiskCritical, ds.RiskLevel, ds.Key)
	}
	shadow, ok := res.Lookup(domain.ShadowAI)
	require.True(t, ok)
	assert.Equal(t, 0, shadow.Score)
	assert.Equal(t, 0, res.RiskScore.OverallRisk)
	assert.Equal(t, 0, res.RiskScore.AchieverScore)
	assert.Equal(t, domain.Experimenter, res.RiskScore.TargetMaturity)
	assert.Len(t, res.RiskScore.MaturityGaps, len(domain.Dimensions)+1)
	assert.NotEmpty(t, res.BlindSpots)
	for _, bs := range res.BlindSpots {
		assert.Equal(t, domain.ShadowAI, bs.Dimension)
	}
}
