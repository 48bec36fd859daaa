package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDimensionWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, d := range Dimensions {
		sum += d.Weight
		assert.Equal(t, d.Weight, d.Key.Weight())
		assert.True(t, d.Key.Valid())
	}
	assert.Len(t, Dimensions, 6)
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.False(t, DimensionKey("general").Valid())
	assert.Equal(t, "general", DimensionKey("general").Label())
}

func TestRiskLevelFor(t *testing.T) {
	cases := []struct {
		score float64
		want  RiskLevel
	}{
		{100, RiskLow}, {70, RiskLow}, {69.99, RiskMedium}, {40, RiskMedium},
		{39.5, RiskHigh}, {20, RiskHigh}, {19.99, RiskCritical}, {0, RiskCritical},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RiskLevelFor(c.score), "score %v", c.score)
	}
}

func TestParseMaturity(t *testing.T) {
	assert.Equal(t, Builder, ParseMaturity(" builder "))
	assert.Equal(t, Achiever, ParseMaturity("ACHIEVER"))
	assert.Equal(t, Experimenter, ParseMaturity("guru"))
	assert.Equal(t, Experimenter, MaturityLevel("").Normalize())
	assert.Equal(t, 2, Innovator.Rank())
}

func TestOrganizationKey(t *testing.T) {
	cases := map[string]OrganizationProfile{
		"acme.co.uk":   {OrganizationName: "Acme", Website: "https://portal.acme.co.uk/login"},
		"example.com":  {Website: "WWW.Example.com"},
		"acme corp":    {OrganizationName: "  Acme Corp "},
		"initech.io":   {OrganizationName: "Initech", Website: "initech.io:8443"},
		"":             {},
		"localhost":    {Website: "http://localhost"},
		"contoso.com":  {Website: "contoso.com/path?q=1"},
		"fabrikam.org": {OrganizationName: "ignored", Website: "https://a.b.fabrikam.org"},
	}
	for want, p := range cases {
		assert.Equal(t, want, p.OrganizationKey(), "%+v", p)
	}
}

func TestQuestionOptions(t *testing.T) {
	q := Question{Options: []Option{{Label: "None", Value: 100}, {Label: "Some", Value: 50}, {Label: "Full", Value: 0}}}
	assert.True(t, q.HasOption(50))
	assert.False(t, q.HasOption(25))
	assert.Equal(t, 0, q.BestValue())
	assert.Equal(t, 0, Question{}.BestValue())
}

func TestReminderScheduleDue(t *testing.T) {
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := ReminderSchedule{OrgKey: "acme.example", ReferenceAt: ref, Fired: map[Milestone]bool{}}

	assert.Empty(t, s.Due(ref.Add(29*24*time.Hour)))
	assert.Equal(t, []Milestone{Milestone30}, s.Due(ref.Add(30*24*time.Hour)))
	assert.Equal(t, []Milestone{Milestone30, Milestone60, Milestone90}, s.Due(ref.Add(100*24*time.Hour)))

	s.Fired[Milestone30] = true
	assert.Equal(t, []Milestone{Milestone60}, s.Due(ref.Add(61*24*time.Hour)))
}

func TestTierFromLicense(t *testing.T) {
	assert.Equal(t, TierProfessional, TierFromLicense(true))
	assert.Equal(t, TierFree, TierFromLicense(false))
	assert.True(t, StatusComplete.Valid())
	assert.False(t, MitigationStatus("done").Valid())
}

func TestMaturityLevelUnmarshalJSON(t *testing.T) {
	var p OrganizationProfile
	assert.NoError(t, json.Unmarshal([]byte(`{"aiMaturityLevel":"innovator"}`), &p))
	assert.Equal(t, Innovator, p.AIMaturityLevel)

	assert.NoError(t, json.Unmarshal([]byte(`{"aiMaturityLevel":"unheard of"}`), &p))
	assert.Equal(t, Experimenter, p.AIMaturityLevel)

	assert.Error(t, json.Unmarshal([]byte(`{"aiMaturityLevel":3}`), &p))
}
