package questionbank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
)

func ids(qs []domain.Question) map[string]bool {
	m := make(map[string]bool, len(qs))
	for _, q := range qs {
		m[q.ID] = true
	}
	return m
}

func TestLoadEmbedded(t *testing.T) {
	c, err := questionbank.LoadEmbedded()
	require.NoError(t, err)

	for _, level := range domain.MaturityLevels {
		b := c.Bank(level)
		assert.Equal(t, level, b.Profile)
		assert.NotEmpty(t, b.Version)
		dims := map[domain.DimensionKey]bool{}
		for _, q := range b.Questions {
			dims[q.Dimension] = true
		}
		assert.Len(t, dims, len(domain.Dimensions), "%s bank must cover every dimension", level)
	}
	assert.GreaterOrEqual(t, len(c.Bank(domain.Experimenter).Questions), 60)
}

func TestSelect_UnknownMaturityFallsBack(t *testing.T) {
	got := questionbank.Select("Wizard", nil)
	want := questionbank.Select(domain.Experimenter, nil)
	assert.Equal(t, want, got)
}

func TestSelect_NoRegionsOnlyUntagged(t *testing.T) {
	for _, q := range questionbank.Select(domain.Experimenter, nil) {
		for _, j := range q.Jurisdictions {
			assert.Equal(t, domain.JurisdictionAll, j, q.ID)
		}
	}
}

func TestSelect_UnionSemantics(t *testing.T) {
	eu := ids(questionbank.Select(domain.Experimenter, []domain.Region{domain.Europe}))
	us := ids(questionbank.Select(domain.Experimenter, []domain.Region{domain.NorthAmerica}))
	both := ids(questionbank.Select(domain.Experimenter, []domain.Region{domain.Europe, domain.NorthAmerica}))

	// tagged [eu, us]
	assert.True(t, eu["vendor-e-11"])
	assert.True(t, us["vendor-e-11"])
	// eu only / us only
	assert.True(t, eu["security-e-11"])
	assert.False(t, us["security-e-11"])
	assert.True(t, us["security-e-12"])
	assert.False(t, eu["security-e-12"])
	// Europe maps to uk too
	assert.True(t, eu["data-e-11"])

	for id := range eu {
		assert.True(t, both[id], id)
	}
	for id := range us {
		assert.True(t, both[id], id)
	}
	assert.False(t, both["data-e-12"])
}

func TestSelect_PreservesBankOrder(t *testing.T) {
	bank := questionbank.Default().Bank(domain.Experimenter).Questions
	sel := questionbank.Select(domain.Experimenter, []domain.Region{domain.AsiaPacific})

	pos := make(map[string]int, len(bank))
	for i, q := range bank {
		pos[q.ID] = i
	}
	for i := 1; i < len(sel); i++ {
		assert.Less(t, pos[sel[i-1].ID], pos[sel[i].ID])
	}
}

func TestPrimaryJurisdiction(t *testing.T) {
	assert.Equal(t, domain.JurisdictionAll, questionbank.PrimaryJurisdiction(nil))
	assert.Equal(t, domain.JurisdictionEU, questionbank.PrimaryJurisdiction([]domain.Region{domain.Europe, domain.NorthAmerica}))
	assert.Equal(t, domain.JurisdictionUS, questionbank.PrimaryJurisdiction([]domain.Region{"Atlantis", domain.NorthAmerica}))
}

func TestParse_RejectsBadBanks(t *testing.T) {
	cases := map[string]string{
		"unknown dimension": `
profile: Builder
version: "1"
questions:
  - id: x-1
    dimension: vibes
    text: "?"
    options: [{label: a, value: 100}, {label: b, value: 0}]
`,
		"options out of order": `
profile: Builder
version: "1"
questions:
  - id: x-1
    dimension: shadowAI
    text: "?"
    options: [{label: a, value: 0}, {label: b, value: 100}]
`,
		"unknown jurisdiction": `
profile: Builder
version: "1"
questions:
  - id: x-1
    dimension: shadowAI
    text: "?"
    jurisdictions: [mars]
    options: [{label: a, value: 100}, {label: b, value: 0}]
`,
		"duplicate id": `
profile: Builder
version: "1"
questions:
  - id: x-1
    dimension: shadowAI
    text: "?"
    options: [{label: a, value: 100}, {label: b, value: 0}]
  - id: x-1
    dimension: shadowAI
    text: "?"
    options: [{label: a, value: 100}, {label: b, value: 0}]
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := questionbank.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestNewCatalog_RejectsSharedIDs(t *testing.T) {
	q := domain.Question{ID: "dup", Dimension: domain.ShadowAI, Text: "?"}
	_, err := questionbank.NewCatalog(
		questionbank.Bank{Profile: domain.Builder, Questions: []domain.Question{q}},
		questionbank.Bank{Profile: domain.Innovator, Questions: []domain.Question{q}},
	)
	assert.Error(t, err)
}

func TestValidateResponses(t *testing.T) {
	qs := questionbank.Select(domain.Builder, nil)
	require.NotEmpty(t, qs)
	first := qs[0]

	assert.NoError(t, questionbank.ValidateResponses([]domain.Response{{QuestionID: first.ID, Value: first.Options[0].Value}}, qs))

	err := questionbank.ValidateResponses([]domain.Response{
		{QuestionID: "nope", Value: 0},
		{QuestionID: first.ID, Value: 13},
	}, qs)
	require.Error(t, err)
	assert.ErrorIs(t, err, questionbank.ErrUnknownQuestion)
	assert.ErrorIs(t, err, questionbank.ErrInvalidOption)
}

func TestDedupe(t *testing.T) {
	got := questionbank.Dedupe([]domain.Response{
		{QuestionID: "a", Value: 100},
		{QuestionID: "b", Value: 50},
		{QuestionID: "a", Value: 0},
	})
	assert.Equal(t, []domain.Response{{QuestionID: "a", Value: 0}, {QuestionID: "b", Value: 50}}, got)
}
