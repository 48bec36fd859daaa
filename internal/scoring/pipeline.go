package scoring

import "github.com/baltaguilar-tech/ai-governance-tool/internal/domain"

// Result is the output of one full scoring pass.
type Result struct {
	DimensionScores []domain.DimensionScore `json:"dimensionScores"`
	RiskScore       domain.RiskScore        `json:"riskScore"`
	BlindSpots      []domain.BlindSpot      `json:"blindSpots"`
}

// Evaluate runs the whole pipeline over one consistent snapshot of inputs.
// Callers re-run it in full whenever responses or the profile change.
func Evaluate(responses []domain.Response, profile domain.OrganizationProfile, questions []domain.Question) Result {
	dims := ScoreDimensions(responses, questions)
	return Result{
		DimensionScores: dims,
		RiskScore:       Aggregate(dims, profile),
		BlindSpots:      ExtractBlindSpots(responses, questions),
	}
}

// Lookup returns the score for key, if it was computed.
func (r Result) Lookup(key domain.DimensionKey) (domain.DimensionScore, bool) {
	for _, ds := range r.DimensionScores {
		if ds.Key == key {
			return ds, true
		}
	}
	return domain.DimensionScore{}, false
}
