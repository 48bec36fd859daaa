package scoring

import (
	"fmt"
	"math"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

// gapThreshold marks a dimension as needing attention in the maturity gaps.
const gapThreshold = 40

const noFrameworkGap = "No formal AI governance framework in place"

var maturityBonus = map[domain.MaturityLevel]int{
	domain.Experimenter: 0,
	domain.Builder:      5,
	domain.Innovator:    10,
	domain.Achiever:     15,
}

// targetCuts maps achiever score lower bounds to a maturity, highest first.
var targetCuts = []struct {
	min   int
	level domain.MaturityLevel
}{
	{75, domain.Achiever},
	{50, domain.Innovator},
	{25, domain.Builder},
	{0, domain.Experimenter},
}

// Aggregate combines dimension scores into the weighted overall score and
// positions the organization on the maturity ladder.
func Aggregate(dimensionScores []domain.DimensionScore, profile domain.OrganizationProfile) domain.RiskScore {
	dims := make(map[domain.DimensionKey]int, len(dimensionScores))
	weighted := 0.0
	for _, ds := range dimensionScores {
		dims[ds.Key] = ds.Score
		weighted += float64(ds.Score) * ds.Key.Weight()
	}
	overall := clamp(int(math.Round(weighted)), 0, 100)

	current := profile.AIMaturityLevel.Normalize()
	achiever := clamp(overall+maturityBonus[current], 0, 100)

	return domain.RiskScore{
		Dimensions:      dims,
		OverallRisk:     overall,
		RiskLevel:       domain.RiskLevelFor(float64(overall)),
		AchieverScore:   achiever,
		CurrentMaturity: current,
		TargetMaturity:  TargetMaturity(achiever),
		MaturityGaps:    maturityGaps(dimensionScores, current),
	}
}

// TargetMaturity is the stage an achiever score qualifies for.
func TargetMaturity(achieverScore int) domain.MaturityLevel {
	for _, c := range targetCuts {
		if achieverScore >= c.min {
			return c.level
		}
	}
	return domain.Experimenter
}

func maturityGaps(dimensionScores []domain.DimensionScore, current domain.MaturityLevel) []string {
	gaps := make([]string, 0)
	for _, ds := range dimensionScores {
		if ds.Score < gapThreshold {
			gaps = append(gaps, fmt.Sprintf("%s governance is %s (score: %d/100)", ds.Key.Label(), ds.RiskLevel.Lower(), ds.Score))
		}
	}
	if current == domain.Experimenter {
		gaps = append(gaps, noFrameworkGap)
	}
	return gaps
}
