// Package summary writes the three-paragraph executive summary that opens a
// report.
package summary

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

// Summary is the rendered executive summary.
type Summary struct {
	Context  string `json:"context"`
	Findings string `json:"findings"`
	Actions  string `json:"actions"`
}

// Input carries what the summary is built from.
type Input struct {
	Profile         domain.OrganizationProfile
	OverallScore    int
	RiskLevel       domain.RiskLevel
	DimensionScores []domain.DimensionScore
	Jurisdiction    domain.Jurisdiction
}

var titleCase = cases.Title(language.English)

var dimensionNames = map[domain.DimensionKey]string{
	domain.ShadowAI:           "Shadow AI",
	domain.VendorRisk:         "Vendor Risk",
	domain.DataGovernance:     "Data Governance",
	domain.SecurityCompliance: "Security & Compliance",
	domain.AISpecificRisks:    "AI-Specific Risks",
	domain.ROITracking:        "ROI Tracking",
}

// Build renders the summary.
func Build(in Input) Summary {
	return Summary{
		Context:  contextParagraph(in.Profile),
		Findings: findingsParagraph(in),
		Actions:  actionsParagraph(in.RiskLevel, in.DimensionScores),
	}
}

// Weakest returns up to n dimensions with the lowest scores. Ties keep their
// input order.
func Weakest(dimensionScores []domain.DimensionScore, n int) []domain.DimensionScore {
	sorted := append([]domain.DimensionScore(nil), dimensionScores...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func contextParagraph(p domain.OrganizationProfile) string {
	level := p.AIMaturityLevel.Normalize()
	phrase := industryPhrase(p.Industry)
	return fmt.Sprintf("This assessment evaluated %s's AI governance posture across six dimensions of risk and readiness. As a %s organization %s, %s",
		p.OrganizationName, p.Industry, maturityFraming[level], maturityContext(level, phrase))
}

func findingsParagraph(in Input) string {
	var concern string
	switch top := Weakest(in.DimensionScores, 2); len(top) {
	case 0:
		concern = "the highest-scoring dimension"
	case 1:
		concern = dimensionNames[top[0].Key]
	default:
		concern = dimensionNames[top[0].Key] + " and " + dimensionNames[top[1].Key]
	}
	return fmt.Sprintf("%s scored %d out of 100, placing it in the %s risk category, indicating %s The areas of greatest concern are %s, where current controls are limited relative to your organization's exposure. %s",
		in.Profile.OrganizationName, in.OverallScore, titleCase.String(in.RiskLevel.Lower()),
		riskDescription(in.RiskLevel), concern, jurisdictionNote(in.Jurisdiction))
}

func actionsParagraph(level domain.RiskLevel, dimensionScores []domain.DimensionScore) string {
	out := urgencyOpener(level)
	if top := Weakest(dimensionScores, 1); len(top) == 1 {
		if a, ok := firstAction[top[0].Key]; ok {
			out += " " + a
		}
	}
	return out + " With the right framework in place, organizations can build governance capability progressively, reducing risk while continuing to advance their AI programs with confidence."
}
