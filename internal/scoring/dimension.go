// Package scoring turns questionnaire responses into dimension scores, a
// weighted composite, and ranked blind spots. Every function is pure: the
// same inputs always produce the same output and nothing is logged or stored.
package scoring

import (
	"math"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

// worstRaw is the raw average assumed for a dimension with no answers, so an
// unanswered dimension scores 0 rather than passing.
const worstRaw = 100

// ScoreDimension averages the raw values answered for key and inverts the
// result into a 0-100 governance score.
func ScoreDimension(key domain.DimensionKey, responses []domain.Response, questions []domain.Question) domain.DimensionScore {
	answers := lastAnswers(responses)

	scores := make([]domain.QuestionScore, 0)
	total, answered := 0, 0
	for _, q := range questions {
		if q.Dimension != key {
			continue
		}
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		scores = append(scores, domain.QuestionScore{QuestionID: q.ID, Score: v})
		total += v
		answered++
	}

	avg := float64(worstRaw)
	if answered > 0 {
		avg = float64(total) / float64(answered)
	}
	score := clamp(int(math.Round(100-avg)), 0, 100)

	return domain.DimensionScore{
		Key:            key,
		Score:          score,
		RiskLevel:      domain.RiskLevelFor(float64(score)),
		QuestionScores: scores,
	}
}

// ScoreDimensions scores every dimension in catalog order.
func ScoreDimensions(responses []domain.Response, questions []domain.Question) []domain.DimensionScore {
	out := make([]domain.DimensionScore, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		out = append(out, ScoreDimension(d.Key, responses, questions))
	}
	return out
}

// lastAnswers indexes responses by question id. A later answer to the same
// question replaces the earlier one.
func lastAnswers(responses []domain.Response) map[string]int {
	m := make(map[string]int, len(responses))
	for _, r := range responses {
		m[r.QuestionID] = r.Value
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
