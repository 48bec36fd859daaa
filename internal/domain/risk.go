package domain

import (
	"encoding/json"
	"strings"
)

// RiskLevel is the four-tier classification of a 0-100 governance score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Score thresholds, inclusive on the lower bound. Higher scores are healthier.
const (
	LowRiskThreshold    = 70
	MediumRiskThreshold = 40
	HighRiskThreshold   = 20
)

// RiskLevelFor classifies a governance score.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score >= LowRiskThreshold:
		return RiskLow
	case score >= MediumRiskThreshold:
		return RiskMedium
	case score >= HighRiskThreshold:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Lower returns the lowercase form used in generated sentences.
func (r RiskLevel) Lower() string { return strings.ToLower(string(r)) }

// MaturityLevel is the four-stage AI maturity ladder.
type MaturityLevel string

const (
	Experimenter MaturityLevel = "Experimenter"
	Builder      MaturityLevel = "Builder"
	Innovator    MaturityLevel = "Innovator"
	Achiever     MaturityLevel = "Achiever"
)

// MaturityLevels in ascending order.
var MaturityLevels = []MaturityLevel{Experimenter, Builder, Innovator, Achiever}

// Rank is the zero-based position on the ladder. Unknown levels rank as Experimenter.
func (m MaturityLevel) Rank() int {
	for i, l := range MaturityLevels {
		if l == m {
			return i
		}
	}
	return 0
}

// Normalize maps unknown or empty values to Experimenter.
func (m MaturityLevel) Normalize() MaturityLevel {
	return MaturityLevels[m.Rank()]
}

// UnmarshalJSON accepts the level in any case, so every surface agrees with
// ParseMaturity.
func (m *MaturityLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = ParseMaturity(s)
	return nil
}

// ParseMaturity accepts the display name in any case.
func ParseMaturity(s string) MaturityLevel {
	for _, l := range MaturityLevels {
		if strings.EqualFold(string(l), strings.TrimSpace(s)) {
			return l
		}
	}
	return Experimenter
}
