package domain

// QuestionScore is the raw value recorded for one answered question.
type QuestionScore struct {
	QuestionID string `json:"questionId"`
	Score      int    `json:"score"`
}

// DimensionScore is the 0-100 governance score of one dimension.
type DimensionScore struct {
	Key            DimensionKey    `json:"key"`
	Score          int             `json:"score"`
	RiskLevel      RiskLevel       `json:"riskLevel"`
	QuestionScores []QuestionScore `json:"questionScores"`
}

// RiskScore is the weighted composite across all dimensions.
type RiskScore struct {
	Dimensions      map[DimensionKey]int `json:"dimensions"`
	OverallRisk     int                  `json:"overallRisk"`
	RiskLevel       RiskLevel            `json:"riskLevel"`
	AchieverScore   int                  `json:"achieverScore"`
	CurrentMaturity MaturityLevel        `json:"currentMaturity"`
	TargetMaturity  MaturityLevel        `json:"targetMaturity"`
	MaturityGaps    []string             `json:"maturityGap"`
}

// BlindSpot is a single answered question that signals a severe gap.
type BlindSpot struct {
	QuestionID      string       `json:"questionId"`
	Title           string       `json:"title"`
	Dimension       DimensionKey `json:"dimension"`
	Severity        RiskLevel    `json:"severity"`
	Score           int          `json:"score"`
	Description     string       `json:"description"`
	ImmediateAction string       `json:"immediateAction"`
}

type RecommendationCategory string

const (
	CategoryVendor     RecommendationCategory = "vendor"
	CategoryAudit      RecommendationCategory = "audit"
	CategoryMonitoring RecommendationCategory = "monitoring"
	CategoryROI        RecommendationCategory = "roi"
	CategoryRoadmap    RecommendationCategory = "roadmap"
	CategoryCompliance RecommendationCategory = "compliance"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

type Timeline string

const (
	ThisWeek    Timeline = "this-week"
	ThisMonth   Timeline = "this-month"
	ThisQuarter Timeline = "this-quarter"
	ThisYear    Timeline = "this-year"
)

// Recommendation is one prioritized action. IsPaid marks professional-tier content.
type Recommendation struct {
	Category    RecommendationCategory `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    Priority               `json:"priority"`
	Timeline    Timeline               `json:"timeline"`
	IsPaid      bool                   `json:"isPaid"`
}
