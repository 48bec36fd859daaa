package scoring

import (
	"fmt"
	"sort"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

const (
	// MaxBlindSpots caps how many ranked questions are considered.
	MaxBlindSpots = 10
	// BlindSpotCutoff is the highest severity score still reported.
	BlindSpotCutoff = 40
)

type rankedQuestion struct {
	question domain.Question
	score    int
}

// ExtractBlindSpots ranks answered questions worst first and reports those
// among the first MaxBlindSpots that score at or below BlindSpotCutoff.
func ExtractBlindSpots(responses []domain.Response, questions []domain.Question) []domain.BlindSpot {
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	// iterate in first-answered order with last-answer values
	answers := lastAnswers(responses)
	seen := make(map[string]bool, len(responses))
	ranked := make([]rankedQuestion, 0, len(responses))
	for _, r := range responses {
		if seen[r.QuestionID] {
			continue
		}
		seen[r.QuestionID] = true
		q, ok := byID[r.QuestionID]
		if !ok {
			continue
		}
		ranked = append(ranked, rankedQuestion{question: q, score: 100 - answers[r.QuestionID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score < ranked[j].score })

	if len(ranked) > MaxBlindSpots {
		ranked = ranked[:MaxBlindSpots]
	}
	spots := make([]domain.BlindSpot, 0, len(ranked))
	for _, rq := range ranked {
		if rq.score > BlindSpotCutoff {
			continue
		}
		spots = append(spots, domain.BlindSpot{
			QuestionID:      rq.question.ID,
			Title:           rq.question.Text,
			Dimension:       rq.question.Dimension,
			Severity:        domain.RiskLevelFor(float64(rq.score)),
			Score:           rq.score,
			Description:     rq.question.HelpText,
			ImmediateAction: ImmediateAction(rq.question.Dimension, rq.score),
		})
	}
	return spots
}

var immediateActions = map[domain.DimensionKey]string{
	domain.ShadowAI: "Conduct an AI inventory audit: survey department heads and cross-reference SSO logs, expense reports, and browser extensions. " +
		"Build a centralized AI registry (tool name, owner, data accessed, risk tier, approval status). " +
		"Draft an AI Acceptable Use Policy covering approved tools, prohibited uses (no customer PII in public AI), and a formal request process. Require employee acknowledgment within 30 days. " +
		"WHY: Over 50% of workers use GenAI without IT approval, so the majority of your AI risk is invisible until you actively look. " +
		"RISK AVOIDED: Closes the visibility gap that enables undetected data leakage, compliance violations, and the \"we didn't know\" defense in a breach investigation.",
	domain.VendorRisk: "Conduct AI risk assessments for your top 10 critical vendors. Key questions: Do you train models on our data? Who owns outputs? What is your breach notification timeline? " +
		"Update contracts with AI-specific clauses: data ownership, model training opt-out, audit rights, and exit/portability provisions. " +
		"WHY: Most vendor contracts predate the AI era and contain no AI-specific protections; your data may be used for model training by default. " +
		"RISK AVOIDED: Prevents data from being permanently incorporated into vendor AI models, establishes liability clarity, and creates audit evidence for regulatory compliance.",
	domain.DataGovernance: "Update your data classification policy to explicitly address AI data handling: which data categories can enter which AI systems, and under what conditions. " +
		"Deploy data loss prevention (DLP) controls to block sensitive data (PII, financial, legal) from being pasted into public AI services. " +
		"WHY: 77% of employees paste company data into GenAI tools, most without understanding the data exposure implications. " +
		"RISK AVOIDED: Prevents customer and employee PII from flowing to AI services outside your contractual control. Reduces GDPR, CCPA, and HIPAA exposure from unauthorized AI data processing.",
	domain.SecurityCompliance: "Create an AI-specific incident response plan covering three scenarios: (1) data leakage via AI tool, (2) harmful AI output reaching a customer, (3) AI vendor security incident. " +
		"Assign clear ownership for each scenario and test the plan quarterly. Implement access controls and audit logging for all AI system interactions. " +
		"WHY: Standard incident response plans don't address AI-specific failure modes. Hallucinations, model poisoning, and AI supply chain attacks require different containment steps. " +
		"RISK AVOIDED: Reduces mean time to contain an AI-related incident. Provides documented evidence of security controls under regulatory scrutiny.",
	domain.AISpecificRisks: "Implement human review checkpoints for high-stakes AI outputs (customer-facing content, financial decisions, medical or legal guidance). " +
		"Establish a bias testing process: define fairness metrics for each AI use case and test quarterly. Deploy prompt injection defenses and output filtering for externally-facing AI systems. " +
		"WHY: AI systems fail in non-obvious ways. Bias, hallucination, and adversarial manipulation are invisible without active monitoring. " +
		"RISK AVOIDED: Prevents AI-caused harm from reaching customers. Reduces liability exposure from discriminatory AI outputs. Protects brand reputation from high-profile AI failures.",
	domain.ROITracking: "Establish baseline measurements for your top 3 AI use cases: time saved per user per week, error rate reduction, and cost per active user (license cost divided by monthly active users). " +
		"Create a monthly reporting template to communicate AI ROI to leadership, even if data is incomplete at first. Starting measurement is the critical step. " +
		"WHY: Without baseline metrics, you cannot demonstrate AI value to leadership or justify continued investment. You also cannot identify underperforming tools worth cutting. " +
		"RISK AVOIDED: Prevents AI budget waste on tools with low adoption. Builds the evidence base needed to defend or expand AI investment when leadership questions spending.",
}

// ImmediateAction returns remediation guidance for a gap in dimension.
func ImmediateAction(dimension domain.DimensionKey, score int) string {
	if text, ok := immediateActions[dimension]; ok {
		return text
	}
	return fmt.Sprintf("Address this %s-risk area within 30 days. Develop a remediation plan with clear ownership and timeline.",
		domain.RiskLevelFor(float64(score)).Lower())
}
