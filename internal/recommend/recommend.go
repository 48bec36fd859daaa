// Package recommend turns scored dimensions and the organization profile into
// an ordered list of recommended actions.
package recommend

import (
	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

// Input is everything a rule may look at.
type Input struct {
	Scores  map[domain.DimensionKey]int
	Risk    domain.RiskScore
	Profile domain.OrganizationProfile
}

// below reports whether key was scored and sits under limit. A dimension that
// was never scored does not count as low.
func (in Input) below(key domain.DimensionKey, limit int) bool {
	s, ok := in.Scores[key]
	return ok && s < limit
}

type rule struct {
	name  string
	when  func(Input) bool
	build func(Input) domain.Recommendation
}

func always(Input) bool { return true }

func below(key domain.DimensionKey, limit int) func(Input) bool {
	return func(in Input) bool { return in.below(key, limit) }
}

func operatesIn(r domain.Region) func(Input) bool {
	return func(in Input) bool { return in.Profile.OperatesIn(r) }
}

func fixed(rec domain.Recommendation) func(Input) domain.Recommendation {
	return func(Input) domain.Recommendation { return rec }
}

// rules are evaluated in order. They are independent, so several may fire
// for the same dimension.
var rules = []rule{
	{
		name: "shadow-ai-detection",
		when: below(domain.ShadowAI, 40),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryAudit,
			Title:       "Deploy Shadow AI Detection Immediately",
			Description: "Your organization has critical blind spots in AI visibility. Deploy automated shadow AI detection tools to identify unauthorized AI applications. Research shows employees average 3-5 AI tools each, and the majority are adopted without IT approval.",
			Priority:    domain.PriorityCritical,
			Timeline:    domain.ThisWeek,
		}),
	},
	{
		name: "ai-inventory",
		when: below(domain.ShadowAI, 60),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryAudit,
			Title:       "Conduct Comprehensive AI Inventory",
			Description: "Create a centralized registry of all AI tools, platforms, and integrations. Survey all departments and scan networks. You cannot govern what you cannot see.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
		}),
	},
	{
		name: "critical-vendors",
		when: below(domain.VendorRisk, 40),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryVendor,
			Title:       "Urgent: Assess Top 10 Critical AI Vendors",
			Description: "Conduct AI risk assessments for your most critical vendors. Start with the question: \"How do you define what's yours versus mine?\" 92% of organizations trust vendors but cannot verify their data practices.",
			Priority:    domain.PriorityCritical,
			Timeline:    domain.ThisWeek,
		}),
	},
	{
		name: "quarterly-vendor-review",
		when: below(domain.VendorRisk, 60),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryVendor,
			Title:       "Establish Quarterly Vendor Review Process",
			Description: "Implement quarterly reviews for all AI vendors to detect scope creep, new AI features, and changes in data practices. The \"routine renewal trap\" silently expands your risk profile.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
		}),
	},
	{
		name: "governance-committee",
		when: below(domain.SecurityCompliance, 50),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryRoadmap,
			Title:       "Form AI Governance Committee",
			Description: "Establish a cross-functional AI Governance Committee with CEO sponsorship. Include IT Security, Legal, Compliance, Data Governance, and Business Unit leaders. This is the foundation of effective governance.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
		}),
	},
	{
		name: "acceptable-use-policy",
		when: below(domain.ShadowAI, 70),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryCompliance,
			Title:       "Develop AI Acceptable Use Policy",
			Description: "Create and distribute an AI Acceptable Use Policy. Only 18.5% of employees are aware of any company AI policy. Require employee acknowledgment.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
		}),
	},
	{
		name: "incident-response",
		when: below(domain.SecurityCompliance, 50),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryMonitoring,
			Title:       "Create AI Incident Response Plan",
			Description: "Develop an AI-specific incident response plan covering hallucinations, data breaches, model failures, and autonomous agent malfunctions. Standard IR plans miss these scenarios.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
		}),
	},

	// professional tier

	{
		name: "vendor-questionnaire",
		when: always,
		build: func(in Input) domain.Recommendation {
			return domain.Recommendation{
				Category:    domain.CategoryVendor,
				Title:       "Customized Vendor Assessment Questionnaire",
				Description: VendorQuestionnaire(in.Profile.Industry),
				Priority:    domain.PriorityHigh,
				Timeline:    domain.ThisMonth,
				IsPaid:      true,
			}
		},
	},
	{
		name: "eu-ai-act",
		when: operatesIn(domain.Europe),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryCompliance,
			Title:       "EU AI Act Compliance Roadmap",
			Description: "August 2, 2026 enforcement deadline. Penalties up to €35M or 7% worldwide turnover. Get a risk classification of your AI systems and compliance timeline.",
			Priority:    domain.PriorityCritical,
			Timeline:    domain.ThisMonth,
			IsPaid:      true,
		}),
	},
	{
		name: "us-regulatory",
		when: operatesIn(domain.NorthAmerica),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryCompliance,
			Title:       "US AI Regulatory Compliance Review",
			Description: "Review compliance with NIST AI RMF, state-level AI regulations (Colorado, Illinois), and sector-specific requirements (HIPAA, FFIEC, FTC guidance).",
			Priority:    domain.PriorityMedium,
			Timeline:    domain.ThisQuarter,
			IsPaid:      true,
		}),
	},
	{
		name: "apac-regulatory",
		when: operatesIn(domain.AsiaPacific),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryCompliance,
			Title:       "Asia-Pacific AI Regulation Review",
			Description: "Review compliance with Singapore AI Governance Framework, China CSL requirements, Australia Privacy Act updates, and Japan AI guidelines.",
			Priority:    domain.PriorityMedium,
			Timeline:    domain.ThisQuarter,
			IsPaid:      true,
		}),
	},
	{
		name: "roi-framework",
		when: below(domain.ROITracking, 70),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryROI,
			Title:       "Multi-Dimensional ROI Framework",
			Description: "Implement a comprehensive ROI tracking framework measuring Financial, Operational, Innovation, Customer, and Strategic value, including hidden costs (data prep, maintenance, talent premium).",
			Priority:    domain.PriorityMedium,
			Timeline:    domain.ThisQuarter,
			IsPaid:      true,
		}),
	},
	{
		name: "implementation-roadmap",
		when: always,
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryRoadmap,
			Title:       "Detailed Implementation Roadmap",
			Description: "A week-by-week action plan prioritized by your specific risk profile, including task owners, milestones, and success criteria.",
			Priority:    domain.PriorityMedium,
			Timeline:    domain.ThisQuarter,
			IsPaid:      true,
		}),
	},
	{
		name: "iso-42001",
		when: below(domain.SecurityCompliance, 70),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryCompliance,
			Title:       "ISO 42001 Gap Assessment & Certification Roadmap",
			Description: "ISO 42001 is becoming enterprise-expected in 2026. Get a gap assessment showing what you need to achieve certification and a phased implementation plan.",
			Priority:    domain.PriorityMedium,
			Timeline:    domain.ThisQuarter,
			IsPaid:      true,
		}),
	},
	{
		name: "continuous-monitoring",
		when: always,
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryMonitoring,
			Title:       "Continuous AI Monitoring Strategy",
			Description: "Comprehensive monitoring strategy including quarterly vendor reviews, monthly AI sprawl scans, real-time performance dashboards, and annual AI-specific penetration testing.",
			Priority:    domain.PriorityMedium,
			Timeline:    domain.ThisQuarter,
			IsPaid:      true,
		}),
	},
	{
		name: "data-governance-framework",
		when: below(domain.DataGovernance, 50),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryAudit,
			Title:       "AI Data Governance Framework",
			Description: "Comprehensive data governance framework for AI including classification, lineage, DLP, consent management, and retention policies.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
			IsPaid:      true,
		}),
	},
	{
		name: "risk-mitigation-playbook",
		when: below(domain.AISpecificRisks, 50),
		build: fixed(domain.Recommendation{
			Category:    domain.CategoryMonitoring,
			Title:       "AI Risk Mitigation Playbook",
			Description: "Detailed playbook for mitigating AI-specific risks: hallucination validation, model drift detection, prompt injection defense, agentic AI governance, and bias testing.",
			Priority:    domain.PriorityHigh,
			Timeline:    domain.ThisMonth,
			IsPaid:      true,
		}),
	},
}

// Generate evaluates every rule in order and returns the recommendations that
// fire. The tier is accepted for callers that thread it through but never
// filters the result; use Visible for that.
func Generate(dimensionScores []domain.DimensionScore, risk domain.RiskScore, profile domain.OrganizationProfile, _ domain.LicenseTier) []domain.Recommendation {
	in := Input{
		Scores:  make(map[domain.DimensionKey]int, len(dimensionScores)),
		Risk:    risk,
		Profile: profile,
	}
	for _, ds := range dimensionScores {
		in.Scores[ds.Key] = ds.Score
	}

	recs := make([]domain.Recommendation, 0, len(rules))
	for _, r := range rules {
		if r.when(in) {
			recs = append(recs, r.build(in))
		}
	}
	return recs
}

// Visible returns what a consumer on tier may show. Free tier sees only the
// unpaid items; hidden reports how many were withheld.
func Visible(recs []domain.Recommendation, tier domain.LicenseTier) (visible []domain.Recommendation, hidden int) {
	if tier == domain.TierProfessional {
		return recs, 0
	}
	visible = make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.IsPaid {
			hidden++
			continue
		}
		visible = append(visible, r)
	}
	return visible, hidden
}
