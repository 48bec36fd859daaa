package summary

import (
	"fmt"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

var industryPhrases = map[domain.Industry]string{
	domain.IndustryHealthcare:    "patient data and clinical decision support",
	domain.IndustryFinance:       "financial risk and regulatory obligations",
	domain.IndustryGovernment:    "public trust and accountability standards",
	domain.IndustryLegal:         "client confidentiality and professional liability",
	domain.IndustryEducation:     "student data protection and academic integrity",
	domain.IndustryTechnology:    "product reliability and data handling",
	domain.IndustryManufacturing: "operational continuity and supply chain integrity",
}

func industryPhrase(i domain.Industry) string {
	if p, ok := industryPhrases[i]; ok {
		return p
	}
	return "organizational data and operations"
}

var maturityFraming = map[domain.MaturityLevel]string{
	domain.Experimenter: "beginning to explore AI's potential",
	domain.Builder:      "actively building AI capabilities",
	domain.Innovator:    "scaling AI across the organization",
	domain.Achiever:     "operating AI as a core business driver",
}

func maturityContext(level domain.MaturityLevel, phrase string) string {
	switch level {
	case domain.Builder:
		return fmt.Sprintf("As an organization actively building AI capabilities, this is a critical foundation-setting moment: the governance choices made now will determine how safely and scalably AI can grow within your operations, particularly around %s.", phrase)
	case domain.Innovator:
		return fmt.Sprintf("As an organization scaling AI across the organization, governance must keep pace with growth, ensuring that controls around %s remain robust as adoption expands and use cases become more complex.", phrase)
	case domain.Achiever:
		return fmt.Sprintf("As an organization operating AI as a core business driver, protecting your competitive advantage requires that governance around %s remains rigorous and continuously improving.", phrase)
	default:
		return fmt.Sprintf("As an organization beginning to explore AI's potential, establishing clear governance from the outset is especially important: decisions made now about %s will shape your compliance posture for years to come.", phrase)
	}
}

var jurisdictionNotes = map[domain.Jurisdiction]string{
	domain.JurisdictionUS:    "Operating in the United States, where state-level AI regulations and CCPA data obligations are evolving rapidly, makes addressing these gaps a near-term compliance priority.",
	domain.JurisdictionEU:    "Operating in the European Union, where the EU AI Act enters enforcement in August 2026 and GDPR obligations continue to apply, makes strengthening these areas a near-term compliance priority.",
	domain.JurisdictionUK:    "Operating in the United Kingdom, where the UK AI Safety Institute continues to develop guidance and UK GDPR obligations remain in force, makes addressing these areas a near-term compliance priority.",
	domain.JurisdictionAP:    "Operating in the Asia-Pacific region, where Singapore's Model AI Governance Framework sets a regional benchmark and data localisation requirements vary by jurisdiction, makes addressing these gaps a near-term compliance priority.",
	domain.JurisdictionLatAm: "Operating in Latin America, where Brazil's LGPD establishes data protection obligations and emerging regional AI frameworks are taking shape, makes addressing these gaps a near-term compliance priority.",
	domain.JurisdictionMEA:   "Operating in the Middle East and Africa, where the UAE AI Strategy and South Africa's POPIA represent increasing regulatory expectations, makes addressing these gaps a near-term compliance priority.",
	domain.JurisdictionAll:   "Given the rapidly evolving global AI regulatory landscape, with new obligations taking effect across multiple jurisdictions, addressing these gaps represents an important near-term priority.",
}

func jurisdictionNote(j domain.Jurisdiction) string {
	if n, ok := jurisdictionNotes[j]; ok {
		return n
	}
	return jurisdictionNotes[domain.JurisdictionAll]
}

func riskDescription(level domain.RiskLevel) string {
	switch level {
	case domain.RiskLow:
		return "a strong governance foundation with limited gaps across the dimensions assessed."
	case domain.RiskMedium:
		return "meaningful progress in some areas alongside gaps that warrant structured attention."
	case domain.RiskHigh:
		return "material governance gaps across the dimensions assessed."
	case domain.RiskCritical:
		return "significant governance gaps across the dimensions assessed."
	default:
		return "governance gaps across the dimensions assessed."
	}
}

var firstAction = map[domain.DimensionKey]string{
	domain.ShadowAI:           "The most pressing action is to establish a formal AI tool registry and usage policy: a structured record of what AI tools are in use, by whom, and for what purpose.",
	domain.VendorRisk:         "The most pressing action is to conduct a structured vendor AI risk review, assessing the AI practices, data handling, and contractual obligations of your key technology providers.",
	domain.DataGovernance:     "The most pressing action is to map AI data flows and classify data sensitivity, understanding what data your AI systems touch and where governance controls need to be applied.",
	domain.SecurityCompliance: "The most pressing action is to perform an AI security posture review, assessing how AI systems are protected, monitored, and governed within your existing security framework.",
	domain.AISpecificRisks:    "The most pressing action is to assess model risk and hallucination controls, evaluating how your organization identifies, monitors, and responds to AI outputs that may be inaccurate or harmful.",
	domain.ROITracking:        "The most pressing action is to implement an AI value measurement framework, establishing how your organization tracks the financial, operational, and strategic returns from AI investment.",
}

func urgencyOpener(level domain.RiskLevel) string {
	switch level {
	case domain.RiskLow:
		return "Your organization has built a strong governance foundation, and this is an opportunity to lead by deepening controls in targeted areas to stay ahead of regulatory and operational expectations."
	case domain.RiskMedium:
		return "Your organization has made meaningful progress, but there are gaps to address before they become liabilities. A focused effort in the highest-risk dimensions will significantly improve your overall posture."
	case domain.RiskHigh:
		return "The material gaps identified in this assessment require structured attention. A prioritized remediation effort focused on the highest-risk dimensions will reduce exposure and build organizational confidence in AI use."
	case domain.RiskCritical:
		return "The significant exposure identified in this assessment requires immediate action. A clear, prioritized response plan focused on the highest-risk dimensions is essential to reducing compliance and operational risk."
	default:
		return "Addressing the gaps identified in this assessment will meaningfully improve your organization's AI governance posture."
	}
}
