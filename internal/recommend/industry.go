package recommend

import "github.com/baltaguilar-tech/ai-governance-tool/internal/domain"

const questionnaireBase = "Full 30-question vendor assessment questionnaire customized to your industry"

var industryQuestionnaire = map[domain.Industry]string{
	domain.IndustryHealthcare: "Includes HIPAA compliance questions, PHI handling, clinical decision support validation, and FDA requirements.",
	domain.IndustryFinance:    "Includes SOC 2 Type II requirements, PCI DSS, FFIEC guidance, algorithmic trading controls, and credit scoring fairness.",
	domain.IndustryGovernment: "Includes FedRAMP requirements, NIST AI RMF alignment, Executive Order compliance, and public sector-specific data handling.",
	domain.IndustryEducation:  "Includes FERPA compliance, student data protection, age-appropriate AI use, and algorithmic fairness in educational outcomes.",
	domain.IndustryLegal:      "Includes attorney-client privilege protection, hallucination risk for legal citations, court filing accuracy, and confidentiality controls.",
}

const genericQuestionnaire = "Covers data ownership, model training, security certifications, incident response, and AI-specific contract clauses."

// VendorQuestionnaire describes the vendor questionnaire tailored to industry.
func VendorQuestionnaire(industry domain.Industry) string {
	detail, ok := industryQuestionnaire[industry]
	if !ok {
		detail = genericQuestionnaire
	}
	return questionnaireBase + ". " + detail
}
