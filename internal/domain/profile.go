package domain

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

type Industry string

const (
	IndustryHealthcare    Industry = "Healthcare"
	IndustryFinance       Industry = "Financial Services"
	IndustryRetail        Industry = "Retail & E-Commerce"
	IndustryManufacturing Industry = "Manufacturing"
	IndustryTechnology    Industry = "Technology"
	IndustryGovernment    Industry = "Government"
	IndustryEducation     Industry = "Education"
	IndustryLegal         Industry = "Legal Services"
	IndustryEnergy        Industry = "Energy & Utilities"
	IndustryTelecom       Industry = "Telecommunications"
	IndustryMedia         Industry = "Media & Entertainment"
	IndustryRealEstate    Industry = "Real Estate"
	IndustryNonprofit     Industry = "Nonprofit"
	IndustryOther         Industry = "Other"
)

type CompanySize string

const (
	SizeSmall      CompanySize = "Small (1-249)"
	SizeMedium     CompanySize = "Medium (250-999)"
	SizeLarge      CompanySize = "Large (1,000-4,999)"
	SizeEnterprise CompanySize = "Enterprise (5,000+)"
)

type Region string

const (
	NorthAmerica Region = "North America"
	Europe       Region = "Europe"
	AsiaPacific  Region = "Asia-Pacific"
	MiddleEast   Region = "Middle East & Africa"
	LatinAmerica Region = "Latin America"
)

type AIUseCase string

const (
	UseCaseGenerativeAI        AIUseCase = "Generative AI (ChatGPT, Copilot, etc.)"
	UseCasePredictiveAnalytics AIUseCase = "Predictive Analytics"
	UseCaseComputerVision      AIUseCase = "Computer Vision"
	UseCaseNLP                 AIUseCase = "Natural Language Processing"
	UseCaseProcessAutomation   AIUseCase = "Process Automation / RPA"
	UseCaseCustomerService     AIUseCase = "AI Customer Service / Chatbots"
	UseCaseHRRecruitment       AIUseCase = "HR & Recruitment AI"
	UseCaseCybersecurity       AIUseCase = "Cybersecurity AI"
	UseCaseAgentic             AIUseCase = "Agentic AI / Autonomous Agents"
	UseCaseOther               AIUseCase = "Other"
)

type DeploymentTimeline string

const (
	AlreadyDeployed DeploymentTimeline = "Already Deployed"
	ZeroToSix       DeploymentTimeline = "0-6 months"
	SixToTwelve     DeploymentTimeline = "6-12 months"
	TwelvePlus      DeploymentTimeline = "12+ months"
)

// LicenseTier controls which recommendations a consumer shows.
type LicenseTier string

const (
	TierFree         LicenseTier = "free"
	TierProfessional LicenseTier = "professional"
)

// TierFromLicense maps a license validation outcome to a tier.
func TierFromLicense(valid bool) LicenseTier {
	if valid {
		return TierProfessional
	}
	return TierFree
}

// OrganizationProfile is the self-declared context of the assessed organization.
// It is read-only for the duration of a scoring pass.
type OrganizationProfile struct {
	OrganizationName   string             `json:"organizationName"`
	Website            string             `json:"website,omitempty"`
	Industry           Industry           `json:"industry"`
	Size               CompanySize        `json:"size"`
	AnnualRevenue      string             `json:"annualRevenue,omitempty"`
	PrimaryLocation    string             `json:"primaryLocation,omitempty"`
	OperatingRegions   []Region           `json:"operatingRegions"`
	AIMaturityLevel    MaturityLevel      `json:"aiMaturityLevel"`
	AIUseCases         []AIUseCase        `json:"aiUseCases,omitempty"`
	DeploymentTimeline DeploymentTimeline `json:"deploymentTimeline,omitempty"`
	ExpectedAISpend    string             `json:"expectedAISpend,omitempty"`
}

// OperatesIn reports whether r is one of the profile's operating regions.
func (p OrganizationProfile) OperatesIn(r Region) bool {
	for _, x := range p.OperatingRegions {
		if x == r {
			return true
		}
	}
	return false
}

// OrganizationKey identifies an organization across assessments. The website's
// registrable domain (eTLD+1) is preferred; the lowercased name is the fallback.
func (p OrganizationProfile) OrganizationKey() string {
	if host := websiteHost(p.Website); host != "" {
		registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
		if err != nil {
			registrable = host
		}
		return strings.ToLower(registrable)
	}
	return strings.ToLower(strings.TrimSpace(p.OrganizationName))
}

func websiteHost(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
