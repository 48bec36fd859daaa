package domain

// DimensionKey identifies one of the six governance dimensions.
type DimensionKey string

const (
	ShadowAI           DimensionKey = "shadowAI"
	VendorRisk         DimensionKey = "vendorRisk"
	DataGovernance     DimensionKey = "dataGovernance"
	SecurityCompliance DimensionKey = "securityCompliance"
	AISpecificRisks    DimensionKey = "aiSpecificRisks"
	ROITracking        DimensionKey = "roiTracking"
)

// Dimension is the static configuration for a scored dimension.
type Dimension struct {
	Key         DimensionKey
	Label       string
	ShortLabel  string
	Weight      float64
	Description string
}

// Dimensions lists every dimension in scoring order. Weights sum to 1.0.
var Dimensions = []Dimension{
	{
		Key:         ShadowAI,
		Label:       "AI Visibility & Sprawl Control",
		ShortLabel:  "Shadow AI",
		Weight:      0.25,
		Description: "Measures your ability to detect, inventory, and control AI tools across the organization. Shadow AI is the #1 governance failure: you cannot govern what you cannot see.",
	},
	{
		Key:         VendorRisk,
		Label:       "Vendor AI Risk Management",
		ShortLabel:  "Vendor Risk",
		Weight:      0.25,
		Description: "Evaluates how well you assess and monitor third-party AI vendors. 92% of organizations trust AI vendors but cannot verify how vendors use their data.",
	},
	{
		Key:         DataGovernance,
		Label:       "Data Governance & Privacy",
		ShortLabel:  "Data Gov.",
		Weight:      0.20,
		Description: "Assesses data classification, lineage, training data governance, and privacy controls for AI systems.",
	},
	{
		Key:         SecurityCompliance,
		Label:       "Security & Compliance",
		ShortLabel:  "Security",
		Weight:      0.15,
		Description: "Reviews certifications, encryption standards, incident response, and regulatory compliance posture.",
	},
	{
		Key:         AISpecificRisks,
		Label:       "AI-Specific Risks",
		ShortLabel:  "AI Risks",
		Weight:      0.10,
		Description: "Evaluates controls for hallucinations, model drift, adversarial attacks, and agentic AI governance.",
	},
	{
		Key:         ROITracking,
		Label:       "ROI & Performance Tracking",
		ShortLabel:  "ROI",
		Weight:      0.05,
		Description: "Measures ability to track multi-dimensional ROI beyond cost reduction, including innovation, customer, and strategic value.",
	},
}

var dimensionIndex = func() map[DimensionKey]Dimension {
	m := make(map[DimensionKey]Dimension, len(Dimensions))
	for _, d := range Dimensions {
		m[d.Key] = d
	}
	return m
}()

// LookupDimension returns the configuration for key.
func LookupDimension(key DimensionKey) (Dimension, bool) {
	d, ok := dimensionIndex[key]
	return d, ok
}

// Valid reports whether k is one of the six known dimensions.
func (k DimensionKey) Valid() bool {
	_, ok := dimensionIndex[k]
	return ok
}

// Label returns the display label, or the raw key when unknown.
func (k DimensionKey) Label() string {
	if d, ok := dimensionIndex[k]; ok {
		return d.Label
	}
	return string(k)
}

// Weight returns the dimension weight, zero for unknown keys.
func (k DimensionKey) Weight() float64 {
	return dimensionIndex[k].Weight
}
