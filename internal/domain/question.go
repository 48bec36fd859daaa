package domain

// Jurisdiction tags a question with the regulatory region it applies to.
type Jurisdiction string

const (
	JurisdictionAll   Jurisdiction = "all"
	JurisdictionUS    Jurisdiction = "us"
	JurisdictionEU    Jurisdiction = "eu"
	JurisdictionUK    Jurisdiction = "uk"
	JurisdictionAP    Jurisdiction = "ap"
	JurisdictionLatAm Jurisdiction = "latam"
	JurisdictionMEA   Jurisdiction = "mea"
)

// Option is a selectable answer. Value is a raw risk value: 0 is the best
// governance answer, 100 the worst.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Question is static bank content. Options are ordered worst to best.
// An empty Jurisdictions list means the question applies everywhere.
type Question struct {
	ID            string         `json:"id" yaml:"id"`
	Dimension     DimensionKey   `json:"dimension" yaml:"dimension"`
	Text          string         `json:"text" yaml:"text"`
	HelpText      string         `json:"helpText" yaml:"help"`
	Options       []Option       `json:"options" yaml:"options"`
	Jurisdictions []Jurisdiction `json:"jurisdictions,omitempty" yaml:"jurisdictions"`
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value int) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// BestValue is the lowest raw value offered by the question.
func (q Question) BestValue() int {
	if len(q.Options) == 0 {
		return 0
	}
	best := q.Options[0].Value
	for _, o := range q.Options[1:] {
		if o.Value < best {
			best = o.Value
		}
	}
	return best
}

// Response records the raw value selected for a question.
type Response struct {
	QuestionID string `json:"questionId" validate:"required"`
	Value      int    `json:"value" validate:"gte=0,lte=100"`
}
