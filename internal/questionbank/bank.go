// Package questionbank holds the per-maturity question banks and selects the
// questions that apply to an organization.
package questionbank

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

//go:embed banks/*.yaml
var bankFiles embed.FS

var bankFileNames = map[domain.MaturityLevel]string{
	domain.Experimenter: "experimenter.yaml",
	domain.Builder:      "builder.yaml",
	domain.Innovator:    "innovator.yaml",
	domain.Achiever:     "achiever.yaml",
}

// Bank is the question set for one maturity profile.
type Bank struct {
	Profile   domain.MaturityLevel `yaml:"profile"`
	Version   string               `yaml:"version"`
	Questions []domain.Question    `yaml:"questions"`
}

// Catalog maps each maturity level to its bank. It is immutable once built.
type Catalog struct {
	banks map[domain.MaturityLevel]Bank
	index map[string]domain.Question
}

var defaultCatalog = mustLoadDefault()

// Default returns the catalog built from the embedded banks.
func Default() *Catalog { return defaultCatalog }

func mustLoadDefault() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("questionbank: embedded banks: %v", err))
	}
	return c
}

// LoadEmbedded parses and validates the banks compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	banks := make([]Bank, 0, len(bankFileNames))
	for _, level := range domain.MaturityLevels {
		data, err := bankFiles.ReadFile(path.Join("banks", bankFileNames[level]))
		if err != nil {
			return nil, fmt.Errorf("reading %s bank: %w", level, err)
		}
		b, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s bank: %w", level, err)
		}
		if b.Profile != level {
			return nil, fmt.Errorf("%s bank declares profile %q", level, b.Profile)
		}
		banks = append(banks, b)
	}
	return NewCatalog(banks...)
}

// Parse decodes and validates a single YAML bank.
func Parse(data []byte) (Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bank{}, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	if err := b.validate(); err != nil {
		return Bank{}, err
	}
	return b, nil
}

// NewCatalog builds a catalog. Question ids must be unique across all banks.
func NewCatalog(banks ...Bank) (*Catalog, error) {
	c := &Catalog{
		banks: make(map[domain.MaturityLevel]Bank, len(banks)),
		index: make(map[string]domain.Question),
	}
	for _, b := range banks {
		if _, dup := c.banks[b.Profile]; dup {
			return nil, fmt.Errorf("duplicate bank for %s", b.Profile)
		}
		c.banks[b.Profile] = b
		for _, q := range b.Questions {
			if _, dup := c.index[q.ID]; dup {
				return nil, fmt.Errorf("question %q appears in more than one bank", q.ID)
			}
			c.index[q.ID] = q
		}
	}
	return c, nil
}

// Bank returns the bank for level, falling back to the Experimenter bank.
func (c *Catalog) Bank(level domain.MaturityLevel) Bank {
	if b, ok := c.banks[level]; ok {
		return b
	}
	return c.banks[domain.Experimenter]
}

// Question looks a question up by id across all banks.
func (c *Catalog) Question(id string) (domain.Question, bool) {
	q, ok := c.index[id]
	return q, ok
}

// Version is the content version of the bank used for level.
func (c *Catalog) Version(level domain.MaturityLevel) string {
	return c.Bank(level).Version
}

var knownJurisdictions = map[domain.Jurisdiction]bool{
	domain.JurisdictionAll:   true,
	domain.JurisdictionUS:    true,
	domain.JurisdictionEU:    true,
	domain.JurisdictionUK:    true,
	domain.JurisdictionAP:    true,
	domain.JurisdictionLatAm: true,
	domain.JurisdictionMEA:   true,
}

func (b Bank) validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("bank %q has no questions", b.Profile)
	}
	seen := make(map[string]bool, len(b.Questions))
	for i, q := range b.Questions {
		if q.ID == "" {
			return fmt.Errorf("question at index %d has empty id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if !q.Dimension.Valid() {
			return fmt.Errorf("question %q: unknown dimension %q", q.ID, q.Dimension)
		}
		if q.Text == "" {
			return fmt.Errorf("question %q: empty text", q.ID)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %q: needs at least two options", q.ID)
		}
		for j, o := range q.Options {
			if o.Value < 0 || o.Value > 100 {
				return fmt.Errorf("question %q: option %d value %d outside 0-100", q.ID, j, o.Value)
			}
			// worst (highest raw) first
			if j > 0 && o.Value > q.Options[j-1].Value {
				return fmt.Errorf("question %q: options not ordered worst to best", q.ID)
			}
		}
		for _, j := range q.Jurisdictions {
			if !knownJurisdictions[j] {
				return fmt.Errorf("question %q: unknown jurisdiction %q", q.ID, j)
			}
		}
	}
	return nil
}
