package questionbank

import "github.com/baltaguilar-tech/ai-governance-tool/internal/domain"

// regionJurisdictions maps operating regions to jurisdiction codes. Europe
// covers both the EU and the UK.
var regionJurisdictions = map[domain.Region][]domain.Jurisdiction{
	domain.NorthAmerica: {domain.JurisdictionUS},
	domain.Europe:       {domain.JurisdictionEU, domain.JurisdictionUK},
	domain.AsiaPacific:  {domain.JurisdictionAP},
	domain.MiddleEast:   {domain.JurisdictionMEA},
	domain.LatinAmerica: {domain.JurisdictionLatAm},
}

// ActiveJurisdictions returns the codes in force for regions. "all" is always present.
func ActiveJurisdictions(regions []domain.Region) map[domain.Jurisdiction]bool {
	active := map[domain.Jurisdiction]bool{domain.JurisdictionAll: true}
	for _, r := range regions {
		for _, j := range regionJurisdictions[r] {
			active[j] = true
		}
	}
	return active
}

// PrimaryJurisdiction picks the jurisdiction used for report framing: the
// first mapped code of the first recognised region, or "all".
func PrimaryJurisdiction(regions []domain.Region) domain.Jurisdiction {
	for _, r := range regions {
		if codes := regionJurisdictions[r]; len(codes) > 0 {
			return codes[0]
		}
	}
	return domain.JurisdictionAll
}

// Select returns the questions of the maturity bank that apply in any of the
// given regions. Untagged questions always apply.
func (c *Catalog) Select(level domain.MaturityLevel, regions []domain.Region) []domain.Question {
	bank := c.Bank(level)
	active := ActiveJurisdictions(regions)

	out := make([]domain.Question, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		if applies(q, active) {
			out = append(out, q)
		}
	}
	return out
}

// Select runs Catalog.Select against the embedded banks.
func Select(level domain.MaturityLevel, regions []domain.Region) []domain.Question {
	return defaultCatalog.Select(level, regions)
}

func applies(q domain.Question, active map[domain.Jurisdiction]bool) bool {
	if len(q.Jurisdictions) == 0 {
		return true
	}
	for _, j := range q.Jurisdictions {
		if active[j] {
			return true
		}
	}
	return false
}
