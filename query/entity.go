package query

import (
	"github.com/62Kinsley/DrugAge/synonym"
)

// Kind classifies an extracted entity
type Kind string

const (
	KindDrug              Kind = "drug"
	KindOrganism          Kind = "organism"
	KindNumericQualifier  Kind = "numeric_qualifier"
	KindTemporalQualifier Kind = "temporal_qualifier"
)

// Entity is a typed span extracted from a raw query. Entities are created
// fresh per analysis call and never persisted.
type Entity struct {
	Kind       Kind               `json:"kind"`
	RawText    string             `json:"raw_text"`
	Normalized string             `json:"normalized,omitempty"`
	Confidence synonym.Confidence `json:"confidence"`
	Score      float64            `json:"score,omitempty"`
}

// Resolved reports whether the entity mapped to a canonical identifier
func (e Entity) Resolved() bool {
	return e.Confidence == synonym.MatchExact || e.Confidence == synonym.MatchFuzzy
}

// NumericUnit classifies a numeric qualifier found in a query
type NumericUnit string

const (
	UnitPercent NumericUnit = "percent"
	UnitFold    NumericUnit = "fold"
	UnitYears   NumericUnit = "years"
	UnitMonths  NumericUnit = "months"
	UnitTopN    NumericUnit = "top_n"
	UnitFirstN  NumericUnit = "first_n"
	UnitDosage  NumericUnit = "dosage"
)

// NumericQualifier is a number with its detected unit, e.g. "20%" or "top 5"
type NumericQualifier struct {
	Value   float64     `json:"value"`
	Unit    NumericUnit `json:"unit"`
	RawText string      `json:"raw_text"`
}

// Temporal reports whether the qualifier expresses a time period
func (q NumericQualifier) Temporal() bool {
	return q.Unit == UnitYears || q.Unit == UnitMonths
}

// dedupeEntities collapses entities that normalized to the same canonical
// identifier within a kind, keeping the highest-confidence occurrence.
// "rapamycin" and "sirolimus" in one query yield a single drug entity.
func dedupeEntities(entities []Entity) []Entity {
	type key struct {
		kind Kind
		name string
	}
	seen := make(map[key]int, len(entities))
	out := make([]Entity, 0, len(entities))

	for _, e := range entities {
		name := e.Normalized
		if name == "" {
			name = e.RawText
		}
		k := key{kind: e.Kind, name: name}
		if idx, ok := seen[k]; ok {
			if rank(e.Confidence) > rank(out[idx].Confidence) {
				out[idx] = e
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, e)
	}
	return out
}

func rank(c synonym.Confidence) int {
	switch c {
	case synonym.MatchExact:
		return 2
	case synonym.MatchFuzzy:
		return 1
	default:
		return 0
	}
}
