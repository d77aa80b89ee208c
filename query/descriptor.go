package query

// Type is the closed set of query intents the analyzer can emit.
// Classification always produces exactly one of these.
type Type string

const (
	// TypeDrugSearch looks up a single compound's records
	TypeDrugSearch Type = "drug_search"
	// TypeComparison compares two or more compounds
	TypeComparison Type = "comparison"
	// TypeRanking ranks compounds by effect (top-N)
	TypeRanking Type = "ranking"
	// TypeOrganismSpecific filters records to one model organism
	TypeOrganismSpecific Type = "organism_specific"
	// TypeEffectAnalysis analyzes lifespan-effect magnitudes
	TypeEffectAnalysis Type = "effect_analysis"
	// TypeMechanism asks how or why a compound works
	TypeMechanism Type = "mechanism"
	// TypeSynonymUnresolved means entities were found but none resolved
	// to a canonical identifier
	TypeSynonymUnresolved Type = "synonym_unresolved"
	// TypeGeneral is the mandatory fallback; it always matches
	TypeGeneral Type = "general"
)

// Parameter names used in Descriptor.Parameters
const (
	ParamLimit             = "limit"
	ParamSortOrder         = "sort_order"
	ParamMinEffect         = "min_effect"
	ParamTimePeriod        = "time_period"
	ParamDosage            = "dosage"
	ParamComparisonType    = "comparison_type"
	ParamIncludeStatistics = "include_statistics"
	ParamExactMatch        = "exact_match"
	ParamIncludeSimilar    = "include_similar"
	ParamDrugs             = "drugs"
	ParamOrganismFilter    = "organism_filter"
)

// Sort order values for ParamSortOrder
const (
	SortDescending = "descending"
	SortAscending  = "ascending"
)

// Comparison styles for ParamComparisonType
const (
	ComparisonComprehensive = "comprehensive"
	ComparisonSummary       = "summary"
)

// Parameters maps parameter names to extracted or defaulted values
type Parameters map[string]any

// TimePeriod is the value shape of ParamTimePeriod
type TimePeriod struct {
	Value float64     `json:"value"`
	Unit  NumericUnit `json:"unit"`
}

// Descriptor is the structured output of query analysis, consumed by the
// downstream execution and response-generation layers. It is always
// usable: ambiguity shows up in Confidence and entity statuses, never as
// an error.
type Descriptor struct {
	Query      string     `json:"query"`
	Type       Type       `json:"query_type"`
	Entities   []Entity   `json:"entities"`
	Parameters Parameters `json:"parameters"`
	Confidence float64    `json:"confidence"`
	Intent     string     `json:"intent"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// requiredParameters gives the parameter set each query type must carry.
// The analyzer fills these with documented defaults when the query does
// not state them, so a descriptor fresh from Analyze is always complete.
var requiredParameters = map[Type][]string{
	TypeDrugSearch:       {ParamDrugs},
	TypeComparison:       {ParamDrugs, ParamComparisonType},
	TypeRanking:          {ParamLimit, ParamSortOrder},
	TypeOrganismSpecific: {ParamOrganismFilter},
	TypeEffectAnalysis:   {ParamSortOrder},
	TypeMechanism:        {ParamDrugs},
}

// Complete reports whether every required parameter for the descriptor's
// type is present
func (d *Descriptor) Complete() bool {
	for _, name := range requiredParameters[d.Type] {
		if _, ok := d.Parameters[name]; !ok {
			return false
		}
	}
	return true
}

// EntitiesOfKind returns the descriptor's entities of one kind
func (d *Descriptor) EntitiesOfKind(kind Kind) []Entity {
	var out []Entity
	for _, e := range d.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// intents gives the one-line English gloss reported for each query type
var intents = map[Type]string{
	TypeDrugSearch:        "find detailed information about a specific compound",
	TypeComparison:        "compare multiple compounds or interventions",
	TypeRanking:           "rank compounds by lifespan effect",
	TypeOrganismSpecific:  "find compounds tested in a specific model organism",
	TypeEffectAnalysis:    "analyze lifespan-extension effects",
	TypeMechanism:         "understand how a compound works",
	TypeSynonymUnresolved: "clarify unrecognized compound or organism names",
	TypeGeneral:           "general longevity-research information",
}

// IntentFor returns the English intent gloss for a query type
func IntentFor(t Type) string {
	if intent, ok := intents[t]; ok {
		return intent
	}
	return intents[TypeGeneral]
}
