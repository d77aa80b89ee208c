package query

// analysis is the normalized view classification rules see: resolved
// entity counts, unresolved leftovers, qualifiers, keywords
type analysis struct {
	ResolvedDrugs      []Entity
	ResolvedOrganisms  []Entity
	UnresolvedEntities []Entity
	Qualifiers         []NumericQualifier
	Keywords           keywordHits
}

func (a *analysis) hasQualifier(units ...NumericUnit) bool {
	for _, q := range a.Qualifiers {
		for _, u := range units {
			if q.Unit == u {
				return true
			}
		}
	}
	return false
}

// rule is one classification step: a named predicate bound to the type it
// yields. Rules run top-down and the first match wins, so precedence is a
// fixed, inspectable order rather than accumulated scores.
type rule struct {
	name       string
	confidence float64
	matches    func(a *analysis) bool
	queryType  Type
}

// classificationRules in priority order. Predicates only consult resolved
// entities; unresolved ones are handled by the synonym_unresolved rule
// near the bottom. The final rule matches unconditionally, so
// classification is total.
var classificationRules = []rule{
	{
		name:       "comparison keyword with multiple drugs",
		confidence: 0.9,
		queryType:  TypeComparison,
		matches: func(a *analysis) bool {
			return a.Keywords.Comparison && len(a.ResolvedDrugs) >= 2
		},
	},
	{
		name:       "ranking keyword or top-N qualifier",
		confidence: 0.8,
		queryType:  TypeRanking,
		matches: func(a *analysis) bool {
			return a.Keywords.Ranking || a.hasQualifier(UnitTopN, UnitFirstN)
		},
	},
	{
		name:       "mechanism question about a drug",
		confidence: 0.7,
		queryType:  TypeMechanism,
		matches: func(a *analysis) bool {
			return a.Keywords.Mechanism && len(a.ResolvedDrugs) >= 1 && !a.Keywords.Lookup
		},
	},
	{
		name:       "effect threshold",
		confidence: 0.8,
		queryType:  TypeEffectAnalysis,
		matches: func(a *analysis) bool {
			return a.Keywords.Effect && a.hasQualifier(UnitPercent, UnitFold)
		},
	},
	{
		name:       "multiple drugs without comparison keyword",
		confidence: 0.7,
		queryType:  TypeComparison,
		matches: func(a *analysis) bool {
			return len(a.ResolvedDrugs) >= 2
		},
	},
	{
		name:       "single drug lookup",
		confidence: 0.9,
		queryType:  TypeDrugSearch,
		matches: func(a *analysis) bool {
			return len(a.ResolvedDrugs) == 1
		},
	},
	{
		name:       "organism filter",
		confidence: 0.8,
		queryType:  TypeOrganismSpecific,
		matches: func(a *analysis) bool {
			return len(a.ResolvedOrganisms) >= 1
		},
	},
	{
		name:       "effect language only",
		confidence: 0.6,
		queryType:  TypeEffectAnalysis,
		matches: func(a *analysis) bool {
			return a.Keywords.Effect
		},
	},
	{
		name:       "entities found but none resolved",
		confidence: 0.3,
		queryType:  TypeSynonymUnresolved,
		matches: func(a *analysis) bool {
			return len(a.UnresolvedEntities) > 0
		},
	},
	{
		name:       "fallback",
		confidence: 0.1,
		queryType:  TypeGeneral,
		matches: func(a *analysis) bool {
			return true
		},
	},
}

// classify returns the first matching rule. Deterministic: same analysis,
// same rule, always.
func classify(a *analysis) rule {
	for _, r := range classificationRules {
		if r.matches(a) {
			return r
		}
	}
	// Unreachable: the fallback rule matches everything
	return classificationRules[len(classificationRules)-1]
}
