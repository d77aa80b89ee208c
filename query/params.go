package query

import (
	"strings"
)

// DefaultRankingLimit is used when a ranking query names no count
const DefaultRankingLimit = 10

// extractParameters builds the parameter map for a classified query.
// Required parameters that the query does not state get documented
// defaults; the result is always complete for its type.
func extractParameters(folded string, queryType Type, a *analysis, defaultLimit int) Parameters {
	params := Parameters{}

	for _, q := range a.Qualifiers {
		switch q.Unit {
		case UnitTopN, UnitFirstN:
			params[ParamLimit] = int(q.Value)
		case UnitPercent:
			params[ParamMinEffect] = q.Value
		case UnitFold:
			if _, ok := params[ParamMinEffect]; !ok {
				// A fold change is a stronger statement than a percent;
				// convert so the executor sees one threshold unit
				params[ParamMinEffect] = (q.Value - 1) * 100
			}
		case UnitYears, UnitMonths:
			params[ParamTimePeriod] = TimePeriod{Value: q.Value, Unit: q.Unit}
		case UnitDosage:
			params[ParamDosage] = q.Value
		}
	}

	// Sort direction defaults to the strongest lifespan extension first
	if a.Keywords.Ascending {
		params[ParamSortOrder] = SortAscending
	} else {
		params[ParamSortOrder] = SortDescending
	}

	if drugs := canonicalNames(a.ResolvedDrugs); len(drugs) > 0 {
		params[ParamDrugs] = drugs
	}
	if organisms := canonicalNames(a.ResolvedOrganisms); len(organisms) > 0 {
		params[ParamOrganismFilter] = organisms[0]
	}

	switch queryType {
	case TypeRanking:
		if _, ok := params[ParamLimit]; !ok {
			params[ParamLimit] = defaultLimit
		}
	case TypeComparison:
		params[ParamComparisonType] = ComparisonComprehensive
		if containsAny(folded, "summary", "brief") {
			params[ParamComparisonType] = ComparisonSummary
		}
		if containsAny(folded, "statistical", "significant", "stats") {
			params[ParamIncludeStatistics] = true
		}
	case TypeDrugSearch:
		if containsAny(folded, "exact", "exactly") {
			params[ParamExactMatch] = true
		}
		if containsAny(folded, "similar", "related") {
			params[ParamIncludeSimilar] = true
		}
	}

	return params
}

// canonicalNames lists the distinct canonical identifiers of resolved
// entities, in order of first appearance
func canonicalNames(entities []Entity) []string {
	seen := make(map[string]bool, len(entities))
	var out []string
	for _, e := range entities {
		if e.Normalized == "" || seen[e.Normalized] {
			continue
		}
		seen[e.Normalized] = true
		out = append(out, e.Normalized)
	}
	return out
}

func containsAny(folded string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}
