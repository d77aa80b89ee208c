package query

const maxSuggestions = 3

// buildSuggestions produces up to three hints the response layer can use
// to help the user sharpen an imprecise query
func buildSuggestions(queryType Type, a *analysis, params Parameters) []string {
	var suggestions []string

	switch queryType {
	case TypeComparison:
		if len(canonicalNames(a.ResolvedDrugs)) < 2 {
			suggestions = append(suggestions, "comparison queries need at least two compound names")
		}
	case TypeOrganismSpecific:
		if len(a.ResolvedOrganisms) == 0 {
			suggestions = append(suggestions, "name a model organism, e.g. 'mice', 'rats', or 'C. elegans'")
		}
	case TypeRanking:
		if _, ok := params[ParamLimit]; !ok {
			suggestions = append(suggestions, "say how many results you want, e.g. 'top 10'")
		}
	case TypeSynonymUnresolved:
		for _, e := range a.UnresolvedEntities {
			if e.Kind == KindDrug {
				suggestions = append(suggestions, "'"+e.RawText+"' is not a known compound; check the spelling or try its generic name")
				break
			}
		}
	}

	if len(a.ResolvedDrugs) == 0 && len(a.ResolvedOrganisms) == 0 {
		suggestions = append(suggestions,
			"name a specific compound or model organism",
			"examples: 'rapamycin effects in mice' or 'compare metformin and resveratrol'",
		)
	}

	if queryType == TypeGeneral {
		suggestions = append(suggestions, "try a more specific question about a compound, organism, or effect")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
