package query

import (
	"strings"

	"github.com/62Kinsley/DrugAge/synonym"
)

// Keyword vocabularies for query-type detection. Single words are matched
// on token boundaries; entries containing a space are matched as phrases.

var comparisonKeywords = []string{
	"compare", "comparison", "versus", "vs", "vs.", "against",
	"better", "worse", "more effective", "less effective",
	"difference", "differ", "similar", "same", "alike",
	"which is", "what is the difference", "which one",
	"superior", "inferior", "outperform",
}

var rankingKeywords = []string{
	"best", "top", "most", "highest", "greatest", "maximum",
	"worst", "bottom", "least", "lowest", "smallest", "minimum",
	"rank", "ranking", "order", "list", "sort",
	"leading", "premier",
}

var mechanismKeywords = []string{
	"how", "why", "mechanism", "pathway", "target",
	"work", "works", "function", "operate", "act",
	"molecular", "cellular", "biochemical",
	"gene", "protein", "enzyme", "receptor",
	"signaling", "signal", "cascade",
}

var effectKeywords = []string{
	"lifespan", "life span", "longevity", "aging", "ageing",
	"extend", "extension", "increase", "prolong", "benefit", "improve",
	"effect", "effects", "impact", "influence", "outcome",
	"survival", "mortality", "live longer",
	"healthspan", "health span",
}

var ascendingKeywords = []string{
	"ascending", "lowest", "worst", "smallest",
}

var lookupKeywords = []string{
	"information", "about", "tell me", "what is", "describe",
}

// keywordHits records which keyword classes fired during extraction
type keywordHits struct {
	Comparison bool
	Ranking    bool
	Mechanism  bool
	Effect     bool
	Ascending  bool
	Lookup     bool
}

// hasKeyword reports whether any keyword from the list appears in the
// folded query. Phrases match as substrings on word boundaries; single
// words match whole tokens.
func hasKeyword(folded string, tokens map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(folded, kw) {
				return true
			}
			continue
		}
		if tokens[kw] {
			return true
		}
	}
	return false
}

// detectKeywords classifies the folded query against every keyword class.
// Effect detection also consults the effect synonym vocabulary so that
// informal phrasings ("senescence", "boost") count as effect language.
func detectKeywords(folded string) keywordHits {
	tokens := tokenSet(folded)

	hits := keywordHits{
		Comparison: hasKeyword(folded, tokens, comparisonKeywords),
		Ranking:    hasKeyword(folded, tokens, rankingKeywords),
		Mechanism:  hasKeyword(folded, tokens, mechanismKeywords),
		Effect:     hasKeyword(folded, tokens, effectKeywords),
		Ascending:  hasKeyword(folded, tokens, ascendingKeywords),
		Lookup:     hasKeyword(folded, tokens, lookupKeywords),
	}

	if !hits.Effect {
		for informal := range synonym.DefaultEffectSynonyms() {
			if strings.Contains(informal, " ") {
				if strings.Contains(folded, informal) {
					hits.Effect = true
					break
				}
			} else if tokens[informal] {
				hits.Effect = true
				break
			}
		}
	}

	return hits
}

// tokenSet splits a folded query into a word set, trimming punctuation
// that commonly trails tokens in questions
func tokenSet(folded string) map[string]bool {
	fields := strings.Fields(folded)
	tokens := make(map[string]bool, len(fields))
	for _, f := range fields {
		tokens[strings.Trim(f, "?!.,;:\"'()")] = true
	}
	return tokens
}
