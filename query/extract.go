package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/62Kinsley/DrugAge/synonym"
)

// extraction is the raw output of the first pipeline stage: candidate
// entities before synonym normalization, numeric qualifiers, and keyword
// hits. Over-extraction is fine; false positives are pruned downstream.
type extraction struct {
	Drugs      []Entity
	Organisms  []Entity
	Qualifiers []NumericQualifier
	Keywords   keywordHits
}

// numericPatterns mirror the qualifier shapes users actually type:
// "20%", "1.5 fold", "top 10", "200 mg", "2 years"
var numericPatterns = []struct {
	re   *regexp.Regexp
	unit NumericUnit
}{
	{regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:percent\b|%)`), UnitPercent},
	{regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:fold|times)\b`), UnitFold},
	{regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:years?|yr)\b`), UnitYears},
	{regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:months?|mo)\b`), UnitMonths},
	{regexp.MustCompile(`\btop\s*(\d+)\b`), UnitTopN},
	{regexp.MustCompile(`\bfirst\s*(\d+)\b`), UnitFirstN},
	{regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:mg|g|kg|ml|l)\b`), UnitDosage},
}

// drugLikeSuffixes flag tokens with a chemical-name shape that matched no
// known alias. These are kept as candidate drug entities so the fuzzy and
// unresolved paths still see them.
var drugLikeSuffixes = []string{
	"mycin", "micin", "formin", "statin", "cetin", "limus",
	"azole", "idine", "osine", "amide", "phenol", "sterol", "tinib",
}

// extractor scans raw queries for entity candidates. Built once per
// analyzer from the matcher's tables; read-only afterwards.
type extractor struct {
	drugPattern     *regexp.Regexp
	organismPattern *regexp.Regexp
	drugs           *synonym.Table
}

func newExtractor(drugs, organisms *synonym.Table) *extractor {
	return &extractor{
		drugPattern:     aliasPattern(drugs),
		organismPattern: aliasPattern(organisms),
		drugs:           drugs,
	}
}

// aliasPattern compiles one word-bounded alternation over every alias in
// the table. Aliases come back longest-first, so the alternation prefers
// "mus musculus" over "mus" at the same position. An empty table yields
// nil: an empty alternation would match at every word boundary, and a
// single-domain vocabulary file legitimately leaves one table empty.
func aliasPattern(table *synonym.Table) *regexp.Regexp {
	aliases := table.Aliases()
	if len(aliases) == 0 {
		return nil
	}
	quoted := make([]string, len(aliases))
	for i, alias := range aliases {
		quoted[i] = regexp.QuoteMeta(alias)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// extract runs the full first stage over a folded query
func (x *extractor) extract(folded string) extraction {
	ext := extraction{Keywords: detectKeywords(folded)}

	if x.drugPattern != nil {
		for _, match := range x.drugPattern.FindAllString(folded, -1) {
			ext.Drugs = append(ext.Drugs, Entity{Kind: KindDrug, RawText: match})
		}
	}
	if x.organismPattern != nil {
		for _, match := range x.organismPattern.FindAllString(folded, -1) {
			ext.Organisms = append(ext.Organisms, Entity{Kind: KindOrganism, RawText: match})
		}
	}

	ext.Drugs = append(ext.Drugs, x.drugLikeCandidates(folded)...)

	for _, p := range numericPatterns {
		for _, groups := range p.re.FindAllStringSubmatch(folded, -1) {
			value, err := strconv.ParseFloat(groups[1], 64)
			if err != nil {
				continue
			}
			ext.Qualifiers = append(ext.Qualifiers, NumericQualifier{
				Value:   value,
				Unit:    p.unit,
				RawText: groups[0],
			})
		}
	}

	return ext
}

// drugLikeCandidates finds tokens with chemical-name suffixes that are not
// already known aliases. They ride along as drug entities and either
// fuzzy-resolve or stay unresolved.
func (x *extractor) drugLikeCandidates(folded string) []Entity {
	var out []Entity
	for _, field := range strings.Fields(folded) {
		token := strings.Trim(field, "?!.,;:\"'()")
		if len(token) < 6 {
			continue
		}
		if _, known := x.drugs.Lookup(token); known {
			continue // the alias scan already caught it
		}
		for _, suffix := range drugLikeSuffixes {
			if strings.HasSuffix(token, suffix) {
				out = append(out, Entity{Kind: KindDrug, RawText: token})
				break
			}
		}
	}
	return out
}

// qualifierEntities converts numeric qualifiers into typed entity spans
// for the descriptor's entity list
func qualifierEntities(qualifiers []NumericQualifier) []Entity {
	var out []Entity
	for _, q := range qualifiers {
		kind := KindNumericQualifier
		if q.Temporal() {
			kind = KindTemporalQualifier
		}
		out = append(out, Entity{
			Kind:       kind,
			RawText:    q.RawText,
			Normalized: string(q.Unit),
			Confidence: synonym.MatchExact,
		})
	}
	return out
}
