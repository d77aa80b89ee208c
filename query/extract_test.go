package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/62Kinsley/DrugAge/synonym"
)

func newTestExtractor(t *testing.T) *extractor {
	t.Helper()
	drugs, organisms := synonym.DefaultTables()
	return newExtractor(drugs, organisms)
}

func TestExtractDrugAliases(t *testing.T) {
	x := newTestExtractor(t)

	ext := x.extract("effects of sirolimus and glucophage")
	require.Len(t, ext.Drugs, 2)
	assert.Equal(t, "sirolimus", ext.Drugs[0].RawText)
	assert.Equal(t, "glucophage", ext.Drugs[1].RawText)
	for _, e := range ext.Drugs {
		assert.Equal(t, KindDrug, e.Kind)
	}
}

func TestExtractPrefersLongestAlias(t *testing.T) {
	x := newTestExtractor(t)

	// "green tea extract" is itself an alias; the scan must take the
	// whole phrase, not stop at "green tea"
	ext := x.extract("studies on green tea extract")
	require.Len(t, ext.Drugs, 1)
	assert.Equal(t, "green tea extract", ext.Drugs[0].RawText)
}

func TestExtractOrganismAliases(t *testing.T) {
	x := newTestExtractor(t)

	ext := x.extract("tested in mice and c. elegans")
	require.Len(t, ext.Organisms, 2)
	assert.Equal(t, "mice", ext.Organisms[0].RawText)
	assert.Equal(t, "c. elegans", ext.Organisms[1].RawText)
}

func TestExtractWordBoundaries(t *testing.T) {
	x := newTestExtractor(t)

	// "rat" must not fire inside "strategy"
	ext := x.extract("dosing strategy overview")
	assert.Empty(t, ext.Organisms)
	assert.Empty(t, ext.Drugs)
}

func TestExtractNumericQualifiers(t *testing.T) {
	x := newTestExtractor(t)

	tests := []struct {
		query string
		want  NumericQualifier
	}{
		{"extends lifespan by 20%", NumericQualifier{Value: 20, Unit: UnitPercent, RawText: "20%"}},
		{"extends lifespan by 15 percent", NumericQualifier{Value: 15, Unit: UnitPercent, RawText: "15 percent"}},
		{"a 1.5 fold increase", NumericQualifier{Value: 1.5, Unit: UnitFold, RawText: "1.5 fold"}},
		{"lived 3 times longer", NumericQualifier{Value: 3, Unit: UnitFold, RawText: "3 times"}},
		{"over 2 years of treatment", NumericQualifier{Value: 2, Unit: UnitYears, RawText: "2 years"}},
		{"within 6 months", NumericQualifier{Value: 6, Unit: UnitMonths, RawText: "6 months"}},
		{"top 10 compounds", NumericQualifier{Value: 10, Unit: UnitTopN, RawText: "top 10"}},
		{"first 3 results", NumericQualifier{Value: 3, Unit: UnitFirstN, RawText: "first 3"}},
		{"at 200 mg daily", NumericQualifier{Value: 200, Unit: UnitDosage, RawText: "200 mg"}},
	}
	for _, tt := range tests {
		ext := x.extract(tt.query)
		require.Len(t, ext.Qualifiers, 1, "query %q", tt.query)
		assert.Equal(t, tt.want, ext.Qualifiers[0], "query %q", tt.query)
	}
}

func TestExtractDrugLikeCandidates(t *testing.T) {
	x := newTestExtractor(t)

	ext := x.extract("zorblomycin and some other things")
	require.Len(t, ext.Drugs, 1)
	assert.Equal(t, "zorblomycin", ext.Drugs[0].RawText)
}

func TestExtractDrugLikeSkipsKnownAliases(t *testing.T) {
	x := newTestExtractor(t)

	// "rapamycin" has a chemical suffix but is a known alias; it must
	// come from the alias scan exactly once, not twice
	ext := x.extract("rapamycin")
	require.Len(t, ext.Drugs, 1)
	assert.Equal(t, "rapamycin", ext.Drugs[0].RawText)
}

func TestExtractDrugLikeIgnoresShortTokens(t *testing.T) {
	x := newTestExtractor(t)

	ext := x.extract("mycin limus")
	assert.Empty(t, ext.Drugs)
}

func TestExtractEmptyDomainTable(t *testing.T) {
	// A vocabulary can legitimately cover only one domain. The scan for
	// the empty domain must stay silent instead of matching at every
	// word boundary.
	emptyDrugs, err := synonym.NewTable(synonym.DomainDrug, nil)
	require.NoError(t, err)
	organisms, err := synonym.NewTable(synonym.DomainOrganism, synonym.DefaultOrganismVocabulary())
	require.NoError(t, err)
	x := newExtractor(emptyDrugs, organisms)

	ext := x.extract("what works in mice")
	assert.Empty(t, ext.Drugs)
	require.Len(t, ext.Organisms, 1)
	assert.Equal(t, "mice", ext.Organisms[0].RawText)

	ext = x.extract("hello there")
	assert.Empty(t, ext.Drugs)
	assert.Empty(t, ext.Organisms)
}

func TestExtractKeywordHits(t *testing.T) {
	tests := []struct {
		query string
		want  keywordHits
	}{
		{"compare these", keywordHits{Comparison: true}},
		{"a versus b", keywordHits{Comparison: true}},
		{"top performers", keywordHits{Ranking: true}},
		{"the lowest effect", keywordHits{Ranking: true, Ascending: true, Effect: true}},
		{"how does it work", keywordHits{Mechanism: true}},
		{"extends lifespan", keywordHits{Effect: true}},
		{"tell me about this", keywordHits{Lookup: true}},
		{"nothing relevant here", keywordHits{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectKeywords(tt.query), "query %q", tt.query)
	}
}

func TestDetectKeywordsEffectSynonyms(t *testing.T) {
	// Informal effect vocabulary counts as effect language
	for _, q := range []string{"does it boost survival", "cellular senescence studies", "life span data"} {
		hits := detectKeywords(q)
		assert.True(t, hits.Effect, "query %q", q)
	}
}

func TestDetectKeywordsTrimsPunctuation(t *testing.T) {
	hits := detectKeywords("how does it work?")
	assert.True(t, hits.Mechanism)
}

func TestQualifierEntities(t *testing.T) {
	entities := qualifierEntities([]NumericQualifier{
		{Value: 20, Unit: UnitPercent, RawText: "20%"},
		{Value: 2, Unit: UnitYears, RawText: "2 years"},
	})
	require.Len(t, entities, 2)
	assert.Equal(t, KindNumericQualifier, entities[0].Kind)
	assert.Equal(t, string(UnitPercent), entities[0].Normalized)
	assert.Equal(t, KindTemporalQualifier, entities[1].Kind)
	assert.Equal(t, "2 years", entities[1].RawText)
}
