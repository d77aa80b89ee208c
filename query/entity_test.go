package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/62Kinsley/DrugAge/synonym"
)

func TestEntityResolved(t *testing.T) {
	assert.True(t, Entity{Confidence: synonym.MatchExact}.Resolved())
	assert.True(t, Entity{Confidence: synonym.MatchFuzzy}.Resolved())
	assert.False(t, Entity{Confidence: synonym.MatchUnresolved}.Resolved())
}

func TestDedupeEntitiesCollapsesByCanonical(t *testing.T) {
	entities := dedupeEntities([]Entity{
		{Kind: KindDrug, RawText: "rapamycin", Normalized: "rapamycin", Confidence: synonym.MatchExact},
		{Kind: KindDrug, RawText: "sirolimus", Normalized: "rapamycin", Confidence: synonym.MatchExact},
		{Kind: KindOrganism, RawText: "mice", Normalized: "mus musculus", Confidence: synonym.MatchExact},
	})
	require.Len(t, entities, 2)
	assert.Equal(t, "rapamycin", entities[0].Normalized)
	assert.Equal(t, "mus musculus", entities[1].Normalized)
}

func TestDedupeEntitiesKindsAreIndependent(t *testing.T) {
	// Same canonical text under different kinds stays separate
	entities := dedupeEntities([]Entity{
		{Kind: KindDrug, Normalized: "shared"},
		{Kind: KindOrganism, Normalized: "shared"},
	})
	assert.Len(t, entities, 2)
}

func TestDedupeEntitiesKeepsHighestConfidence(t *testing.T) {
	entities := dedupeEntities([]Entity{
		{Kind: KindDrug, RawText: "rappamycin", Normalized: "rapamycin", Confidence: synonym.MatchFuzzy, Score: 0.81},
		{Kind: KindDrug, RawText: "rapamycin", Normalized: "rapamycin", Confidence: synonym.MatchExact, Score: 1.0},
	})
	require.Len(t, entities, 1)
	assert.Equal(t, synonym.MatchExact, entities[0].Confidence)
	assert.Equal(t, "rapamycin", entities[0].RawText)
}

func TestDedupeEntitiesFallsBackToRawText(t *testing.T) {
	// Unnormalized entities dedupe on their literal text
	entities := dedupeEntities([]Entity{
		{Kind: KindDrug, RawText: "zorblomycin", Confidence: synonym.MatchUnresolved},
		{Kind: KindDrug, RawText: "zorblomycin", Confidence: synonym.MatchUnresolved},
	})
	assert.Len(t, entities, 1)
}

func TestNumericQualifierTemporal(t *testing.T) {
	assert.True(t, NumericQualifier{Unit: UnitYears}.Temporal())
	assert.True(t, NumericQualifier{Unit: UnitMonths}.Temporal())
	assert.False(t, NumericQualifier{Unit: UnitPercent}.Temporal())
	assert.False(t, NumericQualifier{Unit: UnitTopN}.Temporal())
}
