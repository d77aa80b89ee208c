package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorComplete(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want bool
	}{
		{
			name: "drug search with drugs",
			desc: Descriptor{Type: TypeDrugSearch, Parameters: Parameters{ParamDrugs: []string{"rapamycin"}}},
			want: true,
		},
		{
			name: "drug search missing drugs",
			desc: Descriptor{Type: TypeDrugSearch, Parameters: Parameters{}},
			want: false,
		},
		{
			name: "comparison needs drugs and style",
			desc: Descriptor{Type: TypeComparison, Parameters: Parameters{ParamDrugs: []string{"a", "b"}}},
			want: false,
		},
		{
			name: "ranking needs limit and sort order",
			desc: Descriptor{Type: TypeRanking, Parameters: Parameters{ParamLimit: 10, ParamSortOrder: SortDescending}},
			want: true,
		},
		{
			name: "general has no required parameters",
			desc: Descriptor{Type: TypeGeneral, Parameters: Parameters{}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.Complete())
		})
	}
}

func TestDescriptorEntitiesOfKind(t *testing.T) {
	desc := Descriptor{
		Entities: []Entity{
			{Kind: KindDrug, Normalized: "rapamycin"},
			{Kind: KindOrganism, Normalized: "mus musculus"},
			{Kind: KindDrug, Normalized: "metformin"},
		},
	}
	assert.Len(t, desc.EntitiesOfKind(KindDrug), 2)
	assert.Len(t, desc.EntitiesOfKind(KindOrganism), 1)
	assert.Empty(t, desc.EntitiesOfKind(KindNumericQualifier))
}

func TestIntentFor(t *testing.T) {
	for _, queryType := range []Type{
		TypeDrugSearch, TypeComparison, TypeRanking, TypeOrganismSpecific,
		TypeEffectAnalysis, TypeMechanism, TypeSynonymUnresolved, TypeGeneral,
	} {
		assert.NotEmpty(t, IntentFor(queryType), "type %s", queryType)
	}

	// Unknown types report the general intent
	assert.Equal(t, IntentFor(TypeGeneral), IntentFor(Type("made_up")))
}
