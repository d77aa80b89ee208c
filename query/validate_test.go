package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQueryTooShort(t *testing.T) {
	for _, q := range []string{"", "a", "hi", "  x  "} {
		v := ValidateQuery(q)
		assert.False(t, v.IsValid, "query %q", q)
		assert.NotEmpty(t, v.Issues, "query %q", q)
		assert.NotEmpty(t, v.Suggestions, "query %q", q)
	}
}

func TestValidateQueryWellFormed(t *testing.T) {
	v := ValidateQuery("what is the best drug for lifespan extension?")
	assert.True(t, v.IsValid)
	assert.Empty(t, v.Issues)
	assert.Empty(t, v.Suggestions)
	assert.Equal(t, 1.0, v.Confidence)
}

func TestValidateQueryNoDomainVocabulary(t *testing.T) {
	v := ValidateQuery("show me everything please")
	assert.True(t, v.IsValid)
	assert.InDelta(t, 0.7, v.Confidence, 0.001)
	assert.NotEmpty(t, v.Suggestions)
}

func TestValidateQueryStatementPhrasing(t *testing.T) {
	v := ValidateQuery("rapamycin mouse studies")
	assert.True(t, v.IsValid)
	// "mouse" counts as domain vocabulary, but nothing reads as a
	// question or directive
	assert.Equal(t, 1.0, v.Confidence)
	assert.NotEmpty(t, v.Suggestions)
}

func TestValidateQueryNeverBlocks(t *testing.T) {
	// Validation of a valid-length query never flips IsValid
	for _, q := range []string{"asdf qwer", "??? !!!", "12345"} {
		v := ValidateQuery(q)
		assert.True(t, v.IsValid, "query %q", q)
	}
}
