// Package synonym canonicalizes informal drug and organism names against
// curated vocabularies of the DrugAge dataset.
//
// A Matcher holds one immutable Table per domain and resolves free-form
// text to canonical dataset identifiers, first by exact alias lookup and
// then by fuzzy similarity against the known aliases. Unresolvable input
// is reported as unresolved rather than failing, so callers can still
// attempt a literal match against the dataset.
package synonym

import (
	"go.uber.org/zap"
)

// Confidence describes how a name was resolved
type Confidence string

const (
	// MatchExact means the input hit an alias directly
	MatchExact Confidence = "exact"
	// MatchFuzzy means the input cleared the similarity threshold
	MatchFuzzy Confidence = "fuzzy"
	// MatchUnresolved means no alias matched; the input is kept as
	// literal text for downstream verbatim matching
	MatchUnresolved Confidence = "unresolved"
)

// NormalizedName is the result of a normalization lookup
type NormalizedName struct {
	Input      string     `json:"input"`
	Canonical  string     `json:"canonical"`
	Confidence Confidence `json:"confidence"`
	Score      float64    `json:"score"`
}

// Resolved reports whether the name mapped to a canonical identifier
func (n NormalizedName) Resolved() bool {
	return n.Confidence != MatchUnresolved
}

// Matcher resolves informal names against the drug and organism tables.
// Read-only after construction; safe for concurrent use.
type Matcher struct {
	drugs     *Table
	organisms *Table
	scorer    Scorer
	threshold float64
	logger    *zap.SugaredLogger
}

// NewMatcher creates a matcher over the given tables with the default
// scorer and fuzzy threshold
func NewMatcher(drugs, organisms *Table) *Matcher {
	return &Matcher{
		drugs:     drugs,
		organisms: organisms,
		scorer:    NewLevenshteinScorer(),
		threshold: DefaultFuzzyThreshold,
	}
}

// SetLogger sets the logger for debug output
func (m *Matcher) SetLogger(logger *zap.SugaredLogger) {
	m.logger = logger
}

// SetScorer replaces the similarity heuristic
func (m *Matcher) SetScorer(scorer Scorer) {
	if scorer != nil {
		m.scorer = scorer
	}
}

// SetThreshold sets the minimum fuzzy similarity score
func (m *Matcher) SetThreshold(threshold float64) {
	m.threshold = threshold
}

// DrugTable returns the drug vocabulary table
func (m *Matcher) DrugTable() *Table {
	return m.drugs
}

// OrganismTable returns the organism vocabulary table
func (m *Matcher) OrganismTable() *Table {
	return m.organisms
}

// NormalizeDrugName canonicalizes an informal drug name
func (m *Matcher) NormalizeDrugName(text string) NormalizedName {
	return m.normalize(m.drugs, text)
}

// NormalizeOrganismName canonicalizes an informal organism name, including
// common-name to binomial mappings like "mouse" -> "mus musculus"
func (m *Matcher) NormalizeOrganismName(text string) NormalizedName {
	return m.normalize(m.organisms, text)
}

func (m *Matcher) normalize(table *Table, text string) NormalizedName {
	folded := Fold(text)
	if folded == "" {
		// No fuzzy attempt on empty input: everything is "similar" to nothing
		return NormalizedName{Input: text, Canonical: text, Confidence: MatchUnresolved}
	}

	if canonical, ok := table.Lookup(folded); ok {
		return NormalizedName{Input: text, Canonical: canonical, Confidence: MatchExact, Score: 1.0}
	}

	// Fuzzy pass over every known alias. Ties on score break toward the
	// alias earlier in the table's deterministic ordering, so repeated
	// calls always resolve the same way.
	var bestAlias string
	var bestScore float64
	for _, alias := range table.aliases {
		score := m.scorer.Score(folded, alias)
		if score > bestScore {
			bestScore = score
			bestAlias = alias
		}
	}

	if bestScore >= m.threshold {
		canonical := table.toCanon[bestAlias]
		if m.logger != nil {
			m.logger.Debugw("fuzzy name resolution",
				"domain", table.domain,
				"input", text,
				"alias", bestAlias,
				"canonical", canonical,
				"score", bestScore,
			)
		}
		return NormalizedName{Input: text, Canonical: canonical, Confidence: MatchFuzzy, Score: bestScore}
	}

	// Unresolved input passes through unchanged so downstream verbatim
	// matching sees exactly what the user typed
	return NormalizedName{Input: text, Canonical: text, Confidence: MatchUnresolved, Score: bestScore}
}
