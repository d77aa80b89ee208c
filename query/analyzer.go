// Package query turns free-form natural-language questions about
// longevity compounds into structured query descriptors.
//
// The pipeline has four total stages: entity extraction, synonym
// normalization, query-type classification, and parameter extraction.
// Every stage produces output for any input, so Analyze never fails on
// user text; the worst case is a low-confidence fallback descriptor the
// downstream layer can use to ask a clarifying question.
package query

import (
	"go.uber.org/zap"

	"github.com/62Kinsley/DrugAge/synonym"
)

// Analyzer is the query-analysis pipeline. Stateless per call and safe
// for concurrent use: the matcher tables and compiled patterns are
// read-only after construction.
type Analyzer struct {
	matcher      *synonym.Matcher
	extractor    *extractor
	defaultLimit int
	logger       *zap.SugaredLogger
}

// NewAnalyzer builds an analyzer over the given matcher's vocabularies
func NewAnalyzer(matcher *synonym.Matcher) *Analyzer {
	return &Analyzer{
		matcher:      matcher,
		extractor:    newExtractor(matcher.DrugTable(), matcher.OrganismTable()),
		defaultLimit: DefaultRankingLimit,
	}
}

// SetDefaultLimit overrides the result count used for ranking queries
// that name none
func (an *Analyzer) SetDefaultLimit(limit int) {
	if limit > 0 {
		an.defaultLimit = limit
	}
}

// SetLogger sets the logger for debug output
func (an *Analyzer) SetLogger(logger *zap.SugaredLogger) {
	an.logger = logger
	if logger != nil {
		an.matcher.SetLogger(logger)
	}
}

// Analyze runs the full pipeline. It never returns an error: malformed
// or empty input yields a fallback descriptor.
func (an *Analyzer) Analyze(raw string) *Descriptor {
	folded := synonym.Fold(raw)

	ext := an.extractor.extract(folded)
	a := an.normalize(ext)
	matched := classify(a)
	params := extractParameters(folded, matched.queryType, a, an.defaultLimit)

	entities := make([]Entity, 0, len(a.ResolvedDrugs)+len(a.ResolvedOrganisms)+len(a.UnresolvedEntities))
	entities = append(entities, a.ResolvedDrugs...)
	entities = append(entities, a.ResolvedOrganisms...)
	entities = append(entities, a.UnresolvedEntities...)
	entities = dedupeEntities(entities)
	entities = append(entities, qualifierEntities(a.Qualifiers)...)

	desc := &Descriptor{
		Query:       raw,
		Type:        matched.queryType,
		Entities:    entities,
		Parameters:  params,
		Confidence:  matched.confidence,
		Intent:      IntentFor(matched.queryType),
		Suggestions: buildSuggestions(matched.queryType, a, params),
	}

	if an.logger != nil {
		an.logger.Debugw("query analyzed",
			"query", raw,
			"type", desc.Type,
			"rule", matched.name,
			"entities", len(desc.Entities),
			"confidence", desc.Confidence,
		)
	}

	return desc
}

// normalize is the second pipeline stage: resolve every drug and organism
// candidate through the synonym matcher. Unresolved entities are kept as
// literal text, never dropped, so the executor can still try a verbatim
// dataset match.
func (an *Analyzer) normalize(ext extraction) *analysis {
	a := &analysis{
		Qualifiers: ext.Qualifiers,
		Keywords:   ext.Keywords,
	}

	for _, e := range ext.Drugs {
		name := an.matcher.NormalizeDrugName(e.RawText)
		e.Normalized = name.Canonical
		e.Confidence = name.Confidence
		e.Score = name.Score
		if name.Resolved() {
			a.ResolvedDrugs = append(a.ResolvedDrugs, e)
		} else {
			a.UnresolvedEntities = append(a.UnresolvedEntities, e)
		}
	}

	for _, e := range ext.Organisms {
		name := an.matcher.NormalizeOrganismName(e.RawText)
		e.Normalized = name.Canonical
		e.Confidence = name.Confidence
		e.Score = name.Score
		if name.Resolved() {
			a.ResolvedOrganisms = append(a.ResolvedOrganisms, e)
		} else {
			a.UnresolvedEntities = append(a.UnresolvedEntities, e)
		}
	}

	return a
}
