package synonym

import (
	"sort"
	"strings"

	"github.com/62Kinsley/DrugAge/errors"
)

// Domain identifies which vocabulary a table covers
type Domain string

const (
	DomainDrug     Domain = "drug"
	DomainOrganism Domain = "organism"
)

// Table is an immutable alias -> canonical identifier index for one domain.
// Construction validates the vocabulary; after that the table is read-only
// and safe for concurrent use.
type Table struct {
	domain     Domain
	toCanon    map[string]string
	canonicals []string
	aliases    []string // sorted longest-first, for extraction scans
}

// NewTable builds a table from canonical identifier -> alias set.
//
// Validation is strict: an alias claimed by two canonicals fails construction
// (never silently picks one), and a canonical with no aliases fails too.
// Every canonical identifier is indexed as an alias of itself, so exact
// lookups of canonical names always succeed.
func NewTable(domain Domain, vocab map[string][]string) (*Table, error) {
	toCanon := make(map[string]string, len(vocab)*4)
	canonicals := make([]string, 0, len(vocab))

	for canonical, aliasSet := range vocab {
		canon := Fold(canonical)
		if canon == "" {
			return nil, errors.Wrapf(errors.ErrInvalidVocabulary, "%s table: empty canonical identifier", domain)
		}
		if len(aliasSet) == 0 {
			return nil, errors.Wrapf(errors.ErrEmptyAliasSet, "%s table: canonical %q", domain, canonical)
		}
		canonicals = append(canonicals, canon)

		// Self-membership: the canonical name is always one of its own aliases
		for _, alias := range append([]string{canonical}, aliasSet...) {
			folded := Fold(alias)
			if folded == "" {
				continue
			}
			if existing, ok := toCanon[folded]; ok {
				if existing != canon {
					return nil, errors.NewAmbiguousAliasError(folded, existing, canon)
				}
				continue
			}
			toCanon[folded] = canon
		}
	}

	aliases := make([]string, 0, len(toCanon))
	for alias := range toCanon {
		aliases = append(aliases, alias)
	}
	// Longest-first so extraction prefers "mus musculus" over "mus",
	// lexicographic within a length for deterministic scans
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})
	sort.Strings(canonicals)

	return &Table{
		domain:     domain,
		toCanon:    toCanon,
		canonicals: canonicals,
		aliases:    aliases,
	}, nil
}

// Domain returns the vocabulary domain this table covers
func (t *Table) Domain() Domain {
	return t.domain
}

// Lookup resolves a folded alias to its canonical identifier
func (t *Table) Lookup(text string) (string, bool) {
	canonical, ok := t.toCanon[Fold(text)]
	return canonical, ok
}

// Canonicals returns all canonical identifiers in sorted order
func (t *Table) Canonicals() []string {
	out := make([]string, len(t.canonicals))
	copy(out, t.canonicals)
	return out
}

// Aliases returns all indexed aliases, longest first
func (t *Table) Aliases() []string {
	out := make([]string, len(t.aliases))
	copy(out, t.aliases)
	return out
}

// AliasesOf returns the aliases mapped to a canonical identifier,
// excluding the canonical itself
func (t *Table) AliasesOf(canonical string) []string {
	canon := Fold(canonical)
	var out []string
	for _, alias := range t.aliases {
		if t.toCanon[alias] == canon && alias != canon {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of canonical identifiers
func (t *Table) Len() int {
	return len(t.canonicals)
}

// Fold normalizes text for alias indexing and lookup: lowercase with
// runs of whitespace collapsed to single spaces.
func Fold(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
