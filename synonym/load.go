package synonym

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/62Kinsley/DrugAge/errors"
)

// Vocabulary is the on-disk form of the alias tables, so deployments can
// extend or replace the builtin data from files generated alongside the
// dataset.
//
//	drugs:
//	  rapamycin: [sirolimus, rapa]
//	organisms:
//	  mus musculus: [mouse, mice]
type Vocabulary struct {
	Drugs     map[string][]string `yaml:"drugs"`
	Organisms map[string][]string `yaml:"organisms"`
}

// LoadVocabularyFile reads a YAML vocabulary file
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrVocabularyNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read vocabulary file %s", path)
	}

	var vocab Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidVocabulary, "%s: %v", path, err),
			"vocabulary files map canonical identifiers to alias lists under 'drugs:' and 'organisms:'",
		)
	}

	return &vocab, nil
}

// Tables builds validated drug and organism tables from the vocabulary.
// Fails fast on ambiguous aliases or canonicals with no aliases, so a bad
// data file can never produce a half-working matcher.
func (v *Vocabulary) Tables() (drugs *Table, organisms *Table, err error) {
	drugs, err = NewTable(DomainDrug, v.Drugs)
	if err != nil {
		return nil, nil, errors.Wrap(err, "drug vocabulary")
	}
	organisms, err = NewTable(DomainOrganism, v.Organisms)
	if err != nil {
		return nil, nil, errors.Wrap(err, "organism vocabulary")
	}
	return drugs, organisms, nil
}

// MatcherFromFile is a convenience that loads a vocabulary file and
// builds a Matcher from it
func MatcherFromFile(path string) (*Matcher, error) {
	vocab, err := LoadVocabularyFile(path)
	if err != nil {
		return nil, err
	}
	drugs, organisms, err := vocab.Tables()
	if err != nil {
		return nil, err
	}
	return NewMatcher(drugs, organisms), nil
}
