package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Synonym matcher defaults
	v.SetDefault("synonym.fuzzy_threshold", 0.8) // minimum similarity for a fuzzy alias match
	v.SetDefault("synonym.vocabulary_path", "")  // empty = builtin curated vocabularies

	// Analyzer defaults
	v.SetDefault("analyzer.default_limit", 10) // result count for unbounded ranking queries

	// Logging defaults
	v.SetDefault("log.json", false)
}
