// Package config provides configuration for the DrugAge query core,
// loaded from TOML files and DRUGAGE_-prefixed environment variables.
package config

// Config holds all settings for the query-analysis core
type Config struct {
	Synonym  SynonymConfig  `mapstructure:"synonym"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
	Log      LogConfig      `mapstructure:"log"`
}

// SynonymConfig controls the synonym matcher
type SynonymConfig struct {
	// FuzzyThreshold is the minimum similarity score for a fuzzy match
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`
	// VocabularyPath optionally points at a YAML vocabulary file; when
	// empty the builtin curated tables are used
	VocabularyPath string `mapstructure:"vocabulary_path"`
}

// AnalyzerConfig controls the query analyzer
type AnalyzerConfig struct {
	// DefaultLimit is the result count for ranking queries that name none
	DefaultLimit int `mapstructure:"default_limit"`
}

// LogConfig controls logging output
type LogConfig struct {
	// JSON switches structured JSON output on
	JSON bool `mapstructure:"json"`
}
