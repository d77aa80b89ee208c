package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/62Kinsley/DrugAge/config"
	"github.com/62Kinsley/DrugAge/display"
	"github.com/62Kinsley/DrugAge/errors"
	"github.com/62Kinsley/DrugAge/logger"
	"github.com/62Kinsley/DrugAge/query"
	"github.com/62Kinsley/DrugAge/synonym"
)

var (
	analyzeThreshold float64
	analyzeLimit     int
	analyzeVocab     string
)

// AnalyzeCmd represents the analyze command
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze [QUERY]",
	Short: "Analyze a natural-language query",
	Long: `Analyze a natural-language query about longevity compounds.

The query is resolved against the drug and organism vocabularies,
classified into a query type, and returned as a structured descriptor
with canonical entity names and execution parameters.

Examples:
  drugage analyze "what are the effects of rapamycin?"
  drugage analyze "compare metformin and resveratrol in mice"
  drugage analyze --json "top 5 compounds for lifespan extension"
  drugage analyze --threshold 0.9 "effects of rappamycin"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyzeCommand,
}

func init() {
	AnalyzeCmd.Flags().Float64VarP(&analyzeThreshold, "threshold", "t", 0, "Minimum fuzzy similarity score (overrides config)")
	AnalyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "l", 0, "Default result count for ranking queries (overrides config)")
	AnalyzeCmd.Flags().StringVar(&analyzeVocab, "vocab", "", "Path to a YAML vocabulary file (overrides config)")
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) error {
	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	desc := analyzer.Analyze(strings.Join(args, " "))

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(desc)
	}

	displayDescriptor(desc)
	return nil
}

// buildAnalyzer assembles the matcher and analyzer from configuration,
// with command-line flags taking precedence
func buildAnalyzer() (*query.Analyzer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	vocabPath := cfg.Synonym.VocabularyPath
	if analyzeVocab != "" {
		vocabPath = analyzeVocab
	}

	var matcher *synonym.Matcher
	if vocabPath != "" {
		matcher, err = synonym.MatcherFromFile(vocabPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load vocabulary from %s", vocabPath)
		}
	} else {
		matcher = synonym.NewMatcher(synonym.DefaultTables())
	}

	threshold := cfg.Synonym.FuzzyThreshold
	if analyzeThreshold > 0 {
		threshold = analyzeThreshold
	}
	matcher.SetThreshold(threshold)

	analyzer := query.NewAnalyzer(matcher)
	analyzer.SetDefaultLimit(cfg.Analyzer.DefaultLimit)
	if analyzeLimit > 0 {
		analyzer.SetDefaultLimit(analyzeLimit)
	}
	analyzer.SetLogger(logger.Logger)

	return analyzer, nil
}

func displayDescriptor(desc *query.Descriptor) {
	pterm.DefaultSection.Println("Query Analysis")

	pterm.Printf("  Query:      %s\n", pterm.White(desc.Query))
	pterm.Printf("  Type:       %s\n", pterm.LightCyan(string(desc.Type)))
	pterm.Printf("  Intent:     %s\n", desc.Intent)
	pterm.Printf("  Confidence: %s\n", confidenceLabel(desc.Confidence))

	if len(desc.Entities) > 0 {
		pterm.Println()
		pterm.Printf("  Entities:\n")
		for _, e := range desc.Entities {
			marker := pterm.LightGreen("✓")
			if !e.Resolved() {
				marker = pterm.LightYellow("?")
			}
			pterm.Printf("    %s %-20s %s -> %s\n", marker, string(e.Kind), e.RawText, e.Normalized)
		}
	}

	if len(desc.Parameters) > 0 {
		pterm.Println()
		pterm.Printf("  Parameters:\n")
		for name, value := range desc.Parameters {
			pterm.Printf("    %-20s %v\n", name, value)
		}
	}

	if len(desc.Suggestions) > 0 {
		pterm.Println()
		for _, s := range desc.Suggestions {
			pterm.Printf("  %s %s\n", pterm.Gray("→"), s)
		}
	}
}

func confidenceLabel(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return pterm.LightGreen(pterm.Sprintf("%.1f", confidence))
	case confidence >= 0.5:
		return pterm.LightYellow(pterm.Sprintf("%.1f", confidence))
	default:
		return pterm.LightRed(pterm.Sprintf("%.1f", confidence))
	}
}
