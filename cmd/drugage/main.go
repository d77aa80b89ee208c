package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/62Kinsley/DrugAge/cmd/drugage/commands"
	"github.com/62Kinsley/DrugAge/config"
	"github.com/62Kinsley/DrugAge/logger"
)

var rootCmd = &cobra.Command{
	Use:   "drugage",
	Short: "DrugAge - Natural-language query analysis for longevity compounds",
	Long: `DrugAge - Query understanding for the DrugAge longevity-compound dataset.

Turns free-form questions about compounds, organisms, and lifespan effects
into structured query descriptors: canonical entity names, a query type,
and execution parameters.

Available commands:
  analyze  - Analyze a natural-language query
  validate - Check a query for obvious problems before analysis
  vocab    - Inspect the drug and organism vocabularies
  version  - Show version information

Examples:
  drugage analyze "compare rapamycin and metformin in mice"
  drugage analyze --json "top 5 compounds for lifespan"
  drugage vocab drugs
  drugage validate "best drug?"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity")

	rootCmd.AddCommand(commands.AnalyzeCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.VocabCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
