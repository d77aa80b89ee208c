package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/62Kinsley/DrugAge/display"
	"github.com/62Kinsley/DrugAge/query"
)

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate [QUERY]",
	Short: "Check a query for obvious problems before analysis",
	Long: `Check a raw query for obvious problems: too short, no recognizable
domain vocabulary, or unclear phrasing. Validation is advisory; any query
can still be analyzed.

Examples:
  drugage validate "best drug?"
  drugage validate --json "rapamycin mouse studies"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidateCommand,
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	v := query.ValidateQuery(strings.Join(args, " "))

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(v)
	}

	if v.IsValid {
		pterm.Success.Printf("Query looks usable (confidence %.1f)\n", v.Confidence)
	} else {
		pterm.Warning.Println("Query has problems")
	}

	for _, issue := range v.Issues {
		pterm.Printf("  %s %s\n", pterm.LightRed("✗"), issue)
	}
	for _, s := range v.Suggestions {
		pterm.Printf("  %s %s\n", pterm.Gray("→"), s)
	}
	return nil
}
