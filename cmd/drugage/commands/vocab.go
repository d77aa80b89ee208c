package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/62Kinsley/DrugAge/config"
	"github.com/62Kinsley/DrugAge/display"
	"github.com/62Kinsley/DrugAge/errors"
	"github.com/62Kinsley/DrugAge/synonym"
)

// VocabCmd represents the vocab command
var VocabCmd = &cobra.Command{
	Use:   "vocab [drugs|organisms]",
	Short: "Inspect the drug and organism vocabularies",
	Long: `List the canonical identifiers and aliases the matcher resolves
against. Without arguments both vocabularies are shown.

Examples:
  drugage vocab
  drugage vocab drugs
  drugage vocab organisms --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVocabCommand,
}

func runVocabCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	var drugs, organisms *synonym.Table
	if cfg.Synonym.VocabularyPath != "" {
		vocab, err := synonym.LoadVocabularyFile(cfg.Synonym.VocabularyPath)
		if err != nil {
			return err
		}
		drugs, organisms, err = vocab.Tables()
		if err != nil {
			return err
		}
	} else {
		drugs, organisms = synonym.DefaultTables()
	}

	which := ""
	if len(args) == 1 {
		which = strings.ToLower(args[0])
	}

	switch which {
	case "":
		return displayTables(cmd, drugs, organisms)
	case "drugs":
		return displayTables(cmd, drugs)
	case "organisms":
		return displayTables(cmd, organisms)
	default:
		return errors.Newf("unknown vocabulary %q (want 'drugs' or 'organisms')", args[0])
	}
}

func displayTables(cmd *cobra.Command, tables ...*synonym.Table) error {
	if display.ShouldOutputJSON(cmd) {
		out := make(map[string]map[string][]string, len(tables))
		for _, table := range tables {
			entries := make(map[string][]string, table.Len())
			for _, canonical := range table.Canonicals() {
				entries[canonical] = table.AliasesOf(canonical)
			}
			out[string(table.Domain())] = entries
		}
		return display.OutputJSON(out)
	}

	for _, table := range tables {
		pterm.DefaultSection.Printf("%s vocabulary (%d entries)", table.Domain(), table.Len())
		for _, canonical := range table.Canonicals() {
			pterm.Printf("  %s\n", pterm.LightCyan(canonical))
			if aliases := table.AliasesOf(canonical); len(aliases) > 0 {
				pterm.Printf("    %s\n", pterm.Gray(strings.Join(aliases, ", ")))
			}
		}
	}
	return nil
}
