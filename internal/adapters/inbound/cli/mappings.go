package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/tui"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/i18n"
)

func newMappingsCmd() *cobra.Command {
	var (
		jsonOutput bool
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "List the embedded old→new item ID mapping table",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := domain.EmbeddedTable().Entries()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			p := i18n.NewPrinter(lang)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMappings(entries, p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the mapping table as JSON")
	cmd.Flags().StringVar(&lang, "lang", "en", "Report language (en or es)")

	return cmd
}
