package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/history"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/tui"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/i18n"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOutput bool
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "history [champions-dir]",
		Short: "Show past runs recorded for a champions directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := history.New().Load(absRoot)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			p := i18n.NewPrinter(lang)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries, p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().StringVar(&lang, "lang", "en", "Report language (en or es)")

	return cmd
}
