package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/config"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/history"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/scanner"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/store"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/tui"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/application"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/i18n"
)

func newRunCmd() *cobra.Command {
	var (
		dryRun     bool
		noBackup   bool
		jsonOutput bool
		mapCode    string
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "run [champions-dir]",
		Short: "Scan item sets and replace legacy item IDs",
		Long: "Scan <champions-dir>/*/Recommended/*.json, replace legacy item IDs in Summoner's Rift " +
			"item sets, back up originals as .bak, and report every change per champion.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewRunService(
				scanner.New(),
				store.New(),
				config.New(),
				history.New(),
				domain.EmbeddedTable(),
			)

			result, err := svc.Run(domain.RunOptions{
				Root:    absRoot,
				Apply:   !dryRun,
				Backups: !noBackup,
				MapCode: mapCode,
			})
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			p := i18n.NewPrinter(lang)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunResult(result, !dryRun, p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing files")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Do not create .bak files when applying changes")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the raw run result as JSON")
	cmd.Flags().StringVar(&mapCode, "map", "", `Map code item sets must target (default "SR")`)
	cmd.Flags().StringVar(&lang, "lang", "en", "Report language (en or es)")

	return cmd
}
