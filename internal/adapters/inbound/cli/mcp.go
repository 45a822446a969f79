package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the itemsetfix MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var championsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start itemsetfix MCP server (stdio)",
		Long: "Start the itemsetfix MCP server using stdio transport. This lets assistants run " +
			"dry runs, apply fixes, and inspect the mapping table and run history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if championsPath == "" {
				championsPath = "."
			}
			s := mcpadapter.NewItemSetFixMCPServer(championsPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&championsPath, "path", "", "Champions directory (defaults to current working directory)")

	return cmd
}
