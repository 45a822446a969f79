package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/config"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/history"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/scanner"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/store"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/application"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

// registerTools registers all itemsetfix MCP tools on the given server.
func registerTools(s *server.MCPServer, championsPath string) {
	// 1. itemsetfix_run
	s.AddTool(
		mcplib.NewTool("itemsetfix_run",
			mcplib.WithDescription("Scan the champions directory and replace legacy item IDs. Returns the full run result as JSON."),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would change without writing files")),
			mcplib.WithBoolean("no_backup", mcplib.Description("Do not create .bak files when applying changes")),
			mcplib.WithString("map", mcplib.Description(`Map code item sets must target (default "SR")`)),
		),
		handleRun(championsPath),
	)

	// 2. itemsetfix_mappings
	s.AddTool(
		mcplib.NewTool("itemsetfix_mappings",
			mcplib.WithDescription("Returns the embedded old→new item ID mapping table as JSON"),
		),
		handleMappings(),
	)

	// 3. itemsetfix_history
	s.AddTool(
		mcplib.NewTool("itemsetfix_history",
			mcplib.WithDescription("Returns past run summaries recorded for the champions directory"),
		),
		handleHistory(championsPath),
	)
}

func newRunService() *application.RunService {
	return application.NewRunService(
		scanner.New(),
		store.New(),
		config.New(),
		history.New(),
		domain.EmbeddedTable(),
	)
}

func handleRun(championsPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		dryRun, _ := args["dry_run"].(bool)
		noBackup, _ := args["no_backup"].(bool)
		mapCode, _ := args["map"].(string)

		result, err := newRunService().Run(domain.RunOptions{
			Root:    championsPath,
			Apply:   !dryRun,
			Backups: !noBackup,
			MapCode: mapCode,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("run failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleMappings() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.EmbeddedTable().Entries())
	}
}

func handleHistory(championsPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(championsPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
