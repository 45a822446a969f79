package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/outbound/history"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

// registerResources registers all itemsetfix MCP resources on the given server.
func registerResources(s *server.MCPServer, championsPath string) {
	// 1. itemsetfix://mappings - the embedded mapping table
	s.AddResource(
		mcplib.NewResource(
			"itemsetfix://mappings",
			"Item Mappings",
			mcplib.WithResourceDescription("Embedded old→new item ID mapping table"),
			mcplib.WithMIMEType("application/json"),
		),
		handleMappingsResource(),
	)

	// 2. itemsetfix://history - recorded runs for the champions directory
	s.AddResource(
		mcplib.NewResource(
			"itemsetfix://history",
			"Run History",
			mcplib.WithResourceDescription("Past run summaries recorded for the champions directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(championsPath),
	)
}

func handleMappingsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(domain.EmbeddedTable().Entries(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling mappings: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "itemsetfix://mappings",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(championsPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(championsPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "itemsetfix://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
