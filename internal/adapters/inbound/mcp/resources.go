package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/modsentry/modsentry/internal/adapters/outbound/config"
	"github.com/modsentry/modsentry/internal/adapters/outbound/history"
	"github.com/modsentry/modsentry/internal/adapters/outbound/rules"
)

// registerResources registers all ModSentry MCP resources on the given server.
func registerResources(s *server.MCPServer, workDir string) {
	// 1. modsentry://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			"modsentry://config",
			"Configuration",
			mcplib.WithResourceDescription("Effective ModSentry configuration for the working directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(workDir),
	)

	// 2. modsentry://history - past analysis runs
	s.AddResource(
		mcplib.NewResource(
			"modsentry://history",
			"Analysis History",
			mcplib.WithResourceDescription("Past mod list analysis runs, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(workDir),
	)

	// 3. modsentry://rules - configured rule set
	s.AddResource(
		mcplib.NewResource(
			"modsentry://rules",
			"Rule Set",
			mcplib.WithResourceDescription("The conflict rule set configured via rules_path"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(workDir),
	)
}

func handleConfigResource(workDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonContents("modsentry://config", cfg)
	}
}

func handleHistoryResource(workDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonContents("modsentry://history", entries)
	}
}

func handleRulesResource(workDir string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		if cfg.RulesPath == "" {
			return nil, fmt.Errorf("no rules file configured: set rules_path in .modsentry.yaml")
		}

		rs, err := rules.NewLoader().Load(ctx, cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading rules: %w", err)
		}
		return jsonContents("modsentry://rules", rs)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
