package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/modsentry/modsentry/internal/adapters/outbound/config"
	"github.com/modsentry/modsentry/internal/adapters/outbound/history"
	"github.com/modsentry/modsentry/internal/adapters/outbound/modlist"
	"github.com/modsentry/modsentry/internal/adapters/outbound/rules"
	"github.com/modsentry/modsentry/internal/application"
	"github.com/modsentry/modsentry/internal/domain"
	"github.com/modsentry/modsentry/internal/domain/consolidate"
	"github.com/modsentry/modsentry/internal/domain/scoring"
)

// registerTools registers all ModSentry MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir string) {
	// 1. modsentry_analyze
	s.AddTool(
		mcplib.NewTool("modsentry_analyze",
			mcplib.WithDescription("Analyze a mod list for conflicts and return the consolidated report as JSON"),
			mcplib.WithString("modlist",
				mcplib.Required(),
				mcplib.Description("Path to the mod list (plugins.txt, loadorder.txt or a JSON manifest)"),
			),
			mcplib.WithString("rules",
				mcplib.Description("Path to the rules YAML file (defaults to rules_path from .modsentry.yaml)"),
			),
		),
		handleAnalyze(workDir),
	)

	// 2. modsentry_score_source
	s.AddTool(
		mcplib.NewTool("modsentry_score_source",
			mcplib.WithDescription("Score a single scraped community source for reliability"),
			mcplib.WithString("source",
				mcplib.Required(),
				mcplib.Description("JSON object with the scraped source fields (url, source_type, published_date, endorsements, ...)"),
			),
		),
		handleScoreSource(workDir),
	)

	// 3. modsentry_filter_sources
	s.AddTool(
		mcplib.NewTool("modsentry_filter_sources",
			mcplib.WithDescription("Score a batch of scraped sources and return only those meeting the reliability thresholds, best first"),
			mcplib.WithString("sources",
				mcplib.Required(),
				mcplib.Description("JSON array of scraped source objects"),
			),
			mcplib.WithNumber("min_score",
				mcplib.Description("Minimum overall score (defaults to the configured threshold)"),
			),
			mcplib.WithNumber("min_confidence",
				mcplib.Description("Minimum confidence (defaults to the configured threshold)"),
			),
		),
		handleFilterSources(workDir),
	)

	// 4. modsentry_rules
	s.AddTool(
		mcplib.NewTool("modsentry_rules",
			mcplib.WithDescription("Load a conflict rule set and return it as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Path to the rules YAML file (defaults to rules_path from .modsentry.yaml)"),
			),
		),
		handleRules(workDir),
	)

	// 5. modsentry_consolidate_search
	s.AddTool(
		mcplib.NewTool("modsentry_consolidate_search",
			mcplib.WithDescription("Sort search results best first, truncate to a display limit and break them down by category"),
			mcplib.WithString("results",
				mcplib.Required(),
				mcplib.Description("JSON array of search result objects (title, url, score, category)"),
			),
			mcplib.WithNumber("max_display",
				mcplib.Description("Maximum results to return (defaults to 20)"),
			),
		),
		handleConsolidateSearch(),
	)

	// 6. modsentry_recommendations
	s.AddTool(
		mcplib.NewTool("modsentry_recommendations",
			mcplib.WithDescription("Group recommendations by priority and by category"),
			mcplib.WithString("recommendations",
				mcplib.Required(),
				mcplib.Description("JSON array of recommendation objects (message, priority, category)"),
			),
		),
		handleRecommendations(),
	)
}

func handleAnalyze(workDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		listPath, err := request.RequireString("modlist")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rulesPath, _ := request.GetArguments()["rules"].(string)

		svc := application.NewAnalyzeService(
			modlist.New(),
			rules.NewLoader(),
			config.New(),
			history.New(),
			zerolog.Nop(),
		)

		res, err := svc.AnalyzeModList(ctx, listPath, rulesPath, workDir)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleScoreSource(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("source")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			return errorResult(fmt.Sprintf("parsing source: %v", err)), nil
		}

		scorer, _, err := newScorer(workDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		rec := domain.ParseSourceRecord(obj)
		return jsonResult(domain.ScoredSource{Source: rec, Score: scorer.ScoreSource(rec)})
	}
}

func handleFilterSources(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("sources")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var objects []map[string]any
		if err := json.Unmarshal([]byte(raw), &objects); err != nil {
			return errorResult(fmt.Sprintf("parsing sources: %v", err)), nil
		}

		records := make([]domain.SourceRecord, 0, len(objects))
		for _, obj := range objects {
			records = append(records, domain.ParseSourceRecord(obj))
		}

		scorer, cfg, err := newScorer(workDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		minScore := cfg.EffectiveMinScore()
		if v, ok := args["min_score"].(float64); ok {
			minScore = v
		}
		minConfidence := cfg.EffectiveMinConfidence()
		if v, ok := args["min_confidence"].(float64); ok {
			minConfidence = v
		}

		return jsonResult(scorer.FilterByReliability(records, minScore, minConfidence))
	}
}

func handleRules(workDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			cfg, err := config.New().Load(workDir)
			if err != nil {
				return errorResult(fmt.Sprintf("loading config: %v", err)), nil
			}
			path = cfg.RulesPath
		}
		if path == "" {
			return errorResult("no rules file: pass path or set rules_path in .modsentry.yaml"), nil
		}

		rs, err := rules.NewLoader().Load(ctx, path)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules: %v", err)), nil
		}
		return jsonResult(rs)
	}
}

func handleConsolidateSearch() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("results")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var results []domain.SearchResult
		if err := json.Unmarshal([]byte(raw), &results); err != nil {
			return errorResult(fmt.Sprintf("parsing results: %v", err)), nil
		}

		maxDisplay := 0
		if v, ok := request.GetArguments()["max_display"].(float64); ok {
			maxDisplay = int(v)
		}
		return jsonResult(consolidate.ConsolidateSearchResults(results, maxDisplay))
	}
}

func handleRecommendations() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("recommendations")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var recs []domain.Recommendation
		if err := json.Unmarshal([]byte(raw), &recs); err != nil {
			return errorResult(fmt.Sprintf("parsing recommendations: %v", err)), nil
		}
		return jsonResult(consolidate.ConsolidateRecommendations(recs))
	}
}

// newScorer builds a scorer from the working directory's config.
func newScorer(workDir string) (*scoring.Scorer, domain.Config, error) {
	cfg, err := config.New().Load(workDir)
	if err != nil {
		return nil, domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return scoring.FromConfig(cfg), cfg, nil
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
