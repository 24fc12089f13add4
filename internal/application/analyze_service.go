package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/modsentry/modsentry/internal/domain"
	"github.com/modsentry/modsentry/internal/domain/conflict"
	"github.com/modsentry/modsentry/internal/domain/consolidate"
)

// AnalyzeService orchestrates the analysis pipeline:
// parse mod list → load rules → detect conflicts → consolidate → record history.
type AnalyzeService struct {
	parser       domain.ModListParser
	ruleSource   domain.RuleSource
	configLoader domain.ConfigLoader
	history      domain.AnalysisHistory
	detector     *conflict.Detector
	log          zerolog.Logger
}

// NewAnalyzeService wires the analysis pipeline with the standard checks.
func NewAnalyzeService(
	parser domain.ModListParser,
	ruleSource domain.RuleSource,
	configLoader domain.ConfigLoader,
	history domain.AnalysisHistory,
	log zerolog.Logger,
) *AnalyzeService {
	return &AnalyzeService{
		parser:       parser,
		ruleSource:   ruleSource,
		configLoader: configLoader,
		history:      history,
		detector:     conflict.DefaultDetector(),
		log:          log,
	}
}

// AnalyzeModList runs the full pipeline for the mod list at listPath.
// rulesPath overrides the configured rules file when non-empty; workDir is
// where config and history live.
func (s *AnalyzeService) AnalyzeModList(ctx context.Context, listPath, rulesPath, workDir string) (*domain.ConsolidatedResult, error) {
	cfg, err := s.configLoader.Load(workDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if rulesPath == "" {
		rulesPath = cfg.RulesPath
	}
	if rulesPath == "" {
		return nil, fmt.Errorf("no rules file: pass one explicitly or set rules_path in .modsentry.yaml")
	}

	list, err := s.parser.Parse(listPath)
	if err != nil {
		return nil, fmt.Errorf("parsing mod list: %w", err)
	}

	rules, err := s.ruleSource.Load(ctx, rulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	findings := s.detector.Detect(list, rules)
	res := consolidate.ConsolidateConflicts(findings)

	s.log.Info().
		Int("mods", len(list.Entries)).
		Int("findings", res.Summary.TotalItems).
		Int("groups", res.Summary.TotalGroups).
		Str("rules_version", rules.Version).
		Msg("analysis complete")

	// History is best-effort; a failed write never fails the analysis.
	_ = s.history.Save(workDir, domain.AnalysisEntry{
		Timestamp:     time.Now(),
		ModListPath:   listPath,
		ModCount:      len(list.Entries),
		TotalItems:    res.Summary.TotalItems,
		CriticalCount: res.Summary.CriticalCount,
		WarningCount:  res.Summary.WarningCount,
		InfoCount:     res.Summary.InfoCount,
	})

	return res, nil
}
