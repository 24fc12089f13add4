package domain

import (
	"context"
	"time"
)

// ModListParser reads a mod list file (plugins.txt or JSON manifest)
// into a ModList.
type ModListParser interface {
	Parse(path string) (*ModList, error)
}

// RuleSource loads a compatibility rule bundle.
type RuleSource interface {
	Load(ctx context.Context, path string) (*RuleSet, error)
}

// KnowledgeStore persists scored sources for later consultation.
type KnowledgeStore interface {
	SaveSource(ctx context.Context, s ScoredSource) error
	ListSources(ctx context.Context, minScore float64) ([]ScoredSource, error)
}

// AnalysisEntry is one line of the analysis history.
type AnalysisEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	ModListPath   string    `json:"modlist_path"`
	ModCount      int       `json:"mod_count"`
	TotalItems    int       `json:"total_items"`
	CriticalCount int       `json:"critical_count"`
	WarningCount  int       `json:"warning_count"`
	InfoCount     int       `json:"info_count"`
}

// AnalysisHistory records past analysis runs for a working directory.
type AnalysisHistory interface {
	Save(dir string, entry AnalysisEntry) error
	Load(dir string) ([]AnalysisEntry, error)
}

// ConfigLoader reads project configuration from a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
