package domain

import (
	"fmt"
	"strings"
)

// Default filter thresholds applied when the config leaves them unset.
const (
	DefaultMinScore      = 0.5
	DefaultMinConfidence = 0.3
)

// Config holds project-level configuration loaded from .modsentry.yaml.
// Pointer fields distinguish "not specified" from an explicit zero.
type Config struct {
	Game          string   `yaml:"game"            json:"game,omitempty"`
	RulesPath     string   `yaml:"rules_path"      json:"rules_path,omitempty"`
	RulesRepo     string   `yaml:"rules_repo"      json:"rules_repo,omitempty"`
	MinScore      *float64 `yaml:"min_score"       json:"min_score,omitempty"`
	MinConfidence *float64 `yaml:"min_confidence"  json:"min_confidence,omitempty"`

	// Additions to the scorer's built-in lookup tables.
	Experts          []string `yaml:"experts"           json:"experts,omitempty"`
	TrustedDomains   []string `yaml:"trusted_domains"   json:"trusted_domains,omitempty"`
	OutdatedVersions []string `yaml:"outdated_versions" json:"outdated_versions,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() Config {
	return Config{}
}

// EffectiveMinScore returns the configured minimum overall score,
// falling back to the default threshold.
func (c Config) EffectiveMinScore() float64 {
	if c.MinScore != nil {
		return *c.MinScore
	}
	return DefaultMinScore
}

// EffectiveMinConfidence returns the configured minimum confidence,
// falling back to the default threshold.
func (c Config) EffectiveMinConfidence() float64 {
	if c.MinConfidence != nil {
		return *c.MinConfidence
	}
	return DefaultMinConfidence
}

// Validate checks the config for invalid values and returns a
// descriptive error.
func (c Config) Validate() error {
	if c.MinScore != nil && (*c.MinScore < 0.0 || *c.MinScore > 1.0) {
		return fmt.Errorf("min_score must be between 0.0 and 1.0 (got %.2f)", *c.MinScore)
	}
	if c.MinConfidence != nil && (*c.MinConfidence < 0.0 || *c.MinConfidence > 1.0) {
		return fmt.Errorf("min_confidence must be between 0.0 and 1.0 (got %.2f)", *c.MinConfidence)
	}
	if c.RulesRepo != "" &&
		!strings.HasPrefix(c.RulesRepo, "https://") &&
		!strings.HasPrefix(c.RulesRepo, "git@") &&
		!strings.HasPrefix(c.RulesRepo, "file://") {
		return fmt.Errorf("rules_repo must be an https, git, or file URL (got %q)", c.RulesRepo)
	}
	for i, e := range c.Experts {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("experts[%d] must not be empty", i)
		}
	}
	for i, d := range c.TrustedDomains {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("trusted_domains[%d] must not be empty", i)
		}
	}
	return nil
}
