// Package rules loads community compatibility rule bundles, either from a
// local YAML file or from a git-hosted masterlist repository.
package rules

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modsentry/modsentry/internal/domain"
)

// Loader implements domain.RuleSource by reading a YAML rule bundle.
// The SHA-256 of the raw file is recorded on the rule set for provenance.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader { return &Loader{} }

// Load reads and validates the rule bundle at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.RuleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var rs domain.RuleSet
	if err := yaml.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if err := validate(&rs); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(raw)
	rs.SHA256 = hex.EncodeToString(sum[:])
	return &rs, nil
}

// validate checks the bundle's structural integrity: a version is required
// and every rule must name the plugins it constrains.
func validate(rs *domain.RuleSet) error {
	if strings.TrimSpace(rs.Version) == "" {
		return errors.New("rules: version is required")
	}
	for i, r := range rs.Incompatible {
		if strings.TrimSpace(r.A) == "" || strings.TrimSpace(r.B) == "" {
			return fmt.Errorf("rules: incompatible[%d] must name both plugins", i)
		}
	}
	for i, r := range rs.Requirements {
		if strings.TrimSpace(r.Mod) == "" {
			return fmt.Errorf("rules: requirements[%d] must name a mod", i)
		}
		if len(r.Requires) == 0 {
			return fmt.Errorf("rules: requirements[%d] (%s) lists nothing required", i, r.Mod)
		}
	}
	for i, r := range rs.LoadOrder {
		if strings.TrimSpace(r.Load) == "" || strings.TrimSpace(r.After) == "" {
			return fmt.Errorf("rules: load_order[%d] must name both plugins", i)
		}
	}
	return nil
}
