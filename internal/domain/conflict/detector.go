// Package conflict detects compatibility problems in a mod list by
// evaluating a community rule set against the installed plugins.
package conflict

import (
	"fmt"
	"strings"

	"github.com/modsentry/modsentry/internal/domain"
)

// Check evaluates one class of compatibility problem.
type Check interface {
	Name() string
	Evaluate(list *domain.ModList, rules *domain.RuleSet) []domain.Finding
}

// Detector runs every registered check over a mod list and collects the
// raw findings for consolidation.
type Detector struct {
	checks []Check
}

// NewDetector creates a detector with the given checks.
func NewDetector(checks ...Check) *Detector {
	return &Detector{checks: checks}
}

// DefaultDetector runs the standard checks: incompatibilities, missing
// requirements, load-order violations, and duplicate plugins.
func DefaultDetector() *Detector {
	return NewDetector(
		&IncompatibleCheck{},
		&RequirementCheck{},
		&LoadOrderCheck{},
		&DuplicateCheck{},
	)
}

// Detect returns every finding from every check, in check order.
func (d *Detector) Detect(list *domain.ModList, rules *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	for _, c := range d.checks {
		findings = append(findings, c.Evaluate(list, rules)...)
	}
	return findings
}

// IncompatibleCheck flags rule pairs where both plugins are active.
type IncompatibleCheck struct{}

func (c *IncompatibleCheck) Name() string { return "incompatible" }

func (c *IncompatibleCheck) Evaluate(list *domain.ModList, rules *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	for _, r := range rules.Incompatible {
		if !list.Has(r.A) || !list.Has(r.B) {
			continue
		}
		severity := r.Severity
		if severity == "" {
			severity = string(domain.SeverityCritical)
		}
		msg := fmt.Sprintf("%s conflicts with %s", r.A, r.B)
		if r.Note != "" {
			msg += ": " + r.Note
		}
		findings = append(findings, domain.Finding{
			Severity:    severity,
			AffectedMod: r.A,
			Type:        "incompatible",
			Message:     msg,
		})
	}
	return findings
}

// RequirementCheck flags active mods whose required plugins are missing
// or disabled.
type RequirementCheck struct{}

func (c *RequirementCheck) Name() string { return "missing_requirement" }

func (c *RequirementCheck) Evaluate(list *domain.ModList, rules *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	for _, r := range rules.Requirements {
		if !list.Has(r.Mod) {
			continue
		}
		for _, req := range r.Requires {
			if list.Has(req) {
				continue
			}
			severity := r.Severity
			if severity == "" {
				severity = string(domain.SeverityWarning)
			}
			msg := fmt.Sprintf("%s requires %s, which is not active", r.Mod, req)
			if r.Note != "" {
				msg += " (" + r.Note + ")"
			}
			findings = append(findings, domain.Finding{
				Severity:    severity,
				AffectedMod: r.Mod,
				Type:        "missing_requirement",
				Message:     msg,
			})
		}
	}
	return findings
}

// LoadOrderCheck flags plugins loading before a plugin they must follow.
type LoadOrderCheck struct{}

func (c *LoadOrderCheck) Name() string { return "load_order" }

func (c *LoadOrderCheck) Evaluate(list *domain.ModList, rules *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	for _, r := range rules.LoadOrder {
		li, ai := list.IndexOf(r.Load), list.IndexOf(r.After)
		if li < 0 || ai < 0 || li > ai {
			continue
		}
		msg := fmt.Sprintf("%s must load after %s", r.Load, r.After)
		if r.Note != "" {
			msg += ": " + r.Note
		}
		findings = append(findings, domain.Finding{
			Severity:    string(domain.SeverityWarning),
			AffectedMod: r.Load,
			Type:        "load_order",
			Message:     msg,
		})
	}
	return findings
}

// DuplicateCheck flags plugins listed more than once.
type DuplicateCheck struct{}

func (c *DuplicateCheck) Name() string { return "duplicate" }

func (c *DuplicateCheck) Evaluate(list *domain.ModList, _ *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	seen := make(map[string]bool)
	for _, e := range list.Entries {
		name := strings.ToLower(e.Name)
		if seen[name] {
			findings = append(findings, domain.Finding{
				Severity:    string(domain.SeverityWarning),
				AffectedMod: e.Name,
				Type:        "duplicate",
				Message:     fmt.Sprintf("%s appears more than once in the load order", e.Name),
			})
			continue
		}
		seen[name] = true
	}
	return findings
}
