package domain

import "strings"

// ModEntry is one plugin in a load order. Index is the position in the
// original list, which is the position the game loads it at.
type ModEntry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Index   int    `json:"index"`
}

// ModList is an ordered list of installed plugins for one game.
type ModList struct {
	Game    string     `json:"game,omitempty"`
	Entries []ModEntry `json:"entries"`
}

// Enabled returns the active entries in load order.
func (m *ModList) Enabled() []ModEntry {
	var out []ModEntry
	for _, e := range m.Entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether the named plugin is present and enabled.
// Plugin names compare case-insensitively, matching game behavior.
func (m *ModList) Has(name string) bool {
	return m.IndexOf(name) >= 0
}

// IndexOf returns the load-order index of the named enabled plugin,
// or -1 when absent.
func (m *ModList) IndexOf(name string) int {
	for _, e := range m.Entries {
		if e.Enabled && strings.EqualFold(e.Name, name) {
			return e.Index
		}
	}
	return -1
}

// RuleSet is a versioned bundle of community compatibility rules for one
// game: known incompatibilities, requirements, and load-order constraints.
type RuleSet struct {
	Version      string             `yaml:"version" json:"version"`
	Game         string             `yaml:"game" json:"game,omitempty"`
	Incompatible []IncompatibleRule `yaml:"incompatible" json:"incompatible,omitempty"`
	Requirements []RequirementRule  `yaml:"requirements" json:"requirements,omitempty"`
	LoadOrder    []OrderRule        `yaml:"load_order" json:"load_order,omitempty"`
	SHA256       string             `yaml:"-" json:"sha256,omitempty"`
}

// IncompatibleRule declares that two plugins must not be active together.
type IncompatibleRule struct {
	A        string `yaml:"a" json:"a"`
	B        string `yaml:"b" json:"b"`
	Severity string `yaml:"severity" json:"severity,omitempty"`
	Note     string `yaml:"note" json:"note,omitempty"`
}

// RequirementRule declares plugins that must accompany a mod.
type RequirementRule struct {
	Mod      string   `yaml:"mod" json:"mod"`
	Requires []string `yaml:"requires" json:"requires"`
	Severity string   `yaml:"severity" json:"severity,omitempty"`
	Note     string   `yaml:"note" json:"note,omitempty"`
}

// OrderRule declares that Load must come after After in the load order.
type OrderRule struct {
	Load  string `yaml:"load" json:"load"`
	After string `yaml:"after" json:"after"`
	Note  string `yaml:"note" json:"note,omitempty"`
}
