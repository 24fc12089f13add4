package domain

import "strings"

// Severity is the normalized tier of a finding: critical, warning, or info.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// severityAliases maps free-text severity labels from heterogeneous rule
// sources to one of the three tiers. Unrecognized labels fall back to info.
var severityAliases = map[string]Severity{
	"critical": SeverityCritical,
	"error":    SeverityCritical,
	"fatal":    SeverityCritical,
	"severe":   SeverityCritical,
	"blocker":  SeverityCritical,
	"high":     SeverityCritical,
	"warning":  SeverityWarning,
	"warn":     SeverityWarning,
	"caution":  SeverityWarning,
	"moderate": SeverityWarning,
	"medium":   SeverityWarning,
	"info":     SeverityInfo,
	"note":     SeverityInfo,
	"notice":   SeverityInfo,
	"low":      SeverityInfo,
	"minor":    SeverityInfo,
}

// NormalizeSeverity maps a free-text severity label to a tier.
// Unknown or empty labels normalize to info.
func NormalizeSeverity(label string) Severity {
	if tier, ok := severityAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return tier
	}
	return SeverityInfo
}

// Rank orders severities for sorting: critical first, info last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

const (
	// DefaultAffectedMod is used when a finding names no mod.
	DefaultAffectedMod = "Unknown"
	// DefaultFindingType is used when a finding carries no type.
	DefaultFindingType = "general"
)

// Finding represents a single detected issue about a mod list: a conflict,
// a missing requirement, or a load-order problem. All fields are optional;
// accessors apply the documented defaults.
type Finding struct {
	Severity    string `json:"severity,omitempty"`
	AffectedMod string `json:"affected_mod,omitempty"`
	Type        string `json:"type,omitempty"`
	Message     string `json:"message,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// Tier returns the normalized severity tier of the finding.
func (f Finding) Tier() Severity { return NormalizeSeverity(f.Severity) }

// Mod returns the affected mod name, defaulting to "Unknown".
func (f Finding) Mod() string {
	if strings.TrimSpace(f.AffectedMod) == "" {
		return DefaultAffectedMod
	}
	return f.AffectedMod
}

// Kind returns the finding type, defaulting to "general".
func (f Finding) Kind() string {
	if strings.TrimSpace(f.Type) == "" {
		return DefaultFindingType
	}
	return f.Type
}

// GroupKey is the composite key findings are consolidated under.
func (f Finding) GroupKey() string { return f.Mod() + "." + f.Kind() }

// ParseFinding converts a loosely-typed record into a Finding.
// Missing or mistyped fields are left at their zero value; the accessors
// above supply the defaults.
func ParseFinding(raw map[string]any) Finding {
	f := Finding{
		Severity:    stringField(raw, "severity"),
		AffectedMod: stringField(raw, "affected_mod"),
		Type:        stringField(raw, "type"),
		Message:     stringField(raw, "message"),
		Reference:   stringField(raw, "reference"),
	}
	if f.Message == "" {
		f.Message = stringField(raw, "content")
	}
	return f
}

// MaxGroupItems caps how many findings a group surfaces in the report.
const MaxGroupItems = 5

// ConsolidatedGroup is one category of related findings, keyed by
// affected mod and finding type. Severity reflects the tier of the finding
// that created the group.
type ConsolidatedGroup struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Severity Severity  `json:"severity"`
	Count    int       `json:"count"`
	Items    []Finding `json:"items"`
	HasMore  bool      `json:"has_more"`
}

// Summary holds the headline counts of a consolidation run. The severity
// counts partition TotalItems exactly.
type Summary struct {
	TotalItems    int `json:"total_items"`
	TotalGroups   int `json:"total_groups"`
	CriticalCount int `json:"critical_count"`
	WarningCount  int `json:"warning_count"`
	InfoCount     int `json:"info_count"`
}

// QuickView is the bounded human-readable digest of a report.
type QuickView struct {
	Message        string `json:"message"`
	PriorityAction string `json:"priority_action"`
	AffectedMods   int    `json:"affected_mods"`
}

// ConsolidatedResult is the full grouped, severity-ranked report for one
// analysis run. Groups are ordered by severity rank, then descending size,
// then insertion order.
type ConsolidatedResult struct {
	Summary   Summary             `json:"summary"`
	QuickView QuickView           `json:"quick_view"`
	Groups    []ConsolidatedGroup `json:"groups"`
}

// SearchResult is one entry of a compatibility search, consolidated for
// display. Score and Category are optional.
type SearchResult struct {
	Title    string  `json:"title,omitempty"`
	URL      string  `json:"url,omitempty"`
	Score    float64 `json:"score,omitempty"`
	Category string  `json:"category,omitempty"`
	Snippet  string  `json:"snippet,omitempty"`
}

const (
	// DefaultResultCategory buckets search results with no category.
	DefaultResultCategory = "other"
	// DefaultRecommendationPriority buckets recommendations with no priority.
	DefaultRecommendationPriority = "normal"
	// DefaultRecommendationCategory buckets recommendations with no category.
	DefaultRecommendationCategory = "general"
)

// Recommendation is a suggested fix or install step surfaced to the user.
type Recommendation struct {
	Message  string `json:"message,omitempty"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
	Mod      string `json:"mod,omitempty"`
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}
