// Package consolidate transforms flat finding, search-result, and
// recommendation lists into structured, severity-ranked views for display.
// Every function here is a pure computation over its input; malformed or
// missing fields resolve to documented defaults and never raise errors.
package consolidate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/modsentry/modsentry/internal/domain"
)

// typeTitles maps known finding types to display titles. Types outside the
// table get a generated "<Type> - <Mod>" title.
var typeTitles = map[string]string{
	"incompatible":        "Incompatible Mods",
	"missing_requirement": "Missing Requirements",
	"load_order":          "Load Order Issues",
	"duplicate":           "Duplicate Plugins",
	"patch_needed":        "Patch Needed",
	"version_mismatch":    "Version Mismatch",
	"general":             "General Issues",
}

// ConsolidateConflicts groups findings by affected mod and issue type,
// ranks the groups by severity and size, and derives the quick-view digest.
// Guarantees: severity counts partition the input exactly, every finding
// lands in exactly one group, and an empty input yields a zero-valued
// result rather than an error.
func ConsolidateConflicts(findings []domain.Finding) *domain.ConsolidatedResult {
	res := &domain.ConsolidatedResult{Groups: []domain.ConsolidatedGroup{}}
	res.Summary.TotalItems = len(findings)

	index := make(map[string]int)
	for _, f := range findings {
		switch f.Tier() {
		case domain.SeverityCritical:
			res.Summary.CriticalCount++
		case domain.SeverityWarning:
			res.Summary.WarningCount++
		default:
			res.Summary.InfoCount++
		}

		key := f.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(res.Groups)
			index[key] = i
			res.Groups = append(res.Groups, domain.ConsolidatedGroup{
				Key:      key,
				Title:    titleFor(f),
				Severity: f.Tier(), // first-seen severity names the group
			})
		}
		res.Groups[i].Items = append(res.Groups[i].Items, f)
		res.Groups[i].Count++
	}
	res.Summary.TotalGroups = len(res.Groups)

	// Severity rank ascending, then descending size. Stable sort keeps
	// insertion order for groups tied on both.
	sort.SliceStable(res.Groups, func(i, j int) bool {
		gi, gj := res.Groups[i], res.Groups[j]
		if gi.Severity.Rank() != gj.Severity.Rank() {
			return gi.Severity.Rank() < gj.Severity.Rank()
		}
		return gi.Count > gj.Count
	})

	res.QuickView = buildQuickView(res)

	// Surface at most MaxGroupItems findings per group.
	for i := range res.Groups {
		if len(res.Groups[i].Items) > domain.MaxGroupItems {
			res.Groups[i].Items = res.Groups[i].Items[:domain.MaxGroupItems]
			res.Groups[i].HasMore = true
		}
	}

	return res
}

func buildQuickView(res *domain.ConsolidatedResult) domain.QuickView {
	s := res.Summary
	if s.TotalItems == 0 {
		return domain.QuickView{Message: "No issues found. Your mod list looks clean."}
	}

	var parts []string
	if s.CriticalCount > 0 {
		parts = append(parts, plural(s.CriticalCount, "critical issue"))
	}
	if s.WarningCount > 0 {
		parts = append(parts, plural(s.WarningCount, "warning"))
	}
	if s.InfoCount > 0 {
		parts = append(parts, plural(s.InfoCount, "informational item"))
	}

	qv := domain.QuickView{
		Message: "Found " + strings.Join(parts, ", ") + ".",
	}

	if len(res.Groups) > 0 {
		top := res.Groups[0]
		qv.PriorityAction = fmt.Sprintf("Start with %s (%s).", top.Title, plural(top.Count, "item"))
	}

	seen := make(map[string]struct{})
	for _, g := range res.Groups {
		for _, f := range g.Items {
			seen[f.Mod()] = struct{}{}
		}
	}
	qv.AffectedMods = len(seen)

	return qv
}

func titleFor(f domain.Finding) string {
	if title, ok := typeTitles[f.Kind()]; ok {
		return title
	}
	return humanize(f.Kind()) + " - " + humanize(trimPluginExt(f.Mod()))
}

// humanize turns identifiers like "scriptLatency" or "missing_patch"
// into display words.
func humanize(s string) string {
	var words []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}) {
		words = append(words, camelcase.Split(part)...)
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func trimPluginExt(name string) string {
	for _, ext := range []string{".esp", ".esm", ".esl"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
