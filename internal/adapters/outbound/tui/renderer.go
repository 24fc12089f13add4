package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modsentry/modsentry/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	critTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a consolidated conflict report for the terminal.
func RenderReport(res *domain.ConsolidatedResult) string {
	var b strings.Builder

	// ── Header box with quick view ──
	title := headerStyle.Render("modsentry")
	subtitle := dimStyle.Render("Mod List Analysis")
	message := messageStyle(res).Render(res.QuickView.Message)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + message))
	b.WriteString("\n\n")

	if res.Summary.TotalItems == 0 {
		return b.String()
	}

	// ── Severity tallies ──
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if n := res.Summary.CriticalCount; n > 0 {
		b.WriteString(critTagStyle.Render(fmt.Sprintf("%d critical", n)))
		b.WriteString("  ")
	}
	if n := res.Summary.WarningCount; n > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", n)))
		b.WriteString("  ")
	}
	if n := res.Summary.InfoCount; n > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", n)))
	}
	b.WriteString("\n\n")

	// ── Groups ──
	for _, g := range res.Groups {
		renderGroup(&b, g)
	}

	b.WriteString("  " + separatorLine + "\n")
	if res.QuickView.PriorityAction != "" {
		b.WriteString("  " + titleStyle.Render("Next: ") + dimStyle.Render(res.QuickView.PriorityAction) + "\n")
	}
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d mods affected", res.QuickView.AffectedMods)) + "\n")

	return b.String()
}

func renderGroup(b *strings.Builder, g domain.ConsolidatedGroup) {
	tag := severityTag(g.Severity)
	count := dimStyle.Render(fmt.Sprintf("(%d)", g.Count))
	fmt.Fprintf(b, "  %s %s %s\n", tag, titleStyle.Render(g.Title), count)

	for _, item := range g.Items {
		fmt.Fprintf(b, "      %s\n", dimStyle.Render(item.Message))
	}
	if g.HasMore {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(fmt.Sprintf("… and %d more", g.Count-len(g.Items))))
	}
	b.WriteString("\n")
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return critTagStyle.Render("crit ")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func messageStyle(res *domain.ConsolidatedResult) lipgloss.Style {
	switch {
	case res.Summary.CriticalCount > 0:
		return lipgloss.NewStyle().Bold(true).Foreground(danger)
	case res.Summary.WarningCount > 0:
		return lipgloss.NewStyle().Bold(true).Foreground(warning)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(success)
	}
}

// RenderSources formats a scored source list, best first.
func RenderSources(sources []domain.ScoredSource) string {
	if len(sources) == 0 {
		return "  " + dimStyle.Render("No sources met the reliability thresholds.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Scored Sources") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, s := range sources {
		score := lipgloss.NewStyle().
			Bold(true).
			Foreground(trustColor(s.Score.Overall)).
			Render(fmt.Sprintf("%.2f", s.Score.Overall))

		label := s.Source.URL
		if label == "" {
			label = s.Source.Title
		}
		if label == "" {
			label = "(unnamed source)"
		}

		fmt.Fprintf(&b, "  %s %s  %s\n",
			score,
			dimStyle.Render(fmt.Sprintf("conf %.2f", s.Score.Confidence)),
			label,
		)
		if len(s.Score.Flags) > 0 {
			fmt.Fprintf(&b, "        %s\n", faintStyle.Render(strings.Join(s.Score.Flags, ", ")))
		}
	}

	return b.String()
}

// RenderHistory formats past analysis runs for the terminal.
func RenderHistory(entries []domain.AnalysisEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No analysis history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Analysis History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		line := fmt.Sprintf("  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			fmt.Sprintf("%d mods", e.ModCount),
			severityCounts(e),
		)

		if i > 0 {
			diff := e.TotalItems - entries[i-1].TotalItems
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + critTagStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func severityCounts(e domain.AnalysisEntry) string {
	return fmt.Sprintf("%s %s %s",
		critTagStyle.Render(fmt.Sprintf("%dc", e.CriticalCount)),
		warnTagStyle.Render(fmt.Sprintf("%dw", e.WarningCount)),
		infoTagStyle.Render(fmt.Sprintf("%di", e.InfoCount)),
	)
}

func trustColor(overall float64) lipgloss.Color {
	switch domain.TrustLevel(overall) {
	case "high":
		return success
	case "moderate":
		return lipgloss.Color("#A3E635") // lime
	case "low":
		return warning
	default:
		return danger
	}
}
