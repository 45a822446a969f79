package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
	"github.com/FranderUC/lol-itemset-id-fixer/internal/i18n"
)

// ── Warm amber palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
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

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	championStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	idStyle       = lipgloss.NewStyle().Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderRunResult renders a full run report as a styled TUI string.
func RenderRunResult(result *domain.RunResult, applied bool, p *i18n.Printer) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("itemsetfix")
	subtitle := dimStyle.Render(p.T("report.title", nil))
	mode := p.T("report.mode.dry_run", nil)
	if applied {
		mode = p.T("report.mode.apply", nil)
	}
	modeStyled := lipgloss.NewStyle().Bold(true).Foreground(modeColor(applied)).Render(mode)
	rootLine := dimStyle.Render(result.Root)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + modeStyled + "\n" + rootLine))
	b.WriteString("\n\n")

	// ── Changes grouped by champion ──
	groups := domain.GroupChanges(result.Changes)
	if len(groups) > 0 {
		b.WriteString("  " + titleStyle.Render(p.T("report.changes_header", map[string]any{"MapCode": result.MapCode})) + "\n\n")
		for _, group := range groups {
			renderChampion(&b, group)
		}
	} else {
		b.WriteString("  " + dimStyle.Render(p.T("report.no_changes", nil)) + "\n")
	}

	// ── Skipped and failed files ──
	if skipped := result.Skipped(); len(skipped) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + warnStyle.Render(p.T("report.warnings", nil)) + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(skipped))) + "\n")
		for _, f := range skipped {
			icon := warnStyle.Render("●")
			if f.Outcome == domain.OutcomeWriteFailed {
				icon = failStyle.Render("●")
			}
			fmt.Fprintf(&b, "    %s %s  %s\n", icon, dimStyle.Render(f.Path), faintStyle.Render(f.Reason))
		}
	}

	// ── Detected champions ──
	if len(result.Champions) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + dimStyle.Render(p.T("report.detected", map[string]any{
			"MapCode": result.MapCode,
			"List":    strings.Join(result.Champions, ", "),
		})) + "\n")
	}

	// ── Summary ──
	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")
	b.WriteString("  " + titleStyle.Render(p.T("report.summary", map[string]any{
		"Scanned":  result.FilesScanned,
		"MapCode":  result.MapCode,
		"Eligible": result.EligibleFiles,
		"Modified": result.FilesModified,
		"IDs":      result.IDsReplaced,
	})) + "\n")

	notice := p.T("report.dry_run_notice", nil)
	noticeStyle := warnStyle
	if applied {
		notice = p.T("report.applied_notice", nil)
		noticeStyle = passStyle
	}
	b.WriteString("  " + noticeStyle.Render(notice) + "\n")

	return b.String()
}

func renderChampion(b *strings.Builder, group domain.ChampionChanges) {
	b.WriteString("  " + championStyle.Render(group.DisplayName) + "\n")
	for _, item := range group.Items {
		ids := idStyle.Render(fmt.Sprintf("%d→%d", item.OldID, item.NewID))
		line := fmt.Sprintf("    %s %s / %s  (%s)",
			passStyle.Render("●"),
			item.NameES,
			item.NameEN,
			ids,
		)
		if item.Count != 1 {
			line += "  " + dimStyle.Render(fmt.Sprintf("x%d", item.Count))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// RenderMappings lists the active mapping table.
func RenderMappings(entries []domain.ItemMapping, p *i18n.Printer) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(p.T("mappings.header", nil)) + "\n")
	b.WriteString("  " + faintStyle.Render(p.T("mappings.columns", nil)) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	for _, m := range entries {
		fmt.Fprintf(&b, "  %s  %s / %s\n",
			idStyle.Render(fmt.Sprintf("%5d → %6d", m.OldID, m.NewID)),
			m.NameES,
			dimStyle.Render(m.NameEN),
		)
	}
	return b.String()
}

// RenderHistory formats past run summaries for terminal output.
func RenderHistory(entries []domain.RunEntry, p *i18n.Printer) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render(p.T("history.empty", nil)) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(p.T("history.header", nil)) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		mode := p.T("history.dry_run", nil)
		modeStyled := warnStyle.Render(mode)
		if e.Applied {
			mode = p.T("history.applied", nil)
			modeStyled = passStyle.Render(mode)
		}

		fmt.Fprintf(&b, "  %s  %s  %s\n",
			dimStyle.Render(ts),
			modeStyled,
			fmt.Sprintf("files=%d changed=%d ids=%d", e.FilesScanned, e.FilesModified, e.IDsReplaced),
		)
	}

	return b.String()
}

func modeColor(applied bool) lipgloss.Color {
	if applied {
		return success
	}
	return warning
}
