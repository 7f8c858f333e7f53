// Package result renders assessment outcomes and prediction history
// for the terminal.
package result

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/kriju0726/HealiFy/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

// Render formats one finished assessment run: percentage, risk tier,
// contributing factors and the matching recommendation.
func Render(report application.ResultReport, opts RenderOptions) (string, error) {
	return runRender(func(s styles) string {
		return renderReport(report, opts, s)
	})
}

// RenderHistory formats the fetched assessment history list.
func RenderHistory(report application.HistoryReport, opts RenderOptions) (string, error) {
	return runRender(func(s styles) string {
		return renderHistory(report, opts, s)
	})
}

func renderReport(report application.ResultReport, opts RenderOptions, s styles) string {
	tier := report.Tier()

	lines := []string{
		s.title.Render(fmt.Sprintf("%s Risk Assessment", report.Type.Label())),
		s.header.Render(fmt.Sprintf("captured %s", formatCaptured(report.Result.CapturedAt, opts.Now))),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderRiskBar(report.Result.Percentage, 24, s),
			" ",
			s.detail.Render(fmt.Sprintf("%3d%%", report.Result.Percentage)),
			" ",
			s.tier(tier).Render(tier.Label()),
		),
	}

	if len(report.Result.RiskFactors) > 0 {
		factorLines := []string{s.header.Render("contributing factors")}
		for _, factor := range report.Result.RiskFactors {
			factorLines = append(factorLines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.factorName.Render(fmt.Sprintf("  %-24s", factorLabel(factor.Name))),
				s.factorMeta.Render(fmt.Sprintf("impact %d", factor.Impact)),
			))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, factorLines...)))
	}

	lines = append(lines, s.section.Render(s.detail.Render(tierAdvice(tier))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHistory(report application.HistoryReport, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Assessment History"),
		s.header.Render(fmt.Sprintf("%s, %d assessments", report.Account.Email, len(report.Entries))),
	}

	if len(report.Entries) == 0 {
		lines = append(lines, s.empty.Render("No assessments recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range report.Entries {
		tier := domain.TierFor(entry.Percentage)
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.factorMeta.Render(entry.Date.Format("2006-01-02")),
			"  ",
			s.factorName.Render(fmt.Sprintf("%-14s", entry.Disease.Label())),
			s.detail.Render(fmt.Sprintf("%3d%% ", entry.Percentage)),
			s.tier(tier).Render(tier.Label()),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRiskBar(percentage, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := float64(clampPercent(percentage)) / 100.0
	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func factorLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func formatCaptured(capturedAt, now time.Time) string {
	if capturedAt.IsZero() {
		return "just now"
	}
	if now.IsZero() {
		return capturedAt.Format("2006-01-02 15:04 MST")
	}

	elapsed := now.Sub(capturedAt)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return capturedAt.Format("2006-01-02")
	}
}

func tierAdvice(tier domain.RiskTier) string {
	switch tier {
	case domain.TierLow:
		return "Your risk looks low. Keep up your current habits and reassess periodically."
	case domain.TierModerate:
		return "Your risk is moderate. Consider lifestyle adjustments and monitor your symptoms."
	case domain.TierHigh:
		return "Your risk is high. A consultation with a healthcare professional is recommended."
	default:
		return "Your risk is very high. Please seek medical advice as soon as possible."
	}
}
