package result

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kriju0726/HealiFy/internal/domain"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	detail     lipgloss.Style
	empty      lipgloss.Style
	section    lipgloss.Style
	factorName lipgloss.Style
	factorMeta lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	tierLow    lipgloss.Style
	tierMod    lipgloss.Style
	tierHigh   lipgloss.Style
	tierVery   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Faint(true),
		section:    lipgloss.NewStyle().MarginTop(1),
		factorName: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		factorMeta: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		tierLow:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		tierMod:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		tierHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		tierVery:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func (s styles) tier(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.TierLow:
		return s.tierLow
	case domain.TierModerate:
		return s.tierMod
	case domain.TierHigh:
		return s.tierHigh
	default:
		return s.tierVery
	}
}
