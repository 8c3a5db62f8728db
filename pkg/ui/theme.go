package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Rings
	Langtid      lipgloss.AdaptiveColor
	Planering    lipgloss.AdaptiveColor
	Genomforande lipgloss.AdaptiveColor
	Analys       lipgloss.AdaptiveColor

	// Event types
	Beslut    lipgloss.AdaptiveColor
	Inlamning lipgloss.AdaptiveColor
	Dialog    lipgloss.AdaptiveColor
	Omvarld   lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Base     lipgloss.Style
	Selected lipgloss.Style
	Dimmed   lipgloss.Style
	Header   lipgloss.Style
}

// DefaultTheme returns the standard adaptive theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#1F5FA8", Dark: "#8BE9FD"},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"},

		Langtid:      lipgloss.AdaptiveColor{Light: "#1F5FA8", Dark: "#6699CC"},
		Planering:    lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"},
		Genomforande: lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"},
		Analys:       lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"},

		Beslut:    lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
		Inlamning: lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"},
		Dialog:    lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"},
		Omvarld:   lipgloss.AdaptiveColor{Light: "#808000", Dark: "#F1FA8C"},

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Dimmed = r.NewStyle().Foreground(t.Muted).Faint(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	return t
}

func (t Theme) RingColor(ring model.Ring) lipgloss.AdaptiveColor {
	switch ring {
	case model.RingLangtidsplanering:
		return t.Langtid
	case model.RingPlanering:
		return t.Planering
	case model.RingGenomforandeOchUppfoljning:
		return t.Genomforande
	case model.RingUppfoljningOchAnalys:
		return t.Analys
	default:
		return t.Subtext
	}
}

func (t Theme) TypeIcon(typ model.EventType) (string, lipgloss.AdaptiveColor) {
	switch typ {
	case model.TypeBeslut:
		return "◆", t.Beslut
	case model.TypeInlamning:
		return "▣", t.Inlamning
	case model.TypeDialogGemensam:
		return "◉", t.Dialog
	case model.TypeDialogEnskild:
		return "○", t.Dialog
	case model.TypeOmvarldsanalys:
		return "▲", t.Omvarld
	default:
		return "•", t.Subtext
	}
}
