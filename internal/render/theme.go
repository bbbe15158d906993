// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// palette holds the raw colours of one theme.
type palette struct {
	Text, Muted, Accent, Border lipgloss.Color

	Good, Fair, Warn, Poor, Bad lipgloss.Color
	Novel, Unknown              lipgloss.Color
}

var (
	lightPalette = palette{
		Text: "#1e293b", Muted: "#64748b", Accent: "#3730a3", Border: "#cbd5e1",
		Good: "#16a34a", Fair: "#0284c7", Warn: "#ca8a04", Poor: "#ea580c", Bad: "#dc2626",
		Novel: "#9333ea", Unknown: "#94a3b8",
	}
	darkPalette = palette{
		Text: "#e2e8f0", Muted: "#94a3b8", Accent: "#a5b4fc", Border: "#334155",
		Good: "#22c55e", Fair: "#0ea5e9", Warn: "#eab308", Poor: "#f97316", Bad: "#ef4444",
		Novel: "#a855f7", Unknown: "#64748b",
	}
)

// Theme holds ready-to-use styles.
type Theme struct {
	Name types.Theme

	colors palette

	Panel    lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Text     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
	Quote    lipgloss.Style
}

// NewTheme returns the styles for name. Unknown names get the light theme.
func NewTheme(name types.Theme) Theme {
	c := lightPalette
	if name == types.ThemeDark {
		c = darkPalette
	} else {
		name = types.ThemeLight
	}

	return Theme{
		Name:   name,
		colors: c,
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(c.Accent),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(c.Muted),
		Text:     lipgloss.NewStyle().Foreground(c.Text),
		Emphasis: lipgloss.NewStyle().Bold(true).Foreground(c.Text),
		Muted:    lipgloss.NewStyle().Foreground(c.Muted),
		Quote:    lipgloss.NewStyle().Italic(true).Foreground(c.Muted).PaddingLeft(2),
	}
}

// gradeColor bands a 0-100 grade.
func (t Theme) gradeColor(grade int) lipgloss.Color {
	switch {
	case grade >= 90:
		return t.colors.Good
	case grade >= 80:
		return t.colors.Fair
	case grade >= 70:
		return t.colors.Warn
	case grade >= 60:
		return t.colors.Poor
	}
	return t.colors.Bad
}

func (t Theme) statusColor(s types.ViabilityStatus) lipgloss.Color {
	switch s {
	case types.WiseChoice:
		return t.colors.Good
	case types.CautionAdvised:
		return t.colors.Warn
	case types.NovelOpportunity:
		return t.colors.Novel
	}
	return t.colors.Unknown
}
