package viz

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from one theme. The page owns
// a single instance and every widget renders through it, so switching theme
// restyles everything on the next frame.
type Styles struct {
	Theme Theme

	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Panel       lipgloss.Style
	Focused     lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Tag         lipgloss.Style
	Chip        lipgloss.Style
	ActiveChip  lipgloss.Style
	StatusOn    lipgloss.Style
	StatusOff   lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	FooterLink  lipgloss.Style
	LegendPos   lipgloss.Style
	LegendNeg   lipgloss.Style
	Placeholder lipgloss.Style
}

func NewStyles(t Theme) *Styles {
	s := &Styles{}
	s.Apply(t)
	return s
}

// Apply rebuilds every style in place from t.
func (s *Styles) Apply(t Theme) {
	s.Theme = t
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	s.Text = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.Muted)
	s.Label = lipgloss.NewStyle().Foreground(t.Muted).Width(12)
	s.Value = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	s.Focused = s.Panel.BorderForeground(t.Accent)
	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2).
		MarginBottom(1)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(t.Text).MarginBottom(1)
	s.Tag = lipgloss.NewStyle().Foreground(t.Muted).Background(t.Border).Padding(0, 1)
	s.Chip = lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
	s.ActiveChip = lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Accent).Padding(0, 1)
	s.StatusOn = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	s.StatusOff = lipgloss.NewStyle().Bold(true).Foreground(t.Subtle)
	s.Header = lipgloss.NewStyle().Bold(true).Foreground(t.Text).PaddingTop(1).MarginBottom(1)
	s.Footer = lipgloss.NewStyle().MarginTop(2)
	s.FooterLink = lipgloss.NewStyle().Foreground(t.Subtle)
	s.LegendPos = lipgloss.NewStyle().Foreground(t.Positive)
	s.LegendNeg = lipgloss.NewStyle().Foreground(t.Negative)
	s.Placeholder = lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
}
