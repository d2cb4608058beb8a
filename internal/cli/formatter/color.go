package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Text drawn on a pastel column background.
const onColumnForeground = "#000000"

// ColumnStyle converts a summary column style into a lipgloss style. A
// background without an explicit foreground gets black text so the light
// boss colours stay readable on dark terminals.
func ColumnStyle(cs domain.ColumnStyle) lipgloss.Style {
	s := lipgloss.NewStyle()
	if cs.Background != "" {
		s = s.Background(lipgloss.Color(cs.Background))
		if cs.Foreground == "" {
			s = s.Foreground(lipgloss.Color(onColumnForeground))
		}
	}
	if cs.Foreground != "" {
		s = s.Foreground(lipgloss.Color(cs.Foreground))
	}
	if cs.Bold {
		s = s.Bold(true)
	}
	return s
}

// BossStyle is the tab and swatch style for a boss.
func BossStyle(b domain.BossDefinition) lipgloss.Style {
	return ColumnStyle(domain.ColumnStyle{Background: b.Color, Bold: true})
}

// Swatch renders a small block of the boss colour followed by its hex value.
func Swatch(b domain.BossDefinition) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(b.Color)).Render("  ")
	return block + " " + b.Color
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
