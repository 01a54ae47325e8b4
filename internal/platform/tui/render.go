package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGrass:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorAsphalt:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
	core.ColorCurb:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("236")),
	core.ColorWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorStartLine: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
	core.ColorCar:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorCarBoost:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCrash:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorBanner:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
