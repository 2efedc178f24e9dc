package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	wordStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// statusStyle picks the style of the status line from the last outcome.
func statusStyle(v hangman.ViewState) lipgloss.Style {
	switch {
	case v.State == hangman.Won:
		return wonStyle
	case v.State == hangman.Lost:
		return lostStyle
	case v.LastOutcome == hangman.OutcomeHit:
		return hitStyle
	case v.LastOutcome == hangman.OutcomeMiss:
		return missStyle
	default:
		return dimStyle
	}
}

