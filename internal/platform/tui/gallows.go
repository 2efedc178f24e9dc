package tui

import (
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Gallows drawing dimensions.
const (
	gallowsW      = 12
	gallowsH      = 8
	gallowsStages = 8 // Stage 8 is the complete figure
)

// GallowsStage maps wrong guesses to a drawing stage in [0, gallowsStages].
// With the default 8 chances every miss adds one part; other chance counts
// are scaled, rounding up so the first miss always shows.
func GallowsStage(wrong, maxChances int) int {
	if maxChances <= 0 || wrong <= 0 {
		return 0
	}
	stage := (wrong*gallowsStages + maxChances - 1) / maxChances
	return core.Clamp(stage, 0, gallowsStages)
}

// DrawGallows draws the gallows for a stage. The figure turns green when the
// round is won and red when it is lost.
func DrawGallows(stage int, state hangman.RoundState) *core.Screen {
	s := core.NewScreen(gallowsW, gallowsH)

	frame := core.ColorGray
	figure := core.ColorWhite
	switch state {
	case hangman.Won:
		figure = core.ColorBrightGreen
	case hangman.Lost:
		figure = core.ColorBrightRed
	}

	if stage >= 1 {
		s.DrawHLine(0, 7, 10, '═', frame)
	}
	if stage >= 2 {
		s.DrawVLine(2, 1, 6, '│', frame)
	}
	if stage >= 3 {
		s.SetColored(2, 0, '┌', frame)
		s.DrawHLine(3, 0, 5, '─', frame)
		s.SetColored(8, 0, '┐', frame)
	}
	if stage >= 4 {
		s.SetColored(8, 1, '│', frame)
	}
	if stage >= 5 {
		s.SetColored(8, 2, 'O', figure)
	}
	if stage >= 6 {
		s.DrawVLine(8, 3, 2, '│', figure)
	}
	if stage >= 7 {
		s.SetColored(7, 3, '/', figure)
		s.SetColored(9, 3, '\\', figure)
	}
	if stage >= 8 {
		s.SetColored(7, 5, '/', figure)
		s.SetColored(9, 5, '\\', figure)
	}

	return s
}
