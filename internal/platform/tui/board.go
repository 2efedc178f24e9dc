package tui

import (
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

const (
	boardAlphabet = "abcdefghijklmnopqrstuvwxyz"
	boardPerRow   = 13
)

// DrawLetterBoard draws the a-z letters in a box. Hits are green, misses red
// and unguessed letters plain.
func DrawLetterBoard(v hangman.ViewState) *core.Screen {
	rows := (len(boardAlphabet) + boardPerRow - 1) / boardPerRow
	frame := core.NewRect(0, 0, boardPerRow*2+3, rows+2)
	s := core.NewScreen(frame.W, frame.H)

	frameColor := core.ColorGray
	if v.State == hangman.InProgress {
		frameColor = core.ColorYellow
	}
	s.DrawBox(frame, frameColor)

	missed := make(map[string]bool, len(v.Misses))
	for _, l := range v.Misses {
		missed[l] = true
	}
	guessed := make(map[string]bool, len(v.Guessed))
	for _, l := range v.Guessed {
		guessed[l] = true
	}

	for i, r := range boardAlphabet {
		letter := string(r)
		c := core.ColorDefault
		switch {
		case missed[letter]:
			c = core.ColorRed
		case guessed[letter]:
			c = core.ColorGreen
		}
		s.SetColored(2+(i%boardPerRow)*2, 1+i/boardPerRow, r, c)
	}
	return s
}
