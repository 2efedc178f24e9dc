package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func TestGallowsStage(t *testing.T) {
	tests := []struct {
		wrong, max, expected int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{5, 8, 5},
		{8, 8, 8},
		{1, 10, 1},
		{5, 10, 4},
		{10, 10, 8},
		{1, 6, 2},
		{6, 6, 8},
		{3, 0, 0},
		{12, 8, 8},
	}

	for _, tt := range tests {
		if got := GallowsStage(tt.wrong, tt.max); got != tt.expected {
			t.Errorf("GallowsStage(%d, %d) = %d, expected %d", tt.wrong, tt.max, got, tt.expected)
		}
	}
}

func TestDrawGallowsStages(t *testing.T) {
	empty := DrawGallows(0, hangman.InProgress)
	if strings.TrimSpace(empty.String()) != "" {
		t.Errorf("stage 0 should be blank, got:\n%s", empty.String())
	}

	full := DrawGallows(8, hangman.Lost)
	if full.Get(8, 2) != 'O' {
		t.Errorf("head missing at stage 8:\n%s", full.String())
	}
	if full.Get(7, 5) != '/' || full.Get(9, 5) != '\\' {
		t.Errorf("legs missing at stage 8:\n%s", full.String())
	}
	if full.GetCell(8, 2).Color != core.ColorBrightRed {
		t.Error("lost figure should be red")
	}

	partial := DrawGallows(4, hangman.InProgress)
	if partial.Get(8, 1) != '│' {
		t.Error("rope should appear at stage 4")
	}
	if partial.Get(8, 2) != ' ' {
		t.Error("head should not appear before stage 5")
	}
}

func TestDrawGallowsWonColor(t *testing.T) {
	s := DrawGallows(5, hangman.Won)
	if s.GetCell(8, 2).Color != core.ColorBrightGreen {
		t.Error("won figure should be green")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cde", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cde") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

func TestDrawLetterBoard(t *testing.T) {
	v := hangman.ViewState{
		Guessed: []string{"a", "c", "z"},
		Misses:  []string{"z"},
		State:   hangman.InProgress,
	}
	s := DrawLetterBoard(v)

	if s.Get(0, 0) != '┌' || s.Get(s.Width()-1, s.Height()-1) != '┘' {
		t.Errorf("board frame missing:\n%s", s.String())
	}
	if s.Get(2, 1) != 'a' || s.Get(2, 2) != 'n' || s.Get(26, 2) != 'z' {
		t.Errorf("letters misplaced:\n%s", s.String())
	}
	if s.GetCell(2, 1).Color != core.ColorGreen {
		t.Error("hit letter should be green")
	}
	if s.GetCell(26, 2).Color != core.ColorRed {
		t.Error("missed letter should be red")
	}
	if s.GetCell(4, 1).Color != core.ColorDefault {
		t.Error("unguessed letter should be plain")
	}
	if s.GetCell(0, 0).Color != core.ColorYellow {
		t.Error("frame should be highlighted while the round is in progress")
	}
}
