package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a word pack interactively, then play",
	Long: `Shows the built-in word packs. Selecting one starts a game in this
terminal, the same as 'hangman play --pack <id>'.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	selected, _, err := tui.RunMenu(terminalConfig())
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}

	// User pressed quit
	if selected == nil {
		return nil
	}

	flagPack = selected.PackID
	flagWordsFile = ""
	flagWordsDB = ""
	return runPlay(cmd, nil)
}
