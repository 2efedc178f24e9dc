package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

// logEnv names a file that receives the local game's log. The terminal
// belongs to the game, so nothing is logged without it.
const logEnv = "HANGMAN_LOG"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in this terminal.

Controls:
  a-z            - Type a letter
  Enter          - Submit the guess
  Ctrl+R         - New word
  Backspace      - New word (when the input is empty)
  Tab            - Toggle help
  Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - 10 chances
  normal - 8 chances
  hard   - 6 chances

Examples:
  hangman play
  hangman play --difficulty easy
  hangman play --pack phrases
  hangman play --config ./my-hangman.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := loadSetup(cmd.Context())
	if err != nil {
		return err
	}

	engine, err := s.newEngine()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if path := os.Getenv(logEnv); path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open %s: %w", logEnv, openErr)
		}
		defer f.Close()

		logger, err = newLogger(f, s.cfg.Log.Level)
		if err != nil {
			return err
		}
		logger.Info("starting local game", "source", s.source, "words", engine.WordCount(), "chances", s.cfg.Chances)
	}

	if err := tui.Run(engine, terminalConfig(), tui.WithSource(s.source), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalConfig sizes the session to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
