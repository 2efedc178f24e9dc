// hangman is a word-guessing game for the terminal, SSH and the browser.
//
// Usage:
//
//	hangman play             - Play in this terminal
//	hangman packs            - List word packs (and database categories)
//	hangman menu             - Pick a word pack interactively, then play
//	hangman serve            - Start SSH server for remote play
//	hangman web              - Start the browser front end
//
// Global flags:
//
//	--config <path>       - Config file (default: search ~/.hangman/configs, ./configs)
//	--difficulty <name>   - easy, normal or hard
//	--chances <n>         - Wrong guesses allowed per round
//	--seed <value>        - RNG seed for reproducible word selection
//	--pack <id>           - Embedded word pack
//	--words <path>        - Word file (.txt or .yaml)
//	--words-db <path>     - SQLite word database, opened read-only
//	--category <name>     - Category within --words-db
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagChances    int
	flagSeed       int64
	flagPack       string
	flagWordsFile  string
	flagWordsDB    string
	flagCategory   string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the figure is drawn",
	Long: `Hangman picks a secret word and shows it as a row of blanks. Guess one
letter at a time; every wrong letter costs a chance and adds a part to the
gallows. Reveal every letter before the chances run out.

Available commands:
  play     - Play in this terminal
  packs    - Show the built-in word packs
  menu     - Pick a pack interactively, then play
  serve    - Start SSH server for remote play
  web      - Start the browser front end

Examples:
  hangman play
  hangman play --difficulty hard --pack animals
  hangman play --words ./words.txt
  hangman play --words-db ./words.db --category animals
  hangman serve --ssh :2222 --web :8080
  hangman web --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagChances, "chances", 0, "Wrong guesses allowed per round (overrides difficulty)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagPack, "pack", "", "Embedded word pack (see 'hangman packs')")
	pf.StringVar(&flagWordsFile, "words", "", "Word file, one entry per line or YAML with a words key")
	pf.StringVar(&flagWordsDB, "words-db", "", "SQLite word database (opened read-only)")
	pf.StringVar(&flagCategory, "category", "", "Word category inside --words-db")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}
