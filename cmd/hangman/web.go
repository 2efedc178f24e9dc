package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the browser front end",
	Long: `Start an HTTP server with a browser version of the game.

Routes:
  GET /         - The game page
  GET /ws       - WebSocket command channel
  GET /healthz  - Health check

Each browser tab gets its own game.

Examples:
  hangman web
  hangman web --addr :9000 --pack phrases`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP server address (host:port)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	s, err := loadSetup(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, s.cfg.Log.Level)
	if err != nil {
		return err
	}

	addr := s.cfg.Web.Address
	if flagWebAddr != "" {
		addr = flagWebAddr
	}

	srv, err := newWebServer(s, addr, logger)
	if err != nil {
		return err
	}

	logger.Info("serving hangman", "source", s.source, "words", len(s.words), "chances", s.cfg.Chances)
	fmt.Printf("Open http://localhost:%s in a browser\n", port(addr))
	fmt.Println("Press Ctrl+C to stop")

	return runUntilSignal(cmd.Context(), srv.ListenAndServe)
}
