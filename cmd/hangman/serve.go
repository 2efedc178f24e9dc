package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeWeb    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hangman SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; only the word list is shared.
With --web the browser front end runs alongside the SSH server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hangman/host_key

Examples:
  hangman serve                           # Listen on :23234 with auto-generated key
  hangman serve --ssh :2222               # Listen on port 2222
  hangman serve --host-key ./my_host_key  # Use specific host key
  hangman serve --web :8080               # Also serve browsers on :8080

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (e.g. 30m)")
	serveCmd.Flags().StringVar(&flagServeWeb, "web", "", "Also start the web server on this address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadSetup(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, s.cfg.Log.Level)
	if err != nil {
		return err
	}

	sshCfg := tui.SSHServerConfig{
		Address:     s.cfg.SSH.Address,
		HostKeyPath: s.cfg.SSH.HostKeyPath,
		IdleTimeout: s.cfg.SSH.IdleTimeout,
		Words:       s.words,
		Chances:     s.cfg.Chances,
		Source:      s.source,
		Seed:        flagSeed,
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	sshServer, err := tui.NewSSHServer(sshCfg, logger)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	var webServer *web.Server
	if flagServeWeb != "" {
		webServer, err = newWebServer(s, flagServeWeb, logger)
		if err != nil {
			return err
		}
	}

	logger.Info("serving hangman",
		"source", s.source,
		"words", len(s.words),
		"chances", s.cfg.Chances,
	)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(sshServer.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	return runUntilSignal(cmd.Context(), func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return sshServer.ListenAndServe(ctx) })
		if webServer != nil {
			g.Go(func() error { return webServer.ListenAndServe(ctx) })
		}
		return g.Wait()
	})
}

// newWebServer builds the browser front end on the shared word list.
func newWebServer(s *setup, addr string, logger *log.Logger) (*web.Server, error) {
	cfg := web.ServerConfig{
		Address: addr,
		Words:   s.words,
		Chances: s.cfg.Chances,
		Seed:    flagSeed,
	}
	srv, err := web.NewServer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating web server: %w", err)
	}
	return srv, nil
}

// port extracts the port of a host:port address for the connect hint.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}

// runUntilSignal runs fn with a context cancelled on SIGINT or SIGTERM.
func runUntilSignal(parent context.Context, fn func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx)
}
