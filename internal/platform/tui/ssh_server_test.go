package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func newTestSSHServer(t *testing.T, seed int64, words []string) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Words = words
	cfg.Seed = seed

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestSSHServerSeedsSessions(t *testing.T) {
	// Distinct lengths identify the chosen word without revealing it
	words := []string{"a", "bb", "ccc", "dddd", "eeeee", "ffffff"}
	srv := newTestSSHServer(t, 42, words)

	for i := int64(0); i < 4; i++ {
		got, err := srv.newEngine()
		if err != nil {
			t.Fatalf("newEngine() failed: %v", err)
		}
		want, err := hangman.New(words, hangman.WithSeed(42+i))
		if err != nil {
			t.Fatalf("hangman.New() failed: %v", err)
		}
		if len(got.CurrentView().Cells) != len(want.CurrentView().Cells) {
			t.Errorf("session %d: word length %d, expected %d", i,
				len(got.CurrentView().Cells), len(want.CurrentView().Cells))
		}
	}
}

func TestNewSSHServerRejectsEmptyWords(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("expected error for empty word list")
	}
}
