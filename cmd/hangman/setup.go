package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// setup is everything a command needs to build engines.
type setup struct {
	cfg    config.Config
	words  []string
	source string
}

// loadSetup loads the config, applies command-line overrides and resolves
// the word list.
func loadSetup(ctx context.Context) (*setup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := wordOptions(cfg)
	if opts.DBPath == "" && opts.File == "" && opts.Pack != "" && !registry.Exists(opts.Pack) {
		return nil, fmt.Errorf("unknown word pack %q, run 'hangman packs' to list them", opts.Pack)
	}
	list, err := words.Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &setup{cfg: cfg, words: list, source: words.Describe(opts)}, nil
}

// applyFlags overlays global flags on the loaded config. Any word source
// flag replaces the configured source entirely.
func applyFlags(cfg *config.Config) error {
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(cfg, p)
	}
	if flagChances != 0 {
		cfg.Chances = flagChances
	}

	if flagPack != "" || flagWordsFile != "" || flagWordsDB != "" {
		cfg.Words = config.WordsConfig{
			Pack:     flagPack,
			File:     flagWordsFile,
			DB:       flagWordsDB,
			Category: flagCategory,
		}
	} else if flagCategory != "" {
		cfg.Words.Category = flagCategory
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return nil
}

func wordOptions(cfg config.Config) words.Options {
	return words.Options{
		Pack:     cfg.Words.Pack,
		File:     cfg.Words.File,
		DBPath:   cfg.Words.DB,
		Category: cfg.Words.Category,
	}
}

// newEngine builds an engine on the shared word list.
func (s *setup) newEngine() (*hangman.Engine, error) {
	opts := []hangman.Option{hangman.WithChances(s.cfg.Chances)}
	if flagSeed != 0 {
		opts = append(opts, hangman.WithSeed(flagSeed))
	}
	return hangman.New(s.words, opts...)
}

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "", "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
	return logger, nil
}
