package hangman

import (
	"errors"
	"fmt"
)

// Causes of a ConfigurationError.
var (
	ErrEmptyWordList  = errors.New("word list is empty")
	ErrNoLetters      = errors.New("word has no letters to guess")
	ErrInvalidChances = errors.New("chances must be positive")
)

// ConfigurationError reports a word list or option that makes it impossible
// to build an Engine. It is the only fatal error the engine produces; every
// guess problem is reported as an Outcome instead.
type ConfigurationError struct {
	Err  error
	Word string // Offending entry, if any
}

func (e *ConfigurationError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("hangman: configuration error: %v: %q", e.Err, e.Word)
	}
	return fmt.Sprintf("hangman: configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
