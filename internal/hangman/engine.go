// Package hangman implements the guess-evaluation state machine of the word
// guessing game. It contains pure logic with no rendering or I/O; the
// terminal and web platforms drive it through its public operations.
package hangman

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Engine owns the state of one player's game: the word list, the current
// word, the guessed letters and the remaining chances. All mutation goes
// through StartRound and SubmitGuess, which are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	words      []string
	rng        *rand.Rand
	maxChances int

	word    []rune
	guessed map[rune]bool
	order   []rune // Guessed letters in submission order
	chances int

	lastOutcome Outcome
	lastLetter  rune
}

// Option configures an Engine.
type Option func(*Engine)

// WithChances overrides DefaultChances.
func WithChances(n int) Option {
	return func(e *Engine) {
		e.maxChances = n
	}
}

// WithSeed makes word selection deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for word selection.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// New validates the word list, builds an Engine and starts its first round.
// Blank entries are ignored; an empty list, an entry without letters or a
// non-positive chance count fail with a *ConfigurationError.
func New(words []string, opts ...Option) (*Engine, error) {
	e := &Engine{maxChances: DefaultChances}
	for _, opt := range opts {
		opt(e)
	}

	if e.maxChances <= 0 {
		return nil, &ConfigurationError{Err: ErrInvalidChances}
	}

	for _, w := range words {
		// NFC keeps a letter and its combining marks in one cell
		w = norm.NFC.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !hasLetter(w) {
			return nil, &ConfigurationError{Err: ErrNoLetters, Word: w}
		}
		e.words = append(e.words, w)
	}
	if len(e.words) == 0 {
		return nil, &ConfigurationError{Err: ErrEmptyWordList}
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.StartRound()
	return e, nil
}

// StartRound picks a new word uniformly at random and resets the guessed
// letters and remaining chances.
func (e *Engine) StartRound() ViewState {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset(e.words[e.rng.Intn(len(e.words))])
	return e.view()
}

// reset starts a round on the given word. Caller holds mu.
func (e *Engine) reset(word string) {
	e.word = []rune(word)
	e.guessed = make(map[rune]bool)
	e.order = e.order[:0]
	e.chances = e.maxChances
	e.lastOutcome = OutcomeNone
	e.lastLetter = 0
}

// SubmitGuess evaluates one raw guess. The input is trimmed and lowercased;
// anything other than a single letter is rejected. Rejections (round over,
// invalid input, repeated letter) leave the round untouched.
func (e *Engine) SubmitGuess(raw string) GuessResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state().Over() {
		return e.reject(OutcomeRoundOver, 0)
	}

	letter, ok := normalizeGuess(raw)
	if !ok {
		return e.reject(OutcomeInvalidInput, 0)
	}

	if e.guessed[letter] {
		return e.reject(OutcomeAlreadyGuessed, letter)
	}

	e.guessed[letter] = true
	e.order = append(e.order, letter)
	e.lastLetter = letter

	positions := e.positionsOf(letter)
	if len(positions) > 0 {
		e.lastOutcome = OutcomeHit
	} else {
		e.lastOutcome = OutcomeMiss
		if e.chances > 0 {
			e.chances--
		}
	}

	return GuessResult{
		Outcome:   e.lastOutcome,
		Letter:    string(letter),
		Positions: positions,
		View:      e.view(),
	}
}

// reject records a non-mutating outcome. Caller holds mu.
func (e *Engine) reject(o Outcome, letter rune) GuessResult {
	e.lastOutcome = o
	e.lastLetter = letter

	res := GuessResult{Outcome: o, View: e.view()}
	if letter != 0 {
		res.Letter = string(letter)
	}
	return res
}

// CurrentView returns the view of the round without changing it.
func (e *Engine) CurrentView() ViewState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.view()
}

// Apply dispatches a presentation command. The boolean is false for
// actions the engine does not handle (quit, help), which the caller owns.
func (e *Engine) Apply(cmd core.Command) (GuessResult, bool) {
	switch cmd.Action {
	case core.ActionGuess:
		return e.SubmitGuess(cmd.Text), true
	case core.ActionRestart:
		return GuessResult{Outcome: OutcomeNone, View: e.StartRound()}, true
	default:
		return GuessResult{}, false
	}
}

// WordCount returns the number of candidate words.
func (e *Engine) WordCount() int {
	return len(e.words)
}

// positionsOf returns the rune indexes holding letter, case-insensitively.
func (e *Engine) positionsOf(letter rune) []int {
	var positions []int
	for i, r := range e.word {
		if unicode.IsLetter(r) && unicode.ToLower(r) == letter {
			positions = append(positions, i)
		}
	}
	return positions
}

// state derives the round state from the word, guesses and chances.
func (e *Engine) state() RoundState {
	if e.solved() {
		return Won
	}
	if e.chances == 0 {
		return Lost
	}
	return InProgress
}

// solved reports whether every letter position has been guessed.
func (e *Engine) solved() bool {
	for _, r := range e.word {
		if unicode.IsLetter(r) && !e.guessed[unicode.ToLower(r)] {
			return false
		}
	}
	return true
}

// view builds the ViewState. Caller holds mu.
func (e *Engine) view() ViewState {
	state := e.state()

	cells := make([]Cell, len(e.word))
	parts := make([]string, len(e.word))
	for i, r := range e.word {
		switch {
		case !unicode.IsLetter(r):
			cells[i] = Cell{Char: string(r), Revealed: true}
			if !unicode.IsSpace(r) {
				parts[i] = string(r)
			}
		case e.guessed[unicode.ToLower(r)]:
			cells[i] = Cell{Char: string(r), Letter: true, Revealed: true}
			parts[i] = string(r)
		default:
			cells[i] = Cell{Letter: true}
			parts[i] = "_"
		}
	}

	guessed := make([]string, 0, len(e.order))
	misses := make([]string, 0, len(e.order))
	for _, l := range e.order {
		guessed = append(guessed, string(l))
		if len(e.positionsOf(l)) == 0 {
			misses = append(misses, string(l))
		}
	}
	sort.Strings(guessed)

	v := ViewState{
		Cells:            cells,
		Masked:           strings.Join(parts, " "),
		ChancesRemaining: e.chances,
		MaxChances:       e.maxChances,
		WrongGuesses:     e.maxChances - e.chances,
		Guessed:          guessed,
		Misses:           misses,
		State:            state,
		LastOutcome:      e.lastOutcome,
	}
	if state.Over() {
		v.Answer = string(e.word)
	}
	v.Status = e.status(state)
	return v
}

// status returns the message for the last outcome. Caller holds mu.
func (e *Engine) status(state RoundState) string {
	upper := string(unicode.ToUpper(e.lastLetter))

	switch e.lastOutcome {
	case OutcomeInvalidInput:
		return "Please enter a single letter."
	case OutcomeAlreadyGuessed:
		return fmt.Sprintf("You already guessed %s!", upper)
	case OutcomeRoundOver:
		return "The round is over. Press restart to play again."
	}

	switch state {
	case Won:
		return "GG you won!"
	case Lost:
		return fmt.Sprintf("GAME OVER! The word was %s.", string(e.word))
	}

	switch e.lastOutcome {
	case OutcomeHit:
		return fmt.Sprintf("%s is correct!", upper)
	case OutcomeMiss:
		return fmt.Sprintf("%s is not in the word.", upper)
	default:
		return "Hangman Game"
	}
}

// normalizeGuess trims and lowercases raw input and reports whether it is
// exactly one letter.
func normalizeGuess(raw string) (rune, bool) {
	runes := []rune(strings.ToLower(norm.NFC.String(strings.TrimSpace(raw))))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return 0, false
	}
	return runes[0], true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
