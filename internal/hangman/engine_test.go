package hangman

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

func newEngine(t *testing.T, words ...string) *Engine {
	t.Helper()
	e, err := New(words, WithSeed(42))
	if err != nil {
		t.Fatalf("New(%v) failed: %v", words, err)
	}
	return e
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		opts  []Option
		cause error
	}{
		{"nil list", nil, nil, ErrEmptyWordList},
		{"only blanks", []string{"", "   "}, nil, ErrEmptyWordList},
		{"no letters", []string{"cat", "--"}, nil, ErrNoLetters},
		{"zero chances", []string{"cat"}, []Option{WithChances(0)}, ErrInvalidChances},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.words, tt.opts...)
			if e != nil {
				t.Error("expected nil engine")
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("New() error = %v, want %v", err, tt.cause)
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("New() error should be a *ConfigurationError, got %T", err)
			}
		})
	}
}

func TestStartRoundInitialView(t *testing.T) {
	e := newEngine(t, "cat")
	v := e.StartRound()

	if v.Masked != "_ _ _" {
		t.Errorf("Masked = %q, want %q", v.Masked, "_ _ _")
	}
	if v.ChancesRemaining != DefaultChances || v.WrongGuesses != 0 {
		t.Errorf("chances = %d, wrong = %d", v.ChancesRemaining, v.WrongGuesses)
	}
	if v.State != InProgress {
		t.Errorf("State = %v, want InProgress", v.State)
	}
	if v.Answer != "" {
		t.Error("answer must stay hidden while the round is in progress")
	}
	for _, c := range v.Cells {
		if c.Char != "" {
			t.Errorf("masked cell leaks its character: %+v", c)
		}
	}
	if v.Status != "Hangman Game" {
		t.Errorf("Status = %q", v.Status)
	}
}

func TestCatScenario(t *testing.T) {
	e := newEngine(t, "cat")

	steps := []struct {
		guess   string
		outcome Outcome
		masked  string
		chances int
		state   RoundState
	}{
		{"c", OutcomeHit, "c _ _", 8, InProgress},
		{"z", OutcomeMiss, "c _ _", 7, InProgress},
		{"a", OutcomeHit, "c a _", 7, InProgress},
		{"t", OutcomeHit, "c a t", 7, Won},
	}

	for _, s := range steps {
		res := e.SubmitGuess(s.guess)
		if res.Outcome != s.outcome {
			t.Errorf("guess %q: outcome = %v, want %v", s.guess, res.Outcome, s.outcome)
		}
		if res.View.Masked != s.masked {
			t.Errorf("guess %q: masked = %q, want %q", s.guess, res.View.Masked, s.masked)
		}
		if res.View.ChancesRemaining != s.chances {
			t.Errorf("guess %q: chances = %d, want %d", s.guess, res.View.ChancesRemaining, s.chances)
		}
		if res.View.State != s.state {
			t.Errorf("guess %q: state = %v, want %v", s.guess, res.View.State, s.state)
		}
	}

	v := e.CurrentView()
	if v.Status != "GG you won!" {
		t.Errorf("Status = %q", v.Status)
	}
	if v.Answer != "cat" {
		t.Errorf("Answer = %q", v.Answer)
	}
	if !reflect.DeepEqual(v.Misses, []string{"z"}) {
		t.Errorf("Misses = %v", v.Misses)
	}
}

func TestDogScenarioLossAndRoundOver(t *testing.T) {
	e := newEngine(t, "dog")

	for i, g := range []string{"x", "q", "w", "e", "r", "z", "u", "i"} {
		res := e.SubmitGuess(g)
		if res.Outcome != OutcomeMiss {
			t.Fatalf("guess %q: outcome = %v, want miss", g, res.Outcome)
		}
		if want := DefaultChances - i - 1; res.View.ChancesRemaining != want {
			t.Fatalf("guess %q: chances = %d, want %d", g, res.View.ChancesRemaining, want)
		}
	}

	v := e.CurrentView()
	if v.ChancesRemaining != 0 || v.State != Lost {
		t.Fatalf("after 8 misses: chances = %d, state = %v", v.ChancesRemaining, v.State)
	}
	if v.WrongGuesses != 8 {
		t.Errorf("WrongGuesses = %d, want 8", v.WrongGuesses)
	}
	if v.Status != "GAME OVER! The word was dog." {
		t.Errorf("Status = %q", v.Status)
	}

	res := e.SubmitGuess("d")
	if res.Outcome != OutcomeRoundOver {
		t.Fatalf("9th guess outcome = %v, want round_over", res.Outcome)
	}
	if res.View.ChancesRemaining != 0 || res.View.State != Lost {
		t.Errorf("round over must not mutate state: %+v", res.View)
	}
	if !reflect.DeepEqual(res.View.Guessed, v.Guessed) {
		t.Errorf("guessed letters changed after round over: %v -> %v", v.Guessed, res.View.Guessed)
	}
}

func TestWonRoundRejectsFurtherGuesses(t *testing.T) {
	e := newEngine(t, "ab")
	e.SubmitGuess("a")
	e.SubmitGuess("b")

	before := e.CurrentView()
	res := e.SubmitGuess("z")
	if res.Outcome != OutcomeRoundOver {
		t.Fatalf("outcome = %v, want round_over", res.Outcome)
	}
	if res.View.ChancesRemaining != before.ChancesRemaining || res.View.State != Won {
		t.Errorf("won round mutated: %+v", res.View)
	}
	if len(res.View.Guessed) != 2 {
		t.Errorf("Guessed = %v", res.View.Guessed)
	}
}

func TestPhraseWithSpace(t *testing.T) {
	e := newEngine(t, "hi there")
	v := e.CurrentView()

	if v.Masked != "_ _  _ _ _ _ _" {
		t.Errorf("Masked = %q", v.Masked)
	}
	if space := v.Cells[2]; space.Letter || !space.Revealed || space.Char != " " {
		t.Errorf("space cell = %+v, want pre-revealed non-letter", space)
	}

	if res := e.SubmitGuess(" "); res.Outcome != OutcomeInvalidInput {
		t.Errorf("space guess outcome = %v, want invalid_input", res.Outcome)
	}

	for _, g := range []string{"h", "i", "t", "e", "r"} {
		e.SubmitGuess(g)
	}
	v = e.CurrentView()
	if v.State != Won {
		t.Errorf("State = %v, the space must not block the win", v.State)
	}
	if v.Masked != "h i  t h e r e" {
		t.Errorf("Masked = %q", v.Masked)
	}
}

func TestPunctuationIsRevealed(t *testing.T) {
	e := newEngine(t, "x-ray")
	if v := e.CurrentView(); v.Masked != "_ - _ _ _" {
		t.Errorf("Masked = %q", v.Masked)
	}
	if res := e.SubmitGuess("-"); res.Outcome != OutcomeInvalidInput {
		t.Errorf("hyphen guess outcome = %v", res.Outcome)
	}
}

func TestCaseInsensitiveMatchKeepsCasing(t *testing.T) {
	e := newEngine(t, "New York")

	res := e.SubmitGuess("  N ")
	if res.Outcome != OutcomeHit {
		t.Fatalf("outcome = %v, want hit", res.Outcome)
	}
	if res.Letter != "n" {
		t.Errorf("Letter = %q, want normalized n", res.Letter)
	}
	if !reflect.DeepEqual(res.Positions, []int{0}) {
		t.Errorf("Positions = %v", res.Positions)
	}
	if res.View.Masked != "N _ _  _ _ _ _" {
		t.Errorf("Masked = %q", res.View.Masked)
	}

	res = e.SubmitGuess("o")
	if !reflect.DeepEqual(res.Positions, []int{5}) {
		t.Errorf("Positions = %v", res.Positions)
	}
	res = e.SubmitGuess("Y")
	if res.View.Cells[4].Char != "Y" {
		t.Errorf("reveal should keep original casing, got %+v", res.View.Cells[4])
	}
}

func TestInvalidInput(t *testing.T) {
	e := newEngine(t, "cat")

	for _, in := range []string{"", "  ", "ab", "1", "?", "c a"} {
		res := e.SubmitGuess(in)
		if res.Outcome != OutcomeInvalidInput {
			t.Errorf("SubmitGuess(%q) = %v, want invalid_input", in, res.Outcome)
		}
		if res.View.ChancesRemaining != DefaultChances || len(res.View.Guessed) != 0 {
			t.Errorf("SubmitGuess(%q) mutated state: %+v", in, res.View)
		}
		if res.View.Status != "Please enter a single letter." {
			t.Errorf("Status = %q", res.View.Status)
		}
	}
}

func TestAlreadyGuessedNeverCostsTwice(t *testing.T) {
	e := newEngine(t, "cat")

	e.SubmitGuess("z")
	res := e.SubmitGuess("Z")
	if res.Outcome != OutcomeAlreadyGuessed {
		t.Fatalf("outcome = %v, want already_guessed", res.Outcome)
	}
	if res.View.ChancesRemaining != DefaultChances-1 {
		t.Errorf("chances = %d, repeated miss must not cost a chance", res.View.ChancesRemaining)
	}
	if res.View.Status != "You already guessed Z!" {
		t.Errorf("Status = %q", res.View.Status)
	}

	e.SubmitGuess("c")
	res = e.SubmitGuess("c")
	if res.Outcome != OutcomeAlreadyGuessed {
		t.Errorf("repeated hit outcome = %v", res.Outcome)
	}
}

func TestChancesNeverIncreaseOrGoNegative(t *testing.T) {
	e := newEngine(t, "quiz")
	prev := e.CurrentView().ChancesRemaining

	for _, g := range "abcdefghijklmnopqrstuvwxyzabc" {
		v := e.SubmitGuess(string(g)).View
		if v.ChancesRemaining > prev {
			t.Fatalf("chances increased from %d to %d", prev, v.ChancesRemaining)
		}
		if v.ChancesRemaining < 0 {
			t.Fatalf("chances went negative: %d", v.ChancesRemaining)
		}
		prev = v.ChancesRemaining
	}
}

func TestWonIffAllLettersGuessed(t *testing.T) {
	tests := []struct {
		word    string
		guesses string
		state   RoundState
	}{
		{"cat", "tac", Won},
		{"cat", "ta", InProgress},
		{"Cat", "cat", Won},
		{"a b", "ab", Won},
		{"dog", "abcefhij", Lost},
		{"dog", "abcefhijd", Lost}, // "d" arrives after the eighth miss
		{"dog", "abcefhdo", InProgress},
	}

	for _, tt := range tests {
		e := newEngine(t, tt.word)
		for _, g := range tt.guesses {
			e.SubmitGuess(string(g))
		}
		if got := e.CurrentView().State; got != tt.state {
			t.Errorf("word %q guesses %q: state = %v, want %v", tt.word, tt.guesses, got, tt.state)
		}
	}
}

func TestStartRoundResets(t *testing.T) {
	e := newEngine(t, "dog")
	for _, g := range "abcefhij" {
		e.SubmitGuess(string(g))
	}

	v := e.StartRound()
	if v.State != InProgress || v.ChancesRemaining != DefaultChances {
		t.Errorf("after restart: %+v", v)
	}
	if len(v.Guessed) != 0 || len(v.Misses) != 0 {
		t.Errorf("guessed letters not reset: %v", v.Guessed)
	}
	if v.LastOutcome != OutcomeNone {
		t.Errorf("LastOutcome = %v", v.LastOutcome)
	}
}

func TestWithChances(t *testing.T) {
	e, err := New([]string{"cat"}, WithChances(2))
	if err != nil {
		t.Fatal(err)
	}
	e.SubmitGuess("x")
	v := e.SubmitGuess("y").View
	if v.State != Lost || v.MaxChances != 2 || v.WrongGuesses != 2 {
		t.Errorf("view = %+v", v)
	}
}

func TestSeededSelectionIsDeterministic(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo"}

	a, _ := New(words, WithSeed(7))
	b, _ := New(words, WithSeed(7))
	for i := 0; i < 10; i++ {
		if a.StartRound().Masked != b.StartRound().Masked {
			t.Fatal("same seed should pick the same words")
		}
	}
}

func TestSelectionCoversWordList(t *testing.T) {
	words := []string{"a", "bb", "ccc"}
	e, _ := New(words, WithSeed(1))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[e.StartRound().Masked] = true
	}
	if len(seen) != len(words) {
		t.Errorf("expected every word to be picked, saw %v", seen)
	}
}

func TestApply(t *testing.T) {
	e := newEngine(t, "cat")

	res, ok := e.Apply(core.Guess("c"))
	if !ok || res.Outcome != OutcomeHit {
		t.Errorf("Apply(guess) = %v, %v", res.Outcome, ok)
	}

	res, ok = e.Apply(core.Restart())
	if !ok || res.View.Masked != "_ _ _" {
		t.Errorf("Apply(restart) = %+v, %v", res.View, ok)
	}

	if _, ok := e.Apply(core.Quit()); ok {
		t.Error("quit is owned by the presentation layer")
	}
}

func TestOutcomeApplied(t *testing.T) {
	for o, want := range map[Outcome]bool{
		OutcomeHit:            true,
		OutcomeMiss:           true,
		OutcomeInvalidInput:   false,
		OutcomeAlreadyGuessed: false,
		OutcomeRoundOver:      false,
		OutcomeNone:           false,
	} {
		if o.Applied() != want {
			t.Errorf("%v.Applied() = %v", o, !want)
		}
	}
}

func TestDecomposedWordIsComposed(t *testing.T) {
	e := newEngine(t, "e\u0301te\u0301")

	v := e.CurrentView()
	if v.Masked != "_ _ _" {
		t.Fatalf("Masked = %q, expected one cell per letter", v.Masked)
	}

	res := e.SubmitGuess("e\u0301")
	if res.Outcome != OutcomeHit {
		t.Fatalf("decomposed guess: outcome = %v, expected hit", res.Outcome)
	}
	if res.View.Masked != "\u00e9 _ \u00e9" {
		t.Errorf("Masked = %q after guessing \u00e9", res.View.Masked)
	}

	res = e.SubmitGuess("e")
	if res.Outcome != OutcomeMiss {
		t.Errorf("plain e should not match \u00e9, got %v", res.Outcome)
	}
}

func TestConcurrentGuessesAreSerialized(t *testing.T) {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	e, err := New([]string{"jazz"}, WithChances(100), WithSeed(1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
		misses  int
	)
	for _, r := range letters {
		wg.Add(1)
		go func(letter string) {
			defer wg.Done()
			res := e.SubmitGuess(letter)
			_ = e.CurrentView()

			mu.Lock()
			defer mu.Unlock()
			switch res.Outcome {
			case OutcomeHit:
				applied++
			case OutcomeMiss:
				applied++
				misses++
			case OutcomeRoundOver:
			default:
				t.Errorf("guess %q: unexpected outcome %v", letter, res.Outcome)
			}
		}(string(r))
	}
	wg.Wait()

	v := e.CurrentView()
	if v.State != Won {
		t.Errorf("State = %v, expected won", v.State)
	}
	if len(v.Guessed) != applied {
		t.Errorf("len(Guessed) = %d, expected %d accepted guesses", len(v.Guessed), applied)
	}
	if v.WrongGuesses != misses || v.ChancesRemaining != 100-misses {
		t.Errorf("chances %d, wrong %d, expected %d misses", v.ChancesRemaining, v.WrongGuesses, misses)
	}
	if v.ChancesRemaining < 0 {
		t.Errorf("ChancesRemaining = %d, must not be negative", v.ChancesRemaining)
	}
}

func TestConcurrentRestartsAndGuesses(t *testing.T) {
	e, err := New([]string{"cat", "dog", "owl"}, WithChances(3), WithSeed(7))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			e.StartRound()
		}()
		go func(i int) {
			defer wg.Done()
			e.SubmitGuess(string(rune('a' + i)))
		}(i)
	}
	wg.Wait()

	v := e.CurrentView()
	if v.ChancesRemaining < 0 || v.ChancesRemaining > 3 {
		t.Errorf("ChancesRemaining = %d, outside [0, 3]", v.ChancesRemaining)
	}
	if v.WrongGuesses != len(v.Misses) {
		t.Errorf("WrongGuesses = %d, but %d misses listed", v.WrongGuesses, len(v.Misses))
	}
	if v.State == Lost && v.ChancesRemaining != 0 {
		t.Errorf("lost round with %d chances left", v.ChancesRemaining)
	}
}
