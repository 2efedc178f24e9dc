package hangman

// DefaultChances is the number of wrong guesses a player may make per round.
const DefaultChances = 8

// RoundState is the derived state of the current round.
type RoundState int

const (
	InProgress RoundState = iota
	Won
	Lost
)

// String returns the wire name of the state.
func (s RoundState) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalText lets RoundState encode as its wire name in JSON.
func (s RoundState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Over reports whether the round has reached a terminal state.
func (s RoundState) Over() bool {
	return s == Won || s == Lost
}

// Outcome is the signal produced by a single guess.
type Outcome int

const (
	OutcomeNone Outcome = iota // No guess made yet this round
	OutcomeHit
	OutcomeMiss
	OutcomeInvalidInput
	OutcomeAlreadyGuessed
	OutcomeRoundOver
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeAlreadyGuessed:
		return "already_guessed"
	case OutcomeRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// MarshalText lets Outcome encode as its wire name in JSON.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Applied reports whether the guess changed round state.
// Rejected outcomes never mutate anything.
func (o Outcome) Applied() bool {
	return o == OutcomeHit || o == OutcomeMiss
}

// Cell is one character position of the word.
type Cell struct {
	Char     string `json:"char,omitempty"` // Original character, empty while masked
	Letter   bool   `json:"letter"`         // Whether the position is guessable
	Revealed bool   `json:"revealed"`
}

// ViewState is the read-only projection of a round handed to presentation
// layers after every operation.
type ViewState struct {
	Cells            []Cell     `json:"cells"`
	Masked           string     `json:"masked"`
	ChancesRemaining int        `json:"chancesRemaining"`
	MaxChances       int        `json:"maxChances"`
	WrongGuesses     int        `json:"wrongGuesses"`
	Guessed          []string   `json:"guessed"`
	Misses           []string   `json:"misses"`
	State            RoundState `json:"state"`
	LastOutcome      Outcome    `json:"lastOutcome"`
	Status           string     `json:"status"`
	Answer           string     `json:"answer,omitempty"` // Set once the round is over
}

// GuessResult is returned by SubmitGuess.
type GuessResult struct {
	Outcome   Outcome   `json:"outcome"`
	Letter    string    `json:"letter,omitempty"`
	Positions []int     `json:"positions,omitempty"` // Rune indexes revealed by a hit
	View      ViewState `json:"view"`
}
