package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Model is the Bubble Tea model for one hangman session. It owns the
// session's engine and forwards typed commands to it; it never touches the
// engine's state directly.
type Model struct {
	engine   *hangman.Engine
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	view     hangman.ViewState
	config   core.RuntimeConfig
	player   string
	source   string
	logger   *log.Logger
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer shows the player name in the header.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithSource shows where the words come from in the header.
func WithSource(desc string) ModelOption {
	return func(m *Model) {
		m.source = desc
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// NewModel creates a new Bubble Tea model driving the given engine.
func NewModel(engine *hangman.Engine, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = "Guess: "
	ti.Placeholder = "a letter"
	ti.CharLimit = 16
	ti.Width = 16
	ti.Focus()

	m := Model{
		engine: engine,
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		view:   engine.CurrentView(),
		config: cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey dispatches mapped commands and passes everything else to the
// text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.MapKey(msg, m.input.Value() == "")
	if cmd.IsNone() {
		var teaCmd tea.Cmd
		m.input, teaCmd = m.input.Update(msg)
		return m, teaCmd
	}

	switch cmd.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionGuess:
		cmd.Text = m.input.Value()
		m.input.Reset()
		m.dispatch(cmd)
		return m, nil

	case core.ActionRestart:
		m.input.Reset()
		m.dispatch(cmd)
	}
	return m, nil
}

// dispatch applies a command to the engine and stores the new view.
func (m *Model) dispatch(cmd core.Command) {
	res, ok := m.engine.Apply(cmd)
	if !ok {
		return
	}
	m.view = res.View

	if cmd.Action == core.ActionRestart {
		m.logger.Debug("round started", "player", m.player, "length", len(res.View.Cells))
		return
	}
	m.logger.Debug("guess",
		"player", m.player,
		"outcome", res.Outcome,
		"letter", res.Letter,
		"chances", res.View.ChancesRemaining,
		"state", res.View.State,
	)
	if res.Outcome.Applied() && res.View.State.Over() {
		m.logger.Info("round over", "player", m.player, "state", res.View.State, "word", res.View.Answer)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.view
	var b strings.Builder

	header := titleStyle.Render("H A N G M A N")
	if m.player != "" {
		header += dimStyle.Render("  player: " + m.player)
	}
	b.WriteString(header)
	b.WriteString("\n")
	if m.source != "" {
		b.WriteString(dimStyle.Render("words: " + m.source))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderScreen(DrawGallows(GallowsStage(v.WrongGuesses, v.MaxChances), v.State)))
	b.WriteString("\n\n")
	b.WriteString(RenderScreen(DrawLetterBoard(v)))
	b.WriteString("\n\n")

	word := v.Masked
	if v.State == hangman.Lost {
		word = "GAME OVER!"
	}
	b.WriteString(wordStyle.Render(word))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Chances: %d/%d", v.ChancesRemaining, v.MaxChances))
	if len(v.Misses) > 0 {
		b.WriteString(dimStyle.Render("   misses: " + strings.ToUpper(strings.Join(v.Misses, " "))))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle(v).Render(v.Status))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	out := b.String()
	if m.config.ScreenW > 0 {
		out = lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, out)
	}
	return out
}

// CurrentView returns the last view state received from the engine.
func (m Model) CurrentView() hangman.ViewState {
	return m.view
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(engine *hangman.Engine, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(engine, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
