package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/rustcfg/cfg"
	"github.com/ardnew/rustcfg/log"
)

const evalPrompt = "➜ "

func helpMessage() string {
	return `
: Commands:

  help     Print this cruft
  keys     List reported predicate keys
  clear    Clear screen
  quit     Exit

Usage:
  Type an expression to evaluate it (predicate keys are variables)
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// ctrlCommands are the recognized non-expression inputs.
var ctrlCommands = map[string]struct{}{
	"help": {}, "keys": {}, "clear": {}, "quit": {}, "exit": {},
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the interactive prompt.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	set        *cfg.Set
	logger     log.Logger
	history    *History
	historyIdx int
	candidates []string
	matches    fuzzy.Matches // current fuzzy match results
	wordStart  int           // byte offset of current word start
	wordEnd    int           // byte offset of current word end
	suggIdx    int           // selected candidate index
	tabActive  bool          // whether user is tab-cycling
	preTabText string        // input text before tab-cycling began
	width      int           // terminal width for truncation
	quitting   bool
}

// Run starts the interactive prompt over the given configuration.
func Run(
	ctx context.Context,
	set *cfg.Set,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.DebugContext(ctx, "repl start",
		slog.Int("keys", set.Len()),
		slog.String("triple", set.Triple()),
	)

	m := newModel(ctx, set, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, set *cfg.Set, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		set:        set,
		logger:     logger,
		history:    NewHistory(),
		candidates: candidates(set),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%d/%d", m.historyIdx+1, m.history.Len())
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			"Type an expression, or: help, keys, clear, quit"))
		b.WriteString("\n")

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width,
		))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.tabActive && len(m.matches) > 0 {
			// Lock in the current tab candidate without executing.
			m.tabActive = false
			m.refreshMatches()

			return m, nil
		}

		return m.executeInput()

	case tea.KeyTab:
		return m.handleTab(1)

	case tea.KeyShiftTab:
		return m.handleTab(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.refreshMatches()
		}

		return m, nil

	case tea.KeyRunes:
		// Space breaks an active tab-cycle.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		m.refreshMatches()

		return m, cmd
	}

	// Backspace, delete, arrows, and anything else: update input and
	// recompute matches.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

// handleTab cycles the completion selection by step, starting a cycle if
// one is not already active.
func (m model) handleTab(step int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	if len(m.matches) == 1 {
		m.replaceCurrentWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()

		if step > 0 {
			m.suggIdx = 0
		} else {
			m.suggIdx = len(m.matches) - 1
		}
	}

	m.replaceCurrentWord(m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input
// with the given replacement text and repositions the cursor.
func (m *model) replaceCurrentWord(replacement string) {
	input := m.input.Value()
	next := input[:m.wordStart] + replacement + input[m.wordEnd:]
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(next)
	m.input.SetCursor(cursor)
	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
func (m *model) refreshMatches() {
	m.matches, m.wordStart, m.wordEnd = match(
		m.input.Value(), m.input.Position(), m.candidates,
	)

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history.Get(m.historyIdx))
		m.input.CursorEnd()
		m.matches = nil
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < m.history.Len() {
		m.historyIdx++

		if m.historyIdx == m.history.Len() {
			m.input.SetValue("")
		} else {
			m.input.SetValue(m.history.Get(m.historyIdx))
		}

		m.input.CursorEnd()
		m.matches = nil
	}

	return m, nil
}

// executeInput evaluates the current input as a control command or an
// expression and prints the outcome above the prompt.
func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.tabActive = false
	m.matches = nil

	if input == "" {
		return m, nil
	}

	m.history.Add(input)
	m.historyIdx = m.history.Len()

	if _, ok := ctrlCommands[input]; ok {
		return m.executeCtrl(input)
	}

	echo := promptStyle.Render(evalPrompt) + input

	result, err := m.set.Eval(input)
	if err != nil {
		m.logger.DebugContext(m.ctxFunc(), "repl eval failed",
			slog.String("expr", input),
			slog.Any("error", err),
		)

		return m, tea.Println(
			echo + "\n" + errorStyle.Render(err.Error()),
		)
	}

	return m, tea.Println(
		echo + "\n" + resultStyle.Render(fmt.Sprintf("%v", result)),
	)
}

func (m model) executeCtrl(input string) (model, tea.Cmd) {
	switch input {
	case "help":
		return m, tea.Println(hintStyle.Render(helpMessage()))

	case "keys":
		return m, tea.Println(
			resultStyle.Render(strings.Join(m.set.Keys(), "\n")),
		)

	case "clear":
		return m, tea.ClearScreen

	default: // quit, exit
		m.quitting = true

		return m, tea.Quit
	}
}
