package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravets/galactic/internal/game"
	"github.com/mkravets/galactic/internal/storage"
)

// pacingDoneMsg ends the cosmetic pause after a mission outcome.
type pacingDoneMsg struct{}

func pacingCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return pacingDoneMsg{}
	})
}

// Model is the Bubble Tea model hosting one game session. It collects a
// single line per screen with a text input and feeds it to the session
// state machine; the journal store is optional and best-effort.
type Model struct {
	session  *game.Session
	store    *storage.Store
	input    textinput.Model
	width    int
	height   int
	pacing   bool
	quitting bool
}

// NewModel creates a model around the given records. The store may be
// nil; the game runs fully without persistence.
func NewModel(prefs *game.Preferences, state *game.State, store *storage.Store, width, height int) Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	return Model{
		session: game.NewSession(prefs, state),
		store:   store,
		input:   ti,
		width:   width,
		height:  height,
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case pacingDoneMsg:
		m.pacing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.pacing {
			return m, nil
		}
		return m.submit()
	}

	if m.pacing {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds the typed line to the session and reacts to the result.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.session.Handle(line)

	if out := m.session.TakeOutcome(); out != nil && m.store != nil {
		//nolint:errcheck // Best-effort save, the game continues regardless
		m.store.SaveEntry(storage.JournalEntry{
			ShipName:       out.ShipName,
			Callsign:       out.Callsign,
			Choice:         out.Choice.String(),
			Chapter:        out.Chapter,
			PowerCellsLeft: out.PowerCells,
			PacketsSent:    out.DistressPacketsSent,
		})
	}

	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	if n := m.session.Notice(); n != nil && n.OK {
		if d := PacingDelay(*m.session.Prefs); d > 0 {
			m.pacing = true
			return m, pacingCmd(d)
		}
	}

	return m, nil
}

// View renders the current screen through the preference-driven
// formatter and the active theme.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	prefs := *m.session.Prefs
	theme := DefaultTheme()
	if prefs.HighContrast {
		theme = HighContrastTheme()
	}

	title := Heading(m.session.Title(), prefs)

	var content strings.Builder
	for _, line := range m.session.Body() {
		content.WriteString(theme.Body.Render(line))
		content.WriteString("\n")
	}
	if len(m.session.Body()) > 0 {
		content.WriteString("\n")
	}
	if m.session.InChoiceMode() {
		for _, o := range m.session.Options() {
			content.WriteString(theme.Option.Render(fmt.Sprintf("%d) %s", o.Key, o.Label)))
			content.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Rule.Render(Rule(m.session.Title())))
	b.WriteString("\n\n")
	b.WriteString(Body(strings.TrimRight(content.String(), "\n"), prefs))
	b.WriteString("\n\n")

	if n := m.session.Notice(); n != nil {
		style := theme.Notice
		tag := "[Notice]"
		if n.OK {
			style = theme.Success
			tag = "[OK]"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s", tag, n.Text)))
		b.WriteString("\n\n")
	}

	prompt := Heading(m.session.Prompt(), prefs)
	b.WriteString(prompt)
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render("Enter: submit  |  Ctrl+C: quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts a local Bubble Tea program for one game session.
func Run(prefs *game.Preferences, state *game.State, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewModel(prefs, state, store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
