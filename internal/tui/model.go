package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/xpostwatch/internal/model"
)

// frameInterval drives the ticker scroll and the REC blink.
const frameInterval = 120 * time.Millisecond

// StateMsg carries a new display state from the session.
type StateMsg struct {
	State model.DisplayState
}

// SessionClosedMsg is sent once the session's subscription closes.
type SessionClosedMsg struct{}

// FrameMsg advances the animation counter.
type FrameMsg time.Time

// Model is the Bubble Tea model for the widget. It holds presentation-only
// state; the display state itself arrives from the session.
type Model struct {
	updates <-chan model.DisplayState
	state   model.DisplayState
	history []int
	tick    int

	skin   Skin
	layout Layout
	keys   KeyMap
	help   help.Model
	dots   spinner.Model

	width  int
	height int
}

// NewModel creates the widget model. updates may be nil when states are
// fed by the caller.
func NewModel(updates <-chan model.DisplayState, initial model.DisplayState, skin Skin, layout Layout) *Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(skin.Accent))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(skin.Dim))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	m := &Model{
		updates: updates,
		skin:    skin,
		layout:  layout,
		keys:    DefaultKeyMap(),
		help:    h,
		dots: spinner.New(
			spinner.WithSpinner(spinner.Ellipsis),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(skin.Accent))),
		),
	}
	m.apply(initial)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.updates), frameTick(), m.dots.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case StateMsg:
		m.apply(msg.State)
		return m, waitForState(m.updates)

	case SessionClosedMsg:
		return m, tea.Quit

	case FrameMsg:
		m.tick++
		return m, frameTick()

	case spinner.TickMsg:
		// The dots only animate while loading; dropping the tick stops them.
		if !m.state.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.dots, cmd = m.dots.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	return Render(m.frame())
}

// State returns the last display state the model received.
func (m *Model) State() model.DisplayState {
	return m.state
}

func (m *Model) frame() Frame {
	dots := ""
	if m.state.IsLoading {
		dots = m.dots.View()
	}
	return Frame{
		State:   m.state,
		Tick:    m.tick,
		History: m.history,
		Skin:    m.skin,
		Layout:  m.layout,
		Dots:    dots,
		Help:    m.help.View(m.keys),
		Width:   m.width,
		Height:  m.height,
	}
}

func (m *Model) apply(st model.DisplayState) {
	m.state = st
	if st.Loaded() {
		m.history = appendHistory(m.history, st.Count)
	}
}

// waitForState blocks on the next session update.
func waitForState(updates <-chan model.DisplayState) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return SessionClosedMsg{}
		}
		return StateMsg{State: st}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
