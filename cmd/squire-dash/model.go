package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"squire/pkg/client"
	"squire/pkg/lichess"
)

// maxRecentEvents bounds the recent-event log.
const maxRecentEvents = 12

// connectedMsg is sent once the profile is fetched and the event stream is
// open.
type connectedMsg struct {
	botID  string
	stream *client.EventStream
}

// eventMsg carries one record off the event stream.
type eventMsg struct {
	event *lichess.BotEvent
}

// streamDoneMsg is sent when the event stream ends or fails.
type streamDoneMsg struct {
	err error
}

// errMsg carries a fatal setup error.
type errMsg struct {
	err error
}

// connectCmd fetches the account and opens the event stream.
func connectCmd(c *client.BotClient) tea.Cmd {
	return func() tea.Msg {
		profile, err := c.Profile(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		stream, err := c.StreamEvents(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return connectedMsg{botID: profile.ID, stream: stream}
	}
}

// waitEventCmd blocks for the next stream record.
func waitEventCmd(stream *client.EventStream) tea.Cmd {
	return func() tea.Msg {
		ev, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return streamDoneMsg{}
			}
			return streamDoneMsg{err: err}
		}
		return eventMsg{event: ev}
	}
}

// gameRow is one line of the active-games table.
type gameRow struct {
	id      string
	started time.Time
}

// Model is the Bubble Tea model for the squire dashboard.
type Model struct {
	client  *client.BotClient
	spinner spinner.Model
	theme   Theme

	connected bool
	botID     string
	stream    *client.EventStream
	done      bool

	games  []gameRow
	recent []string

	width  int
	height int
	err    error
}

// newModel creates a Model that connects with the given client.
func newModel(c *client.BotClient) Model {
	theme := DefaultTheme()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Model{client: c, spinner: sp, theme: theme}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(connectCmd(m.client), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.stream != nil {
				m.stream.Close()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case connectedMsg:
		m.connected = true
		m.botID = msg.botID
		m.stream = msg.stream
		return m, waitEventCmd(m.stream)

	case eventMsg:
		m.apply(msg.event)
		return m, waitEventCmd(m.stream)

	case streamDoneMsg:
		m.done = true
		m.err = msg.err

	case errMsg:
		m.err = msg.err

	case spinner.TickMsg:
		if !m.connected {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// apply folds one event into the dashboard state.
func (m *Model) apply(ev *lichess.BotEvent) {
	switch ev.Type {
	case lichess.EventGameStart:
		if ev.Game.ID != nil {
			m.games = append(m.games, gameRow{id: *ev.Game.ID, started: time.Now()})
			m.logEvent("game %s started", *ev.Game.ID)
		}
	case lichess.EventGameFinish:
		if ev.Game.ID != nil {
			m.removeGame(*ev.Game.ID)
			m.logEvent("game %s finished", *ev.Game.ID)
		}
	case lichess.EventChallenge:
		m.logEvent("challenge %s from %s", ev.Challenge.ID, ev.Challenge.Challenger.Name)
	case lichess.EventChallengeCanceled:
		m.logEvent("challenge %s canceled", ev.Challenge.ID)
	case lichess.EventChallengeDeclined:
		m.logEvent("challenge %s declined", ev.Challenge.ID)
	}
}

func (m *Model) removeGame(id string) {
	kept := m.games[:0]
	for _, g := range m.games {
		if g.id != id {
			kept = append(kept, g)
		}
	}
	m.games = kept
}

func (m *Model) logEvent(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	m.recent = append(m.recent, line)
	if len(m.recent) > maxRecentEvents {
		m.recent = m.recent[len(m.recent)-maxRecentEvents:]
	}
}

// View implements tea.Model.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	errorStyle := lipgloss.NewStyle().Foreground(m.theme.Error)

	var b strings.Builder
	b.WriteString(titleStyle.Render("squire dashboard"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("press q to quit"))
		b.WriteString("\n")
		return b.String()
	}

	if !m.connected {
		b.WriteString(fmt.Sprintf("%s connecting...\n", m.spinner.View()))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("bot: %s\n\n", m.botID))

	b.WriteString(titleStyle.Render("Active games"))
	b.WriteString("\n")
	if len(m.games) == 0 {
		b.WriteString(mutedStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, g := range m.games {
		b.WriteString(fmt.Sprintf("  %s  (up %s)\n", g.id, time.Since(g.started).Round(time.Second)))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Recent events"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString(mutedStyle.Render("  none yet"))
		b.WriteString("\n")
	}
	for _, line := range m.recent {
		b.WriteString("  " + line + "\n")
	}

	if m.done {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("stream ended"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}
