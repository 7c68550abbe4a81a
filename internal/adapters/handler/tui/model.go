package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

// screen draws one of the three views and handles the messages received
// while it is shown. State always comes from the controller; a screen only
// keeps its own cursor and input widgets.
type screen interface {
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model) string
}

type ackExpiredMsg struct{}

type Model struct {
	ctx        context.Context
	controller ports.Controller
	location   domain.Location
	logger     zerolog.Logger

	state   ports.State
	screens map[domain.View]screen
	help    help.Model
	width   int
}

func New(ctx context.Context, controller ports.Controller, location domain.Location, logger zerolog.Logger) *Model {
	m := &Model{
		ctx:        ctx,
		controller: controller,
		location:   location,
		logger:     logger.With().Str("handler", "tui").Logger(),
		screens: map[domain.View]screen{
			domain.ViewHome:   &homeScreen{},
			domain.ViewCreate: &createScreen{},
			domain.ViewPoll:   &pollScreen{},
		},
		help:  help.New(),
		width: 80,
	}
	m.refresh()
	return m
}

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, controller ports.Controller, location domain.Location, logger zerolog.Logger) error {
	p := tea.NewProgram(New(ctx, controller, location, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, forceQuit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case ackExpiredMsg:
		m.refresh()
		return m, nil
	}

	cmd := m.screens[m.state.View].Update(m, msg)
	m.refresh()
	return m, cmd
}

func (m *Model) View() string {
	return m.screens[m.state.View].View(m)
}

// State is the snapshot the next frame is drawn from.
func (m *Model) State() ports.State {
	return m.state
}

func (m *Model) refresh() {
	state, err := m.controller.Snapshot(m.ctx)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to read state")
		return
	}
	m.state = state
}

// share copies the link and schedules a redraw for when the "Copied!"
// acknowledgment runs out.
func (m *Model) share(pollID uuid.UUID) tea.Cmd {
	if err := m.controller.CopyShareLink(m.ctx, m.location, pollID); err != nil {
		return nil
	}
	return tea.Tick(domain.CopyAckDuration, func(time.Time) tea.Msg {
		return ackExpiredMsg{}
	})
}
