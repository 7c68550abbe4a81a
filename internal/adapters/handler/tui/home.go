package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

type homeScreen struct {
	cursor int
}

func (s *homeScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	polls := m.state.Polls
	s.clamp(len(polls))

	switch {
	case key.Matches(keyMsg, homeKeys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, homeKeys.New):
		m.controller.OpenCreate()
	case key.Matches(keyMsg, homeKeys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, homeKeys.Down):
		if s.cursor < len(polls)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, homeKeys.Open):
		if len(polls) > 0 {
			if err := m.controller.OpenPoll(m.ctx, polls[s.cursor].Poll.ID); err != nil {
				m.logger.Debug().Err(err).Msg("poll not opened")
			}
		}
	case key.Matches(keyMsg, homeKeys.Delete):
		if len(polls) > 0 {
			if err := m.controller.DeletePoll(m.ctx, polls[s.cursor].Poll.ID); err != nil {
				m.logger.Debug().Err(err).Msg("delete ignored")
			}
			s.clamp(len(polls) - 1)
		}
	case key.Matches(keyMsg, homeKeys.Share):
		if len(polls) > 0 {
			return m.share(polls[s.cursor].Poll.ID)
		}
	}
	return nil
}

func (s *homeScreen) View(m *Model) string {
	var b strings.Builder
	b.WriteString("Quick Poll\n\n")

	polls := m.state.Polls
	s.clamp(len(polls))
	if len(polls) == 0 {
		b.WriteString("No polls yet. Press n to create one.\n")
	}

	for i, card := range polls {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, card.Poll.Question)
		fmt.Fprintf(&b, "    %d options · %s %s · %s",
			len(card.Poll.Options),
			humanize.Comma(int64(card.Poll.TotalVotes)),
			english.PluralWord(card.Poll.TotalVotes, "vote", ""),
			humanize.Time(card.Poll.CreatedAt),
		)
		if card.Copied {
			b.WriteString("  Copied!")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(homeKeys))
	b.WriteString("\n")
	return b.String()
}

func (s *homeScreen) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
