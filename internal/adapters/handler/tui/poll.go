package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

type pollScreen struct{}

func (s *pollScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	active := m.state.ActivePoll
	if !ok || active == nil {
		return nil
	}

	switch {
	case key.Matches(keyMsg, pollKeys.Back):
		m.controller.Back()
	case key.Matches(keyMsg, pollKeys.Share):
		return m.share(active.Poll.ID)
	case key.Matches(keyMsg, pollKeys.Delete):
		if err := m.controller.DeletePoll(m.ctx, active.Poll.ID); err != nil {
			m.logger.Debug().Err(err).Msg("delete ignored")
		}
	case key.Matches(keyMsg, pollKeys.Vote):
		index := int(keyMsg.String()[0] - '1')
		if err := m.controller.Vote(m.ctx, active.Poll.ID, index); err != nil {
			m.logger.Debug().Err(err).Int("option_index", index).Msg("vote ignored")
		}
	}
	return nil
}

func (s *pollScreen) View(m *Model) string {
	active := m.state.ActivePoll
	if active == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", active.Poll.Question)
	fmt.Fprintf(&b, "Created %s\n\n", active.Poll.CreatedAt.Format("Jan 2, 2006 3:04 PM"))

	barWidth := max(m.width-40, 10)
	for _, opt := range active.Result.Options {
		filled := barWidth * opt.Percentage / 100
		fmt.Fprintf(&b, "%d. %s\n   %s%s %3d%% (%s)\n",
			opt.Index+1,
			opt.Text,
			strings.Repeat("█", filled),
			strings.Repeat("░", barWidth-filled),
			opt.Percentage,
			humanize.Comma(int64(opt.VoteCount)),
		)
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", humanize.Comma(int64(active.Result.TotalVotes)))
	fmt.Fprintf(&b, "Share: %s", m.controller.ShareLinkFor(m.location, active.Poll.ID))
	if active.Copied {
		b.WriteString("  Copied!")
	}

	keys := pollKeys
	keys.Vote.SetHelp(fmt.Sprintf("1-%d", len(active.Poll.Options)), "vote")
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}
