package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// createScreen edits the draft. Field 0 is the question, field i>0 is
// option i-1. The inputs mirror the controller draft and push every edit
// back to it.
type createScreen struct {
	focus  int
	inputs []textinput.Model
}

func newField(i int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	if i == 0 {
		in.Placeholder = "What do you want to ask?"
	} else {
		in.Placeholder = fmt.Sprintf("Option %d", i)
	}
	return in
}

func (s *createScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	s.sync(m)
	fields := len(s.inputs)

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, createKeys.Cancel):
		m.controller.Cancel()
		s.focus = 0
	case key.Matches(keyMsg, createKeys.Submit):
		if _, err := m.controller.CreatePoll(m.ctx); err == nil {
			s.focus = 0
		} else if !errors.Is(err, domain.ErrInvalidDraft) {
			m.logger.Error().Err(err).Msg("failed to create poll")
		}
	case key.Matches(keyMsg, createKeys.Next):
		s.focus = (s.focus + 1) % fields
	case key.Matches(keyMsg, createKeys.Prev):
		s.focus = (s.focus + fields - 1) % fields
	case key.Matches(keyMsg, createKeys.Add):
		if m.controller.AddDraftOption() {
			s.focus = fields
		}
	case key.Matches(keyMsg, createKeys.Remove):
		if s.focus > 0 && m.controller.RemoveDraftOption(s.focus-1) {
			s.clamp(fields - 1)
		}
	default:
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(keyMsg)
		s.push(m)
		return cmd
	}
	return nil
}

// sync sizes the inputs to the draft and copies in any value the
// controller changed, such as after a removal or a cancel.
func (s *createScreen) sync(m *Model) {
	draft := m.state.Draft
	values := append([]string{draft.Question}, draft.Options...)

	for len(s.inputs) < len(values) {
		s.inputs = append(s.inputs, newField(len(s.inputs)))
	}
	s.inputs = s.inputs[:len(values)]
	s.clamp(len(values))

	for i := range s.inputs {
		if s.inputs[i].Value() != values[i] {
			s.inputs[i].SetValue(values[i])
		}
		if i == s.focus {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s *createScreen) push(m *Model) {
	value := s.inputs[s.focus].Value()
	if s.focus == 0 {
		m.controller.UpdateQuestion(value)
		return
	}
	m.controller.UpdateDraftOption(s.focus-1, value)
}

func (s *createScreen) View(m *Model) string {
	s.sync(m)

	var b strings.Builder
	b.WriteString("Create Poll\n\n")
	fmt.Fprintf(&b, "%sQuestion: %s\n\n", s.cursor(0), s.inputs[0].View())
	for i := 1; i < len(s.inputs); i++ {
		fmt.Fprintf(&b, "%sOption %d: %s\n", s.cursor(i), i, s.inputs[i].View())
	}

	b.WriteString("\n")
	if !m.state.CanCreate {
		b.WriteString("fill in the question and every option to create\n")
	}

	keys := createKeys
	keys.Submit.SetEnabled(m.state.CanCreate)
	keys.Add.SetEnabled(m.state.CanAdd)
	keys.Remove.SetEnabled(m.state.CanRemove)
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (s *createScreen) cursor(field int) string {
	if field == s.focus {
		return "> "
	}
	return "  "
}

func (s *createScreen) clamp(fields int) {
	if s.focus >= fields {
		s.focus = fields - 1
	}
	if s.focus < 0 {
		s.focus = 0
	}
}
