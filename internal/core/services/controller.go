package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type copyMarker struct {
	pollID    uuid.UUID
	expiresAt time.Time
}

type controller struct {
	polls     ports.PollService
	votes     ports.VoteService
	clipboard ports.Clipboard
	clock     ports.Clock
	logger    zerolog.Logger

	mu           sync.Mutex
	view         domain.View
	activePollID uuid.UUID
	draft        domain.Draft
	copied       copyMarker
}

func NewController(
	polls ports.PollService,
	votes ports.VoteService,
	clipboard ports.Clipboard,
	clock ports.Clock,
	logger zerolog.Logger,
) ports.Controller {
	return &controller{
		polls:     polls,
		votes:     votes,
		clipboard: clipboard,
		clock:     clock,
		logger:    logger.With().Str("component", "controller").Logger(),
		view:      domain.ViewHome,
		draft:     domain.NewDraft(),
	}
}

func (c *controller) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view != domain.ViewHome {
		return
	}
	c.navigate(domain.ViewCreate)
}

func (c *controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view != domain.ViewCreate {
		return
	}
	c.draft = domain.NewDraft()
	c.navigate(domain.ViewHome)
}

func (c *controller) UpdateQuestion(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.Question = text
}

func (c *controller) AddDraftOption() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft.AddOption()
}

func (c *controller) RemoveDraftOption(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft.RemoveOption(index)
}

func (c *controller) UpdateDraftOption(index int, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft.UpdateOption(index, text)
}

func (c *controller) CreatePoll(ctx context.Context) (*domain.Poll, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	poll, err := c.polls.Create(ctx, ports.CreatePollInput{
		Question: c.draft.Question,
		Options:  append([]string(nil), c.draft.Options...),
	})
	if err != nil {
		return nil, err
	}

	c.draft = domain.NewDraft()
	c.activePollID = uuid.Nil
	c.navigate(domain.ViewHome)
	return poll, nil
}

func (c *controller) OpenPoll(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.polls.GetPoll(ctx, id.String()); err != nil {
		return err
	}

	c.activePollID = id
	c.navigate(domain.ViewPoll)
	return nil
}

// Back returns to the home view. Leaving the create view this way
// discards the draft, same as Cancel.
func (c *controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view == domain.ViewCreate {
		c.draft = domain.NewDraft()
	}
	c.activePollID = uuid.Nil
	c.navigate(domain.ViewHome)
}

func (c *controller) Vote(ctx context.Context, id uuid.UUID, optionIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.votes.Vote(ctx, ports.VoteInput{PollID: id, OptionIndex: optionIndex})
	return err
}

func (c *controller) DeletePoll(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.polls.Delete(ctx, id); err != nil {
		return err
	}

	if c.view == domain.ViewPoll && c.activePollID == id {
		c.activePollID = uuid.Nil
		c.navigate(domain.ViewHome)
	}
	return nil
}

func (c *controller) ShareLinkFor(loc domain.Location, id uuid.UUID) string {
	return domain.ShareLink(loc, id)
}

// CopyShareLink writes the share link to the clipboard and marks the poll
// as copied for domain.CopyAckDuration. The clipboard is written outside
// the lock so a slow clipboard never blocks other operations.
func (c *controller) CopyShareLink(ctx context.Context, loc domain.Location, id uuid.UUID) error {
	link := domain.ShareLink(loc, id)

	if err := c.clipboard.WriteText(ctx, link); err != nil {
		c.logger.Warn().Err(err).Str("poll_id", id.String()).Msg("share link not copied")
		return fmt.Errorf("failed to copy share link: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.markCopied(id)
	c.logger.Info().Str("poll_id", id.String()).Str("link", link).Msg("share link copied")
	return nil
}

// MarkCopied acknowledges a copy made outside the process, such as by the
// browser showing the page. Unknown polls are left unmarked.
func (c *controller) MarkCopied(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.polls.GetPoll(ctx, id.String()); err != nil {
		return err
	}

	c.markCopied(id)
	c.logger.Debug().Str("poll_id", id.String()).Msg("share link copied by client")
	return nil
}

func (c *controller) markCopied(id uuid.UUID) {
	c.copied = copyMarker{
		pollID:    id,
		expiresAt: c.clock.Now().Add(domain.CopyAckDuration),
	}
}

func (c *controller) CopiedPollID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.copiedPollID()
}

func (c *controller) copiedPollID() uuid.UUID {
	if c.copied.pollID == uuid.Nil || !c.clock.Now().Before(c.copied.expiresAt) {
		return uuid.Nil
	}
	return c.copied.pollID
}

func (c *controller) Snapshot(ctx context.Context) (ports.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	polls, err := c.polls.ListPolls(ctx)
	if err != nil {
		return ports.State{}, err
	}

	copiedID := c.copiedPollID()
	state := ports.State{
		Polls:     make([]ports.PollCard, 0, len(polls)),
		Draft:     c.draft.Clone(),
		CanCreate: c.draft.Valid(),
		CanAdd:    c.draft.CanAddOption(),
		CanRemove: c.draft.CanRemoveOption(),
		CopiedID:  copiedID,
	}

	for _, poll := range polls {
		card := ports.PollCard{
			Poll:   poll,
			Result: domain.NewPollResult(poll),
			Copied: copiedID != uuid.Nil && poll.ID == copiedID,
		}
		state.Polls = append(state.Polls, card)
		if c.view == domain.ViewPoll && poll.ID == c.activePollID {
			active := card
			state.ActivePoll = &active
		}
	}

	// The active poll is looked up by id on every render; if it is gone the
	// poll view has nothing to show.
	if c.view == domain.ViewPoll && state.ActivePoll == nil {
		c.activePollID = uuid.Nil
		c.navigate(domain.ViewHome)
	}

	state.View = c.view
	return state, nil
}

func (c *controller) navigate(to domain.View) {
	if c.view == to {
		return
	}
	c.logger.Debug().Stringer("from", c.view).Stringer("to", to).Msg("view changed")
	c.view = to
}
