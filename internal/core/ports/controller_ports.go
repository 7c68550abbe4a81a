package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// State is a read-only snapshot of everything a view needs to render.
type State struct {
	View       domain.View
	Polls      []PollCard
	ActivePoll *PollCard
	Draft      domain.Draft
	CanCreate  bool
	CanAdd     bool
	CanRemove  bool
	CopiedID   uuid.UUID
}

type PollCard struct {
	Poll   *domain.Poll
	Result *domain.PollResult
	Copied bool
}

// Controller owns the navigation state on top of the poll services. Every
// operation is applied in full or not at all.
type Controller interface {
	OpenCreate()
	Cancel()
	UpdateQuestion(text string)
	AddDraftOption() bool
	RemoveDraftOption(index int) bool
	UpdateDraftOption(index int, text string) bool
	CreatePoll(ctx context.Context) (*domain.Poll, error)

	OpenPoll(ctx context.Context, id uuid.UUID) error
	Back()
	Vote(ctx context.Context, id uuid.UUID, optionIndex int) error
	DeletePoll(ctx context.Context, id uuid.UUID) error

	ShareLinkFor(loc domain.Location, id uuid.UUID) string
	CopyShareLink(ctx context.Context, loc domain.Location, id uuid.UUID) error
	MarkCopied(ctx context.Context, id uuid.UUID) error
	CopiedPollID() uuid.UUID

	Snapshot(ctx context.Context) (State, error)
}
