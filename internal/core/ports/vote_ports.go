package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type VoteInput struct {
	PollID      uuid.UUID
	OptionIndex int
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Poll, error)
}
