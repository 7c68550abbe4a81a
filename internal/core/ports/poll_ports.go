package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// PollRepository holds the poll list, newest first. Implementations hand
// out copies; mutating a returned poll never changes stored state.
type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	Vote(ctx context.Context, id uuid.UUID, optionIndex int) (*domain.Poll, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatePollInput struct {
	Question string
	Options  []string
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, id string) (*domain.Poll, error)
	ListPolls(ctx context.Context) ([]*domain.Poll, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
