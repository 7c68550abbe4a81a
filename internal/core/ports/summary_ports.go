package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

type SummaryService interface {
	Summarize(ctx context.Context, pollID uuid.UUID) (*domain.PollResult, error)
	SummarizeAll(ctx context.Context) ([]*domain.PollResult, error)
}
