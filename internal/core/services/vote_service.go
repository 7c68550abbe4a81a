package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	logger   zerolog.Logger
}

func NewVoteService(pollRepo ports.PollRepository, logger zerolog.Logger) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		logger:   logger.With().Str("service", "vote").Logger(),
	}
}

// Vote adds one vote to the chosen option. The same caller may vote any
// number of times.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Poll, error) {
	poll, err := s.pollRepo.Vote(ctx, input.PollID, input.OptionIndex)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("poll_id", input.PollID.String()).
		Int("option_index", input.OptionIndex).
		Int("total_votes", poll.TotalVotes).
		Msg("vote recorded")

	return poll, nil
}
