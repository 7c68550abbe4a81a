package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type pollService struct {
	repo   ports.PollRepository
	clock  ports.Clock
	logger zerolog.Logger
}

func NewPollService(repo ports.PollRepository, clock ports.Clock, logger zerolog.Logger) ports.PollService {
	return &pollService{
		repo:   repo,
		clock:  clock,
		logger: logger.With().Str("service", "poll").Logger(),
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	if !domain.ValidPoll(input.Question, input.Options) {
		return nil, domain.ErrInvalidDraft
	}

	poll, err := domain.NewPoll(input.Question, input.Options, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate poll id: %w", err)
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("poll_id", poll.ID.String()).
		Int("options", len(poll.Options)).
		Msg("poll created")

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	return s.repo.GetByID(ctx, pollID)
}

func (s *pollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

func (s *pollService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("poll_id", id.String()).Msg("poll deleted")
	return nil
}
