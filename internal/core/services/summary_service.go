package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type summaryService struct {
	pollRepo ports.PollRepository
}

func NewSummaryService(pollRepo ports.PollRepository) ports.SummaryService {
	return &summaryService{
		pollRepo: pollRepo,
	}
}

func (s *summaryService) Summarize(ctx context.Context, pollID uuid.UUID) (*domain.PollResult, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	return domain.NewPollResult(poll), nil
}

func (s *summaryService) SummarizeAll(ctx context.Context) ([]*domain.PollResult, error) {
	polls, err := s.pollRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all polls: %w", err)
	}

	results := make([]*domain.PollResult, 0, len(polls))
	for _, poll := range polls {
		results = append(results, domain.NewPollResult(poll))
	}

	return results, nil
}
