package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type pollRepository struct {
	mu    sync.RWMutex
	polls []*domain.Poll
}

// NewPollRepository returns an empty poll list kept in process memory.
// Nothing survives a restart.
func NewPollRepository() ports.PollRepository {
	return &pollRepository{}
}

// Save prepends the poll so the list stays newest first.
func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(poll.ID) >= 0 {
		return fmt.Errorf("poll with ID %s already exists", poll.ID)
	}

	r.polls = slices.Insert(r.polls, 0, poll.Clone())
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrPollNotFound
	}
	return r.polls[i].Clone(), nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	polls := make([]*domain.Poll, 0, len(r.polls))
	for _, p := range r.polls {
		polls = append(polls, p.Clone())
	}
	return polls, nil
}

// Vote bumps the option and the poll total inside one critical section so
// readers never see them disagree.
func (r *pollRepository) Vote(ctx context.Context, id uuid.UUID, optionIndex int) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrPollNotFound
	}

	poll := r.polls[i]
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return nil, domain.ErrInvalidOption
	}

	poll.Options[optionIndex].Votes++
	poll.TotalVotes++
	return poll.Clone(), nil
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrPollNotFound
	}

	r.polls = slices.Delete(r.polls, i, i+1)
	return nil
}

func (r *pollRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.polls, func(p *domain.Poll) bool {
		return p.ID == id
	})
}
