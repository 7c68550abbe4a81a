package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeClipboard struct {
	mu     sync.Mutex
	err    error
	writes []string
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

type testApp struct {
	repo       ports.PollRepository
	polls      ports.PollService
	votes      ports.VoteService
	summaries  ports.SummaryService
	controller ports.Controller
	clock      *fakeClock
	clipboard  *fakeClipboard
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zerolog.Nop()
	clock := newFakeClock()
	clip := &fakeClipboard{}
	repo := memory.NewPollRepository()
	polls := NewPollService(repo, clock, logger)
	votes := NewVoteService(repo, logger)

	return &testApp{
		repo:       repo,
		polls:      polls,
		votes:      votes,
		summaries:  NewSummaryService(repo),
		controller: NewController(polls, votes, clip, clock, logger),
		clock:      clock,
		clipboard:  clip,
	}
}
