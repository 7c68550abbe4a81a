package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
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

func (c *fakeClipboard) last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.writes) == 0 {
		return ""
	}
	return c.writes[len(c.writes)-1]
}

type testServer struct {
	handler    http.Handler
	controller ports.Controller
	polls      ports.PollService
	clock      *fakeClock
	clipboard  *fakeClipboard
}

func setupTestServer(t *testing.T, pagePath string) *testServer {
	t.Helper()
	return newTestServer(t, pagePath, zerolog.Nop())
}

func newTestServer(t *testing.T, pagePath string, logger zerolog.Logger) *testServer {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)}
	clip := &fakeClipboard{}
	repo := memory.NewPollRepository()
	polls := services.NewPollService(repo, clock, logger)
	votes := services.NewVoteService(repo, logger)
	summaries := services.NewSummaryService(repo)
	controller := services.NewController(polls, votes, clip, clock, logger)

	pageHandler, err := NewPageHandler(controller, pagePath, logger)
	require.NoError(t, err)

	handler := NewHandler(
		RouterConfig{PagePath: pagePath, AllowedOrigins: []string{"https://example.com"}},
		pageHandler,
		NewPollHandler(polls, summaries, controller, pagePath, logger),
		NewVoteHandler(controller, summaries, logger),
		logger,
	)

	return &testServer{
		handler:    handler,
		controller: controller,
		polls:      polls,
		clock:      clock,
		clipboard:  clip,
	}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) state(t *testing.T) ports.State {
	t.Helper()

	state, err := s.controller.Snapshot(context.Background())
	require.NoError(t, err)
	return state
}
