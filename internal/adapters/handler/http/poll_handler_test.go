package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

func TestCreatePollAPI(t *testing.T) {
	t.Run("valid poll", func(t *testing.T) {
		srv := setupTestServer(t, "/")

		rec := srv.do(t, http.MethodPost, "/api/polls", `{"question":"Lunch?","options":["Pizza","Sushi","Tacos"]}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var poll domain.Poll
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &poll))
		assert.NotEqual(t, uuid.Nil, poll.ID)
		assert.Equal(t, "Lunch?", poll.Question)
		require.Len(t, poll.Options, 3)
		assert.Equal(t, 0, poll.TotalVotes)

		// Creating through the API does not navigate the page.
		assert.Equal(t, domain.ViewHome, srv.state(t).View)
	})

	t.Run("blank option", func(t *testing.T) {
		srv := setupTestServer(t, "/")

		rec := srv.do(t, http.MethodPost, "/api/polls", `{"question":"Lunch?","options":["Pizza","  "]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, srv.state(t).Polls)
	})

	t.Run("too many options", func(t *testing.T) {
		srv := setupTestServer(t, "/")

		rec := srv.do(t, http.MethodPost, "/api/polls", `{"question":"Q","options":["1","2","3","4","5","6","7"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := setupTestServer(t, "/")

		rec := srv.do(t, http.MethodPost, "/api/polls", `{"question":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPollAPI(t *testing.T) {
	srv := setupTestServer(t, "/")
	poll, err := srv.polls.Create(context.Background(), ports.CreatePollInput{Question: "Tabs?", Options: []string{"Yes", "No"}})
	require.NoError(t, err)

	rec := srv.do(t, http.MethodGet, "/api/polls/"+poll.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Poll
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, poll.ID, got.ID)

	rec = srv.do(t, http.MethodGet, "/api/polls/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/polls/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPollsAPI(t *testing.T) {
	srv := setupTestServer(t, "/")
	ctx := context.Background()

	first, err := srv.polls.Create(ctx, ports.CreatePollInput{Question: "First", Options: []string{"a", "b"}})
	require.NoError(t, err)
	second, err := srv.polls.Create(ctx, ports.CreatePollInput{Question: "Second", Options: []string{"a", "b"}})
	require.NoError(t, err)

	rec := srv.do(t, http.MethodGet, "/api/polls", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var polls []domain.Poll
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &polls))
	require.Len(t, polls, 2)
	assert.Equal(t, second.ID, polls[0].ID)
	assert.Equal(t, first.ID, polls[1].ID)
}

func TestDeletePollAPI(t *testing.T) {
	srv := setupTestServer(t, "/")
	ctx := context.Background()
	poll, err := srv.polls.Create(ctx, ports.CreatePollInput{Question: "Tabs?", Options: []string{"Yes", "No"}})
	require.NoError(t, err)
	require.NoError(t, srv.controller.OpenPoll(ctx, poll.ID))

	rec := srv.do(t, http.MethodDelete, "/api/polls/"+poll.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	state := srv.state(t)
	assert.Empty(t, state.Polls)
	assert.Equal(t, domain.ViewHome, state.View)
	assert.Nil(t, state.ActivePoll)

	rec = srv.do(t, http.MethodDelete, "/api/polls/"+poll.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShareLinkAPI(t *testing.T) {
	srv := setupTestServer(t, "/app")
	poll, err := srv.polls.Create(context.Background(), ports.CreatePollInput{Question: "Tabs?", Options: []string{"Yes", "No"}})
	require.NoError(t, err)

	rec := srv.do(t, http.MethodGet, "/api/polls/"+poll.ID.String()+"/share", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp shareLinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, poll.ID, resp.PollID)
	assert.Equal(t, "http://example.com/app?poll="+poll.ID.String(), resp.Link)
}

func TestResultsAPI(t *testing.T) {
	srv := setupTestServer(t, "/")
	ctx := context.Background()
	poll, err := srv.polls.Create(ctx, ports.CreatePollInput{Question: "Tabs?", Options: []string{"Yes", "No", "Maybe"}})
	require.NoError(t, err)
	require.NoError(t, srv.controller.Vote(ctx, poll.ID, 0))
	require.NoError(t, srv.controller.Vote(ctx, poll.ID, 0))
	require.NoError(t, srv.controller.Vote(ctx, poll.ID, 1))

	rec := srv.do(t, http.MethodGet, "/api/polls/"+poll.ID.String()+"/results", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.PollResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.TotalVotes)
	assert.Equal(t, []int{0}, result.Leaders)
	assert.Equal(t, 67, result.Options[0].Percentage)
	assert.Equal(t, 33, result.Options[1].Percentage)
	assert.Equal(t, 0, result.Options[2].Percentage)

	rec = srv.do(t, http.MethodGet, "/api/results", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var all []domain.PollResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, poll.ID, all[0].PollID)
}

func TestCORS(t *testing.T) {
	srv := setupTestServer(t, "/")

	req := httptest.NewRequest(http.MethodOptions, "/api/polls", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := serve(srv, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/polls", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = serve(srv, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	srv := setupTestServer(t, "/")

	rec := srv.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(t, "/", zerolog.New(&logs))

	rec := srv.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	requestID := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, requestID)

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, requestID, entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/health", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 2, entry["bytes"])
}
