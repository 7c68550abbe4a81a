package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// TestPollFlow walks the page the way a user would: open the form, fill it
// in, create the poll, vote on it, share it and delete it.
func TestPollFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Step 1: Open the create form
	body := app.submit(t, "/create", nil)
	assert.Contains(t, body, "Create Poll")
	assert.Contains(t, body, `name="question"`)

	// Step 2: Add a third option and create the poll
	body = app.submit(t, "/draft", url.Values{
		"action":   {"add"},
		"question": {"Where should we eat?"},
		"option":   {"Pizza", "Sushi"},
	})
	assert.Contains(t, body, "Option 3")

	body = app.submit(t, "/draft", url.Values{
		"action":   {"submit"},
		"question": {"Where should we eat?"},
		"option":   {"Pizza", "Sushi", "Tacos"},
	})
	assert.Contains(t, body, "Where should we eat?")
	assert.Contains(t, body, "3 options")

	state, err := app.Controller.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, state.Polls, 1)
	pollID := state.Polls[0].Poll.ID

	// Step 3: View and vote
	app.submit(t, fmt.Sprintf("/polls/%s/open", pollID), nil)
	app.submit(t, fmt.Sprintf("/polls/%s/vote/0", pollID), nil)
	body = app.submit(t, fmt.Sprintf("/polls/%s/vote/1", pollID), nil)
	assert.Contains(t, body, "50%")
	assert.Contains(t, body, "2 votes")

	// Step 4: Share. The browser copies the link and reports it.
	link := app.Server.URL + "/?poll=" + pollID.String()
	body = app.submit(t, fmt.Sprintf("/polls/%s/share", pollID), url.Values{"copied": {"1"}})
	assert.Contains(t, body, `data-link="`+link+`"`)
	assert.Contains(t, body, "Copied!")

	// Step 5: Delete the open poll
	body = app.submit(t, fmt.Sprintf("/polls/%s/delete", pollID), nil)
	assert.Contains(t, body, "No polls yet")
}

func TestCreateGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"blank question", map[string]any{"question": "  ", "options": []string{"a", "b"}}},
		{"blank option", map[string]any{"question": "Q", "options": []string{"a", ""}}},
		{"one option", map[string]any{"question": "Q", "options": []string{"a"}}},
		{"seven options", map[string]any{"question": "Q", "options": []string{"1", "2", "3", "4", "5", "6", "7"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := app.postJSON(t, "/api/polls", tt.payload, nil)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}

	var polls []domain.Poll
	require.Equal(t, http.StatusOK, app.getJSON(t, "/api/polls", &polls))
	assert.Empty(t, polls)
}

func TestListPolls(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	var created []uuid.UUID
	for i := 0; i < 3; i++ {
		var poll domain.Poll
		status := app.postJSON(t, "/api/polls", map[string]any{
			"question": fmt.Sprintf("Poll %d", i),
			"options":  []string{"yes", "no"},
		}, &poll)
		require.Equal(t, http.StatusCreated, status)
		created = append(created, poll.ID)
	}

	var polls []domain.Poll
	require.Equal(t, http.StatusOK, app.getJSON(t, "/api/polls", &polls))
	require.Len(t, polls, 3)

	// Newest first.
	assert.Equal(t, created[2], polls[0].ID)
	assert.Equal(t, created[1], polls[1].ID)
	assert.Equal(t, created[0], polls[2].ID)

	body := app.page(t, "/")
	assert.Contains(t, body, "Poll 0")
	assert.Contains(t, body, "Poll 2")
}

func TestShareLinkOpensPoll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	var poll domain.Poll
	require.Equal(t, http.StatusCreated, app.postJSON(t, "/api/polls", map[string]any{
		"question": "Shared question",
		"options":  []string{"yes", "no"},
	}, &poll))

	var share struct {
		Link string `json:"link"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, "/api/polls/"+poll.ID.String()+"/share", &share))
	assert.Equal(t, app.Server.URL+"/?poll="+poll.ID.String(), share.Link)

	resp, err := app.Client.Get(share.Link)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", resp.Request.URL.Path)

	state, err := app.Controller.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ViewPoll, state.View)
	require.NotNil(t, state.ActivePoll)
	assert.Equal(t, poll.ID, state.ActivePoll.Poll.ID)
}
