package integration

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpoll/internal/adapters/clipboard"
	handler "github.com/vncsmyrnk/quickpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpoll/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
	"github.com/vncsmyrnk/quickpoll/internal/core/services"
)

type TestApp struct {
	Server     *httptest.Server
	Client     *http.Client
	Controller ports.Controller
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	logger := zerolog.Nop()
	clock := services.SystemClock()

	pollRepo := memory.NewPollRepository()
	pollSvc := services.NewPollService(pollRepo, clock, logger)
	voteSvc := services.NewVoteService(pollRepo, logger)
	summarySvc := services.NewSummaryService(pollRepo)
	controller := services.NewController(
		pollSvc,
		voteSvc,
		clipboard.NewFallback(logger, clipboard.NewOSC52(io.Discard)),
		clock,
		logger,
	)

	pageHandler, err := handler.NewPageHandler(controller, "/", logger)
	require.NoError(t, err)

	router := handler.NewHandler(
		handler.RouterConfig{PagePath: "/", AllowedOrigins: []string{"*"}},
		pageHandler,
		handler.NewPollHandler(pollSvc, summarySvc, controller, "/", logger),
		handler.NewVoteHandler(controller, summarySvc, logger),
		logger,
	)

	server := httptest.NewServer(router)

	return &TestApp{
		Server:     server,
		Client:     server.Client(),
		Controller: controller,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
}

func (app *TestApp) postJSON(t *testing.T, path string, payload any, out any) int {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := app.Client.Post(app.Server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (app *TestApp) getJSON(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := app.Client.Get(app.Server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// submit posts a page form and returns the page it redirects to.
func (app *TestApp) submit(t *testing.T, path string, form url.Values) string {
	t.Helper()

	resp, err := app.Client.Post(app.Server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func (app *TestApp) page(t *testing.T, path string) string {
	t.Helper()

	resp, err := app.Client.Get(app.Server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
