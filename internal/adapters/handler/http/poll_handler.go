package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type PollHandler struct {
	service    ports.PollService
	summaries  ports.SummaryService
	controller ports.Controller
	pagePath   string
	logger     zerolog.Logger
}

func NewPollHandler(
	service ports.PollService,
	summaries ports.SummaryService,
	controller ports.Controller,
	pagePath string,
	logger zerolog.Logger,
) *PollHandler {
	return &PollHandler{
		service:    service,
		summaries:  summaries,
		controller: controller,
		pagePath:   pagePath,
		logger:     logger,
	}
}

type createPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type shareLinkResponse struct {
	PollID uuid.UUID `json:"poll_id"`
	Link   string    `json:"link"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	poll, err := h.service.Create(r.Context(), ports.CreatePollInput{
		Question: req.Question,
		Options:  req.Options,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, poll)
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.ListPolls(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, polls)
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.GetPoll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, poll)
}

func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, domain.ErrInvalidPollID.Error())
		return
	}

	result, err := h.summaries.Summarize(r.Context(), pollID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *PollHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.summaries.SummarizeAll(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, results)
}

// DeletePoll goes through the controller so a poll open in the page view
// is closed along with it.
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, domain.ErrInvalidPollID.Error())
		return
	}

	if err := h.controller.DeletePoll(r.Context(), pollID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PollHandler) GetShareLink(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.GetPoll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	loc := requestLocation(r, h.pagePath)
	writeJSON(w, h.logger, http.StatusOK, shareLinkResponse{
		PollID: poll.ID,
		Link:   h.controller.ShareLinkFor(loc, poll.ID),
	})
}

func (h *PollHandler) writeServiceError(w http.ResponseWriter, err error) {
	writeServiceError(w, h.logger, err)
}

func writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDraft),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrInvalidPollID):
		writeError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPollNotFound):
		writeError(w, logger, http.StatusNotFound, err.Error())
	default:
		logger.Error().Err(err).Msg("request failed")
		writeError(w, logger, http.StatusInternalServerError, "internal error")
	}
}
