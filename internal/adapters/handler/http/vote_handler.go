package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type VoteHandler struct {
	controller ports.Controller
	summaries  ports.SummaryService
	logger     zerolog.Logger
}

func NewVoteHandler(controller ports.Controller, summaries ports.SummaryService, logger zerolog.Logger) *VoteHandler {
	return &VoteHandler{
		controller: controller,
		summaries:  summaries,
		logger:     logger,
	}
}

type voteRequest struct {
	OptionIndex *int `json:"option_index"`
}

// VoteOnPoll records one vote and answers with the updated results.
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, domain.ErrInvalidPollID.Error())
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil || req.OptionIndex == nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.controller.Vote(r.Context(), pollID, *req.OptionIndex); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	result, err := h.summaries.Summarize(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, result)
}
