package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"votes": func(n int) string {
		return humanize.Comma(int64(n)) + " " + english.PluralWord(n, "vote", "")
	},
	"ago":   humanize.Time,
	"stamp": func(t time.Time) string { return t.Format("Jan 2, 2006 3:04 PM") },
}

// PageHandler serves the single HTML page. Every action is a form post
// that changes the controller state and redirects back to the page.
type PageHandler struct {
	controller ports.Controller
	pagePath   string
	base       string
	tmpl       *template.Template
	logger     zerolog.Logger
}

type pageData struct {
	ports.State
	Base        string
	ShareLink   string
	Links       map[uuid.UUID]string
	RefreshSecs int
}

func NewPageHandler(controller ports.Controller, pagePath string, logger zerolog.Logger) (*PageHandler, error) {
	tmpl, err := template.New("quickpoll").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	if pagePath == "" {
		pagePath = "/"
	}

	return &PageHandler{
		controller: controller,
		pagePath:   pagePath,
		base:       strings.TrimSuffix(pagePath, "/") + "/",
		tmpl:       tmpl,
		logger:     logger.With().Str("handler", "page").Logger(),
	}, nil
}

func (h *PageHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Render)
	r.Post("/create", h.OpenCreate)
	r.Post("/draft", h.SubmitDraft)
	r.Post("/back", h.Back)

	r.Route("/polls/{id}", func(r chi.Router) {
		r.Post("/open", h.OpenPoll)
		r.Post("/vote/{index}", h.Vote)
		r.Post("/delete", h.Delete)
		r.Post("/share", h.Share)
	})

	return r
}

// Render draws the current view. A ?poll=<id> query opens that poll first
// and then redirects to the bare page.
func (h *PageHandler) Render(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("poll"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			if err := h.controller.OpenPoll(r.Context(), id); err != nil {
				h.logger.Debug().Err(err).Str("poll_id", raw).Msg("shared poll not opened")
			}
		}
		h.redirect(w, r)
		return
	}

	state, err := h.controller.Snapshot(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read state")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	loc := requestLocation(r, h.pagePath)
	data := pageData{State: state, Base: h.base, Links: make(map[uuid.UUID]string, len(state.Polls))}
	for _, card := range state.Polls {
		data.Links[card.Poll.ID] = h.controller.ShareLinkFor(loc, card.Poll.ID)
	}
	if state.ActivePoll != nil {
		data.ShareLink = h.controller.ShareLinkFor(loc, state.ActivePoll.Poll.ID)
	}
	if state.CopiedID != uuid.Nil {
		data.RefreshSecs = int(domain.CopyAckDuration / time.Second)
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		h.logger.Error().Err(err).Msg("failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

func (h *PageHandler) OpenCreate(w http.ResponseWriter, r *http.Request) {
	h.controller.OpenCreate()
	h.redirect(w, r)
}

// SubmitDraft copies the form fields into the draft and then applies the
// pressed button: add, remove:<index>, submit or cancel. Anything else only
// saves the draft.
func (h *PageHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	action := r.PostForm.Get("action")
	if action == "cancel" {
		h.controller.Cancel()
		h.redirect(w, r)
		return
	}

	h.controller.UpdateQuestion(r.PostForm.Get("question"))
	for i, text := range r.PostForm["option"] {
		h.controller.UpdateDraftOption(i, text)
	}

	switch {
	case action == "add":
		h.controller.AddDraftOption()
	case strings.HasPrefix(action, "remove:"):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, "remove:")); err == nil {
			h.controller.RemoveDraftOption(i)
		}
	case action == "submit":
		if _, err := h.controller.CreatePoll(r.Context()); err != nil && !errors.Is(err, domain.ErrInvalidDraft) {
			h.logger.Error().Err(err).Msg("failed to create poll")
		}
	}

	h.redirect(w, r)
}

func (h *PageHandler) OpenPoll(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pollID(r); ok {
		if err := h.controller.OpenPoll(r.Context(), id); err != nil {
			h.logger.Debug().Err(err).Stringer("poll_id", id).Msg("poll not opened")
		}
	}
	h.redirect(w, r)
}

func (h *PageHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.controller.Back()
	h.redirect(w, r)
}

func (h *PageHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pollID(r)
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if ok && err == nil {
		if err := h.controller.Vote(r.Context(), id, index); err != nil {
			h.logger.Debug().Err(err).Stringer("poll_id", id).Int("option_index", index).Msg("vote ignored")
		}
	}
	h.redirect(w, r)
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.pollID(r); ok {
		if err := h.controller.DeletePoll(r.Context(), id); err != nil {
			h.logger.Debug().Err(err).Stringer("poll_id", id).Msg("delete ignored")
		}
	}
	h.redirect(w, r)
}

// Share records a copy made by the browser. The page script writes the link
// to the visitor's clipboard and posts copied=1 on success. Without it the
// poll is opened so the link field can be copied by hand.
func (h *PageHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pollID(r)
	if !ok {
		h.redirect(w, r)
		return
	}

	if r.PostFormValue("copied") == "1" {
		if err := h.controller.MarkCopied(r.Context(), id); err != nil {
			h.logger.Debug().Err(err).Stringer("poll_id", id).Msg("copy not acknowledged")
		}
	} else if err := h.controller.OpenPoll(r.Context(), id); err != nil {
		h.logger.Debug().Err(err).Stringer("poll_id", id).Msg("shared poll not opened")
	}
	h.redirect(w, r)
}

func (h *PageHandler) pollID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *PageHandler) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.pagePath, http.StatusSeeOther)
}
