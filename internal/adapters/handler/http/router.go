package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type RouterConfig struct {
	PagePath       string
	AllowedOrigins []string
}

func NewHandler(
	cfg RouterConfig,
	pageHandler *PageHandler,
	pollHandler *PollHandler,
	voteHandler *VoteHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(CORS(cfg.AllowedOrigins))

		r.Get("/results", pollHandler.ListResults)

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.ListPolls)
			r.Post("/", pollHandler.CreatePoll)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", pollHandler.GetPoll)
				r.Delete("/", pollHandler.DeletePoll)
				r.Get("/results", pollHandler.GetResults)
				r.Get("/share", pollHandler.GetShareLink)
				r.Post("/votes", voteHandler.VoteOnPoll)
			})
		})
	})

	page := pageHandler.Routes()
	if cfg.PagePath == "" || cfg.PagePath == "/" {
		r.Mount("/", page)
	} else {
		r.Mount(cfg.PagePath, page)
	}

	return r
}
