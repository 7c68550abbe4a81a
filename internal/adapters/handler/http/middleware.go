package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/rs/zerolog/hlog"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

// accessLog writes one line per request once the handler returns, through
// the request logger hlog.NewHandler put in the context.
func accessLog(r *http.Request, status, size int, duration time.Duration) {
	if status == 0 {
		status = http.StatusOK
	}

	log := hlog.FromRequest(r)
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("bytes", size).
		Dur("duration", duration).
		Msg("request completed")
}

// CORS lets browser clients on the allowed origins call the JSON API. A
// "*" entry allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAny || slices.Contains(allowedOrigins, origin)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestLocation is the page the request was made against: the scheme
// and host the client used plus the configured page path.
func requestLocation(r *http.Request, pagePath string) domain.Location {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return domain.Location{Origin: scheme + "://" + r.Host, Path: pagePath}
}
