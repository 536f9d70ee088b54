package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// NewRouter wires the HTTP routes. Score submission sits behind a rate
// limiter: the live-entry path is exposed to scoring kiosks and phones.
func NewRouter(h *Handler, limiter *rate.Limiter) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(h.logRequest)

	r.Route("/api", func(r chi.Router) {
		r.Get("/courses/{courseID}", h.GetCourse)
		r.Get("/events/{eventID}/leaderboard", h.GetLeaderboard)

		r.Route("/events/{eventID}/participants/{participantID}", func(r chi.Router) {
			r.Get("/scorecard", h.GetScorecard)
			r.With(rateLimit(limiter)).Post("/scores", h.SubmitScores)
		})

		r.Route("/live", func(r chi.Router) {
			r.Get("/", h.GetLiveView)
			r.Post("/pause", h.PauseCarousel)
			r.Post("/resume", h.ResumeCarousel)
			r.Post("/expand/{participantID}", h.ToggleExpansion)
		})
	})

	return r
}

// rateLimit rejects requests beyond the configured sustained rate with 429.
// A rejected submission applies nothing; the client's local edits stay
// intact for a retry.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				respondError(w, http.StatusTooManyRequests, "too many score submissions, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
