// Package api exposes the HTTP surface: score submission, leaderboard and
// scorecard fetches, course reference lookups, and the live display feed.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	courseservice "github.com/ishaki/abhimatagolf-sub001/app/modules/course/application"
	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	"github.com/ishaki/abhimatagolf-sub001/app/modules/live"
	scoringservice "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/application"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
)

// Handler carries the application services behind the HTTP routes.
type Handler struct {
	scoring     scoringservice.Service
	leaderboard leaderboardservice.Service
	courses     courseservice.Service
	display     *live.Display // nil when no live event is configured
	logger      *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(
	scoring scoringservice.Service,
	leaderboard leaderboardservice.Service,
	courses courseservice.Service,
	display *live.Display,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		scoring:     scoring,
		leaderboard: leaderboard,
		courses:     courses,
		display:     display,
		logger:      logger,
	}
}

type submitScoresRequest struct {
	Scores []scoringdomain.HoleScore `json:"scores"`
}

// SubmitScores accepts a batch of hole entries for one participant and
// returns the recomputed scorecard.
func (h *Handler) SubmitScores(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}

	var req submitScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "failed to decode request body")
		return
	}

	result, err := h.scoring.SubmitScores(r.Context(), eventID, participantID, req.Scores)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if result.IsFailure() {
		respondJSON(w, http.StatusUnprocessableEntity, result.Failure)
		return
	}

	respondJSON(w, http.StatusOK, result.Success)
}

// GetScorecard returns a participant's current scorecard with aggregates.
func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}

	card, err := h.scoring.GetScorecard(r.Context(), eventID, participantID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, card)
}

// GetLeaderboard returns the ranked snapshot for an event, optionally
// filtered by division, minimum holes completed, or maximum rank.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	filters := leaderboardservice.Filters{
		Division: r.URL.Query().Get("division"),
	}
	if v := r.URL.Query().Get("minHoles"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "minHoles must be an integer")
			return
		}
		filters.MinHoles = n
	}
	if v := r.URL.Query().Get("maxRank"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "maxRank must be an integer")
			return
		}
		filters.MaxRank = n
	}

	snapshot, err := h.leaderboard.Snapshot(r.Context(), eventID, filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// GetCourse returns a course's hole table and teeboxes.
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathUUID(w, r, "courseID")
	if !ok {
		return
	}

	course, err := h.courses.GetCourse(r.Context(), courseID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// GetLiveView returns the current display state: last-known-good snapshot,
// staleness, cursor position, and expanded rows.
func (h *Handler) GetLiveView(w http.ResponseWriter, r *http.Request) {
	if h.display == nil {
		respondError(w, http.StatusNotFound, "no live event configured")
		return
	}
	respondJSON(w, http.StatusOK, h.display.View())
}

// PauseCarousel stops the auto-rotation until resumed.
func (h *Handler) PauseCarousel(w http.ResponseWriter, r *http.Request) {
	if h.display == nil {
		respondError(w, http.StatusNotFound, "no live event configured")
		return
	}
	h.display.Carousel.Pause()
	respondJSON(w, http.StatusOK, h.display.View())
}

// ResumeCarousel restarts rotation from the top of the list.
func (h *Handler) ResumeCarousel(w http.ResponseWriter, r *http.Request) {
	if h.display == nil {
		respondError(w, http.StatusNotFound, "no live event configured")
		return
	}
	h.display.Carousel.Resume()
	respondJSON(w, http.StatusOK, h.display.View())
}

// ToggleExpansion flips a row's hole-by-hole detail, keyed by participant so
// it survives rank shifts across refreshes.
func (h *Handler) ToggleExpansion(w http.ResponseWriter, r *http.Request) {
	if h.display == nil {
		respondError(w, http.StatusNotFound, "no live event configured")
		return
	}
	participantID, ok := pathUUID(w, r, "participantID")
	if !ok {
		return
	}

	expanded := h.display.Expansion.Toggle(participantID)
	respondJSON(w, http.StatusOK, map[string]bool{"expanded": expanded})
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// logRequest is a tiny structured access logger used by the router.
func (h *Handler) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.InfoContext(r.Context(), "http request",
			attr.String("method", r.Method),
			attr.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}
