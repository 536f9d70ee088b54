package api

import (
	"encoding/json"
	"errors"
	"net/http"

	coursedb "github.com/ishaki/abhimatagolf-sub001/app/modules/course/infrastructure/repositories"
	eventdb "github.com/ishaki/abhimatagolf-sub001/app/modules/event/infrastructure/repositories"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondServiceError maps service errors onto HTTP statuses. Configuration
// errors surface as such; they are never masked as validation problems.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventdb.ErrNotFound), errors.Is(err, coursedb.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scoringdomain.ErrUnknownFormat), errors.Is(err, scoringdomain.ErrMissingRating):
		respondError(w, http.StatusInternalServerError, "scoring configuration error: "+err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
