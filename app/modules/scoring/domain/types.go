// Package scoringdomain turns raw per-hole strokes into totals, par-relative
// classifications, and format-specific net scores. Everything in this package
// is a pure function of its inputs; callers own all state.
package scoringdomain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// HolesPerRound is the number of holes on a full scorecard.
	HolesPerRound = 18
	// FrontNineEnd is the last hole of the front nine.
	FrontNineEnd = 9
	// MaxStrokes is the highest stroke count accepted at the input boundary.
	MaxStrokes = 15
	// NotEntered marks a hole that has no score yet. It is never a legal
	// completed-hole value.
	NotEntered = 0
)

var (
	// ErrStrokesOutOfRange rejects stroke values outside [0, MaxStrokes].
	ErrStrokesOutOfRange = errors.New("strokes out of range")
	// ErrUnknownHole rejects scores for holes the course does not define.
	ErrUnknownHole = errors.New("unknown hole number")
	// ErrUnknownFormat is a configuration fault; it is never silently
	// defaulted because mis-scoring a tournament is the costliest bug here.
	ErrUnknownFormat = errors.New("unrecognized scoring format")
	// ErrMissingRating means a net format was requested without teebox
	// course/slope rating data.
	ErrMissingRating = errors.New("missing course rating data for net format")
)

// Format identifies how an event is scored. Fixed per event; never mixed
// within one leaderboard.
type Format string

const (
	FormatStroke     Format = "stroke"
	FormatNetStroke  Format = "net_stroke"
	FormatSystem36   Format = "system_36"
	FormatStableford Format = "stableford"
)

// ParseFormat validates a format string coming from configuration.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatStroke, FormatNetStroke, FormatSystem36, FormatStableford:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// HoleScore is one hole's entry on a scorecard. Strokes of NotEntered means
// "not yet entered", distinct from any legal score.
type HoleScore struct {
	HoleNumber int `json:"hole_number"`
	Strokes    int `json:"strokes"`
}

// ValidateStrokes enforces the input-boundary range. Out-of-range values are
// rejected, never clamped.
func ValidateStrokes(strokes int) error {
	if strokes < 0 || strokes > MaxStrokes {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrStrokesOutOfRange, strokes, MaxStrokes)
	}
	return nil
}

// Scorecard is a player's round: an ordered 18-hole score sequence plus the
// declared handicap and the course par reference. Totals are derived, never
// stored.
type Scorecard struct {
	ParticipantID    uuid.UUID   `json:"participant_id"`
	EventID          uuid.UUID   `json:"event_id"`
	DeclaredHandicap float64     `json:"declared_handicap"`
	CoursePar        int         `json:"course_par"`
	Scores           []HoleScore `json:"scores"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// NewScorecard builds an empty 18-hole scorecard.
func NewScorecard(eventID, participantID uuid.UUID, declaredHandicap float64, coursePar int) *Scorecard {
	scores := make([]HoleScore, HolesPerRound)
	for i := range scores {
		scores[i].HoleNumber = i + 1
	}
	return &Scorecard{
		ParticipantID:    participantID,
		EventID:          eventID,
		DeclaredHandicap: declaredHandicap,
		CoursePar:        coursePar,
		Scores:           scores,
	}
}

// StrokesByHole returns the entered strokes keyed by hole number. Holes with
// no entry are omitted.
func (sc *Scorecard) StrokesByHole() map[int]int {
	strokes := make(map[int]int, len(sc.Scores))
	for _, hs := range sc.Scores {
		if hs.Strokes > NotEntered {
			strokes[hs.HoleNumber] = hs.Strokes
		}
	}
	return strokes
}

// HolesCompleted counts holes with an entered score.
func (sc *Scorecard) HolesCompleted() int {
	completed := 0
	for _, hs := range sc.Scores {
		if hs.Strokes > NotEntered {
			completed++
		}
	}
	return completed
}

// SetScore records one hole's strokes, replacing any prior entry.
func (sc *Scorecard) SetScore(holeNumber, strokes int) error {
	if err := ValidateStrokes(strokes); err != nil {
		return err
	}
	for i := range sc.Scores {
		if sc.Scores[i].HoleNumber == holeNumber {
			sc.Scores[i].Strokes = strokes
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownHole, holeNumber)
}
