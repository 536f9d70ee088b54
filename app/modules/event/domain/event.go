// Package eventdomain holds tournament event and participant reference data.
package eventdomain

import (
	"time"

	"github.com/google/uuid"

	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// Event is one tournament: a course, a teebox, and a scoring format that is
// fixed for the life of the event.
type Event struct {
	ID       uuid.UUID            `json:"id"`
	Name     string               `json:"name"`
	CourseID uuid.UUID            `json:"course_id"`
	TeeBoxID *uuid.UUID           `json:"tee_box_id,omitempty"`
	Format   scoringdomain.Format `json:"format"`
	Date     time.Time            `json:"date"`
}

// Participant is one registered player in an event.
type Participant struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"event_id"`
	Name             string    `json:"name"`
	DeclaredHandicap float64   `json:"declared_handicap"`
	Division         string    `json:"division,omitempty"`
}
