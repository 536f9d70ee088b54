// Package coursedomain holds the static course reference data: holes, pars,
// stroke indexes, and teebox ratings. Everything here is immutable once a
// course is configured; score computation only reads it.
package coursedomain

import (
	"fmt"

	"github.com/google/uuid"
)

const HolesPerRound = 18

// HoleDefinition describes a single hole on a course.
type HoleDefinition struct {
	Number int `json:"number"`
	Par    int `json:"par"`
	// StrokeIndex is the difficulty rank, unique per course (1 = hardest).
	StrokeIndex    int      `json:"stroke_index"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// TeeBox carries the rating data a net-stroke handicap is derived from.
type TeeBox struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CourseRating float64   `json:"course_rating"`
	SlopeRating  int       `json:"slope_rating"`
}

// Course is a configured course with its ordered hole set.
type Course struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Holes    []HoleDefinition `json:"holes"`
	TeeBoxes []TeeBox         `json:"tee_boxes,omitempty"`
}

// Par is the full-course par, reported separately from partial-round to-par
// figures.
func (c *Course) Par() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// HoleByNumber returns the definition for a hole number, or false when the
// course does not define it.
func (c *Course) HoleByNumber(number int) (HoleDefinition, bool) {
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return HoleDefinition{}, false
}

// TeeBoxByID looks a teebox up on the course.
func (c *Course) TeeBoxByID(id uuid.UUID) (TeeBox, bool) {
	for _, t := range c.TeeBoxes {
		if t.ID == id {
			return t, true
		}
	}
	return TeeBox{}, false
}

// ValidateHoles checks a hole set before it is persisted: exactly 18 holes,
// hole numbers 1..18 each appearing once, stroke indexes 1..18 each unique.
func ValidateHoles(holes []HoleDefinition) error {
	if len(holes) != HolesPerRound {
		return fmt.Errorf("course must define exactly %d holes, got %d", HolesPerRound, len(holes))
	}

	seenNumbers := make(map[int]bool, len(holes))
	seenIndexes := make(map[int]bool, len(holes))
	for _, h := range holes {
		if h.Number < 1 || h.Number > HolesPerRound {
			return fmt.Errorf("hole number %d out of range 1..%d", h.Number, HolesPerRound)
		}
		if seenNumbers[h.Number] {
			return fmt.Errorf("duplicate hole number %d", h.Number)
		}
		seenNumbers[h.Number] = true

		if h.Par < 1 {
			return fmt.Errorf("hole %d has non-positive par %d", h.Number, h.Par)
		}
		if h.StrokeIndex < 1 || h.StrokeIndex > HolesPerRound {
			return fmt.Errorf("hole %d stroke index %d out of range 1..%d", h.Number, h.StrokeIndex, HolesPerRound)
		}
		if seenIndexes[h.StrokeIndex] {
			return fmt.Errorf("duplicate stroke index %d on hole %d", h.StrokeIndex, h.Number)
		}
		seenIndexes[h.StrokeIndex] = true

		if h.DistanceMeters != nil && *h.DistanceMeters < 0 {
			return fmt.Errorf("hole %d has negative distance", h.Number)
		}
	}
	return nil
}
