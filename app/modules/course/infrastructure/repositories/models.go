package coursedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Course is the persistence model for a configured course.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Holes    []*Hole   `bun:"rel:has-many,join:id=course_id"`
	TeeBoxes []*TeeBox `bun:"rel:has-many,join:id=course_id"`
}

// Hole is one row of a course's hole table.
type Hole struct {
	bun.BaseModel `bun:"table:course_holes,alias:ch"`

	ID             int64     `bun:"id,pk,autoincrement"`
	CourseID       uuid.UUID `bun:"course_id,notnull,type:uuid"`
	Number         int       `bun:"number,notnull"`
	Par            int       `bun:"par,notnull"`
	StrokeIndex    int       `bun:"stroke_index,notnull"`
	DistanceMeters *float64  `bun:"distance_meters"`
}

// TeeBox carries the rating data for one teebox on a course.
type TeeBox struct {
	bun.BaseModel `bun:"table:tee_boxes,alias:tb"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	CourseID     uuid.UUID `bun:"course_id,notnull,type:uuid"`
	Name         string    `bun:"name,notnull"`
	CourseRating float64   `bun:"course_rating,notnull"`
	SlopeRating  int       `bun:"slope_rating,notnull"`
}
