package eventdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Event is the persistence model for a tournament event.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid"`
	Name      string     `bun:"name,notnull"`
	CourseID  uuid.UUID  `bun:"course_id,notnull,type:uuid"`
	TeeBoxID  *uuid.UUID `bun:"tee_box_id,type:uuid"`
	Format    string     `bun:"format,notnull"`
	Date      time.Time  `bun:"date,notnull"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Participant is the persistence model for a registered player.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID               uuid.UUID `bun:"id,pk,type:uuid"`
	EventID          uuid.UUID `bun:"event_id,notnull,type:uuid"`
	Name             string    `bun:"name,notnull"`
	DeclaredHandicap float64   `bun:"declared_handicap,notnull,default:0"`
	Division         string    `bun:"division"`
}
