package scoringdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// HoleScoreRow is one hole entry for one participant. Strokes of zero means
// the hole has no entry yet; aggregation never counts it as completed.
type HoleScoreRow struct {
	bun.BaseModel `bun:"table:hole_scores,alias:hs"`

	ID            int64     `bun:"id,pk,autoincrement"`
	EventID       uuid.UUID `bun:"event_id,notnull,type:uuid"`
	ParticipantID uuid.UUID `bun:"participant_id,notnull,type:uuid"`
	HoleNumber    int       `bun:"hole_number,notnull"`
	Strokes       int       `bun:"strokes,notnull,default:0"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
