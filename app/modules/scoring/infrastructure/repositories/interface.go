package scoringdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// ParticipantScores is one participant's stored hole entries plus the time of
// the most recent change.
type ParticipantScores struct {
	Scores    []scoringdomain.HoleScore
	UpdatedAt time.Time
}

// Repository is the data access surface for stored hole scores.
type Repository interface {
	UpsertScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) error
	GetScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID) (*ParticipantScores, error)
	GetScoresForEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (map[uuid.UUID]*ParticipantScores, error)
}
