// Package scoringevents defines the subjects and payloads the scoring module
// publishes.
package scoringevents

import (
	"time"

	"github.com/google/uuid"
)

// Subjects.
const (
	ScoreSubmittedSubject = "score.submitted"
)

// ScoreSubmittedPayloadV1 is published after a submission is persisted. The
// leaderboard module recomputes from it; the payload stays thin because rank
// is a global property that must be re-derived, never patched.
type ScoreSubmittedPayloadV1 struct {
	EventID        uuid.UUID `json:"event_id"`
	ParticipantID  uuid.UUID `json:"participant_id"`
	HolesCompleted int       `json:"holes_completed"`
	GrossScore     int       `json:"gross_score"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// ScoreSubmissionFailedPayloadV1 carries a boundary rejection back to the
// caller. Rejections apply nothing: no partial hole writes.
type ScoreSubmissionFailedPayloadV1 struct {
	EventID       uuid.UUID `json:"event_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	Reason        string    `json:"reason"`
}
