// Package leaderboardevents defines the subjects and payloads the leaderboard
// module publishes.
package leaderboardevents

import (
	"time"

	"github.com/google/uuid"

	leaderboarddomain "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/domain"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// Subjects.
const (
	LeaderboardUpdatedSubject = "leaderboard.updated"
)

// LeaderboardUpdatedPayloadV1 is the full rebuilt leaderboard. Entries are
// always a wholesale replacement: rank and tie status are global properties
// of the result set and cannot be patched row by row.
type LeaderboardUpdatedPayloadV1 struct {
	EventID                uuid.UUID                            `json:"event_id"`
	Format                 scoringdomain.Format                 `json:"format"`
	Entries                []leaderboarddomain.LeaderboardEntry `json:"entries"`
	Awards                 []leaderboarddomain.AwardWinner      `json:"awards"`
	TotalParticipants      int                                  `json:"total_participants"`
	ParticipantsWithScores int                                  `json:"participants_with_scores"`
	CoursePar              int                                  `json:"course_par"`
	LastUpdated            time.Time                            `json:"last_updated"`
}
