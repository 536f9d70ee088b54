package leaderboardservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	leaderboarddomain "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/domain"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// Filters narrows a leaderboard fetch. Filtering happens after ranking so a
// filtered view never re-numbers anyone's rank.
type Filters struct {
	MinHoles int    `json:"min_holes,omitempty"`
	MaxRank  int    `json:"max_rank,omitempty"`
	Division string `json:"division,omitempty"`
}

// Snapshot is one complete leaderboard computation cycle: ranked entries,
// special awards, and the summary counts the display header shows.
type Snapshot struct {
	EventID                uuid.UUID                            `json:"event_id"`
	EventName              string                               `json:"event_name"`
	Format                 scoringdomain.Format                 `json:"format"`
	Entries                []leaderboarddomain.LeaderboardEntry `json:"entries"`
	Awards                 []leaderboarddomain.AwardWinner      `json:"awards"`
	TotalParticipants      int                                  `json:"total_participants"`
	ParticipantsWithScores int                                  `json:"participants_with_scores"`
	CoursePar              int                                  `json:"course_par"`
	LastUpdated            time.Time                            `json:"last_updated"`
}

// Service is the leaderboard application surface.
type Service interface {
	Snapshot(ctx context.Context, eventID uuid.UUID, filters Filters) (*Snapshot, error)
}
