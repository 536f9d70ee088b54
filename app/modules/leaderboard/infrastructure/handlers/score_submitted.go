package leaderboardhandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	leaderboardevents "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/events"
	scoringevents "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/events"
	"github.com/ishaki/abhimatagolf-sub001/internal/eventbus"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
)

// HandleScoreSubmitted recomputes the full leaderboard for the event a score
// landed in and emits the rebuilt snapshot. Each invocation is independent
// and idempotent: the snapshot is derived entirely from stored state.
func (h *LeaderboardHandlers) HandleScoreSubmitted() message.HandlerFunc {
	return wrap(h, "HandleScoreSubmitted", func(ctx context.Context, payload scoringevents.ScoreSubmittedPayloadV1) ([]*message.Message, error) {
		snapshot, err := h.service.Snapshot(ctx, payload.EventID, leaderboardservice.Filters{})
		if err != nil {
			return nil, err
		}

		updated := leaderboardevents.LeaderboardUpdatedPayloadV1{
			EventID:                snapshot.EventID,
			Format:                 snapshot.Format,
			Entries:                snapshot.Entries,
			Awards:                 snapshot.Awards,
			TotalParticipants:      snapshot.TotalParticipants,
			ParticipantsWithScores: snapshot.ParticipantsWithScores,
			CoursePar:              snapshot.CoursePar,
			LastUpdated:            snapshot.LastUpdated,
		}

		msg, err := eventbus.NewMessage(attr.ExtractCorrelationID(ctx).Value.String(), updated)
		if err != nil {
			return nil, err
		}
		return []*message.Message{msg}, nil
	})
}
