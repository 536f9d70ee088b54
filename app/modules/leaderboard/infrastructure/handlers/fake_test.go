package leaderboardhandlers

import (
	"context"

	"github.com/google/uuid"

	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
)

type FakeLeaderboardService struct {
	trace []string

	SnapshotFunc func(ctx context.Context, eventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error)
}

func NewFakeLeaderboardService() *FakeLeaderboardService {
	return &FakeLeaderboardService{trace: []string{}}
}

func (f *FakeLeaderboardService) Trace() []string {
	return f.trace
}

func (f *FakeLeaderboardService) Snapshot(ctx context.Context, eventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
	f.trace = append(f.trace, "Snapshot")
	if f.SnapshotFunc != nil {
		return f.SnapshotFunc(ctx, eventID, filters)
	}
	return &leaderboardservice.Snapshot{EventID: eventID}, nil
}
