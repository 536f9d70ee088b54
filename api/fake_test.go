package api

import (
	"context"

	"github.com/google/uuid"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	scoringservice "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/application"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

type FakeScoringService struct {
	SubmitScoresFunc func(ctx context.Context, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) (scoringservice.SubmitScoresResult, error)
	GetScorecardFunc func(ctx context.Context, eventID, participantID uuid.UUID) (*scoringservice.SubmitScoresSuccess, error)
}

func (f *FakeScoringService) SubmitScores(ctx context.Context, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) (scoringservice.SubmitScoresResult, error) {
	if f.SubmitScoresFunc != nil {
		return f.SubmitScoresFunc(ctx, eventID, participantID, scores)
	}
	return scoringservice.SubmitScoresResult{}, nil
}

func (f *FakeScoringService) GetScorecard(ctx context.Context, eventID, participantID uuid.UUID) (*scoringservice.SubmitScoresSuccess, error) {
	if f.GetScorecardFunc != nil {
		return f.GetScorecardFunc(ctx, eventID, participantID)
	}
	return &scoringservice.SubmitScoresSuccess{}, nil
}

type FakeLeaderboardService struct {
	SnapshotFunc func(ctx context.Context, eventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error)
}

func (f *FakeLeaderboardService) Snapshot(ctx context.Context, eventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
	if f.SnapshotFunc != nil {
		return f.SnapshotFunc(ctx, eventID, filters)
	}
	return &leaderboardservice.Snapshot{EventID: eventID}, nil
}

type FakeCourseService struct {
	GetCourseFunc func(ctx context.Context, courseID uuid.UUID) (*coursedomain.Course, error)
}

func (f *FakeCourseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*coursedomain.Course, error) {
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, courseID)
	}
	return &coursedomain.Course{ID: courseID}, nil
}
