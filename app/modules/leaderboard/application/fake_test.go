package leaderboardservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
	eventdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/event/domain"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	scoringdb "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/infrastructure/repositories"
)

// ------------------------
// Fake Scoring Repository
// ------------------------

type FakeScoringRepo struct {
	GetScoresForEventFunc func(ctx context.Context, db bun.IDB, eventID uuid.UUID) (map[uuid.UUID]*scoringdb.ParticipantScores, error)
}

func (f *FakeScoringRepo) UpsertScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) error {
	return nil
}

func (f *FakeScoringRepo) GetScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID) (*scoringdb.ParticipantScores, error) {
	return &scoringdb.ParticipantScores{}, nil
}

func (f *FakeScoringRepo) GetScoresForEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (map[uuid.UUID]*scoringdb.ParticipantScores, error) {
	if f.GetScoresForEventFunc != nil {
		return f.GetScoresForEventFunc(ctx, db, eventID)
	}
	return map[uuid.UUID]*scoringdb.ParticipantScores{}, nil
}

// ------------------------
// Fake Event Repository
// ------------------------

type FakeEventRepo struct {
	GetEventFunc         func(ctx context.Context, db bun.IDB, eventID uuid.UUID) (*eventdomain.Event, error)
	ListParticipantsFunc func(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]eventdomain.Participant, error)
}

func (f *FakeEventRepo) GetEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (*eventdomain.Event, error) {
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, db, eventID)
	}
	return &eventdomain.Event{ID: eventID}, nil
}

func (f *FakeEventRepo) GetParticipant(ctx context.Context, db bun.IDB, participantID uuid.UUID) (*eventdomain.Participant, error) {
	return &eventdomain.Participant{ID: participantID}, nil
}

func (f *FakeEventRepo) ListParticipants(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]eventdomain.Participant, error) {
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeEventRepo) CreateEvent(ctx context.Context, db bun.IDB, event *eventdomain.Event) error {
	return nil
}

func (f *FakeEventRepo) CreateParticipant(ctx context.Context, db bun.IDB, participant *eventdomain.Participant) error {
	return nil
}

// ------------------------
// Fake Course Repository
// ------------------------

type FakeCourseRepo struct {
	GetCourseFunc func(ctx context.Context, db bun.IDB, courseID uuid.UUID) (*coursedomain.Course, error)
}

func (f *FakeCourseRepo) GetCourse(ctx context.Context, db bun.IDB, courseID uuid.UUID) (*coursedomain.Course, error) {
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, db, courseID)
	}
	return &coursedomain.Course{ID: courseID}, nil
}

func (f *FakeCourseRepo) GetTeeBox(ctx context.Context, db bun.IDB, teeBoxID uuid.UUID) (*coursedomain.TeeBox, error) {
	return &coursedomain.TeeBox{ID: teeBoxID}, nil
}

func (f *FakeCourseRepo) CreateCourse(ctx context.Context, db bun.IDB, course *coursedomain.Course) error {
	return nil
}
