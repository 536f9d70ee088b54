package scoringservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
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
	trace []string

	UpsertScoresFunc      func(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) error
	GetScoresFunc         func(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID) (*scoringdb.ParticipantScores, error)
	GetScoresForEventFunc func(ctx context.Context, db bun.IDB, eventID uuid.UUID) (map[uuid.UUID]*scoringdb.ParticipantScores, error)
}

func NewFakeScoringRepo() *FakeScoringRepo {
	return &FakeScoringRepo{trace: []string{}}
}

func (f *FakeScoringRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoringRepo) Trace() []string {
	return f.trace
}

func (f *FakeScoringRepo) UpsertScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) error {
	f.record("UpsertScores")
	if f.UpsertScoresFunc != nil {
		return f.UpsertScoresFunc(ctx, db, eventID, participantID, scores)
	}
	return nil
}

func (f *FakeScoringRepo) GetScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID) (*scoringdb.ParticipantScores, error) {
	f.record("GetScores")
	if f.GetScoresFunc != nil {
		return f.GetScoresFunc(ctx, db, eventID, participantID)
	}
	return &scoringdb.ParticipantScores{}, nil
}

func (f *FakeScoringRepo) GetScoresForEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (map[uuid.UUID]*scoringdb.ParticipantScores, error) {
	f.record("GetScoresForEvent")
	if f.GetScoresForEventFunc != nil {
		return f.GetScoresForEventFunc(ctx, db, eventID)
	}
	return map[uuid.UUID]*scoringdb.ParticipantScores{}, nil
}

// ------------------------
// Fake Event Repository
// ------------------------

type FakeEventRepo struct {
	trace []string

	GetEventFunc          func(ctx context.Context, db bun.IDB, eventID uuid.UUID) (*eventdomain.Event, error)
	GetParticipantFunc    func(ctx context.Context, db bun.IDB, participantID uuid.UUID) (*eventdomain.Participant, error)
	ListParticipantsFunc  func(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]eventdomain.Participant, error)
	CreateEventFunc       func(ctx context.Context, db bun.IDB, event *eventdomain.Event) error
	CreateParticipantFunc func(ctx context.Context, db bun.IDB, participant *eventdomain.Participant) error
}

func NewFakeEventRepo() *FakeEventRepo {
	return &FakeEventRepo{trace: []string{}}
}

func (f *FakeEventRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeEventRepo) Trace() []string {
	return f.trace
}

func (f *FakeEventRepo) GetEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (*eventdomain.Event, error) {
	f.record("GetEvent")
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, db, eventID)
	}
	return &eventdomain.Event{ID: eventID}, nil
}

func (f *FakeEventRepo) GetParticipant(ctx context.Context, db bun.IDB, participantID uuid.UUID) (*eventdomain.Participant, error) {
	f.record("GetParticipant")
	if f.GetParticipantFunc != nil {
		return f.GetParticipantFunc(ctx, db, participantID)
	}
	return &eventdomain.Participant{ID: participantID}, nil
}

func (f *FakeEventRepo) ListParticipants(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]eventdomain.Participant, error) {
	f.record("ListParticipants")
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeEventRepo) CreateEvent(ctx context.Context, db bun.IDB, event *eventdomain.Event) error {
	f.record("CreateEvent")
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, db, event)
	}
	return nil
}

func (f *FakeEventRepo) CreateParticipant(ctx context.Context, db bun.IDB, participant *eventdomain.Participant) error {
	f.record("CreateParticipant")
	if f.CreateParticipantFunc != nil {
		return f.CreateParticipantFunc(ctx, db, participant)
	}
	return nil
}

// ------------------------
// Fake Course Repository
// ------------------------

type FakeCourseRepo struct {
	trace []string

	GetCourseFunc    func(ctx context.Context, db bun.IDB, courseID uuid.UUID) (*coursedomain.Course, error)
	GetTeeBoxFunc    func(ctx context.Context, db bun.IDB, teeBoxID uuid.UUID) (*coursedomain.TeeBox, error)
	CreateCourseFunc func(ctx context.Context, db bun.IDB, course *coursedomain.Course) error
}

func NewFakeCourseRepo() *FakeCourseRepo {
	return &FakeCourseRepo{trace: []string{}}
}

func (f *FakeCourseRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCourseRepo) Trace() []string {
	return f.trace
}

func (f *FakeCourseRepo) GetCourse(ctx context.Context, db bun.IDB, courseID uuid.UUID) (*coursedomain.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, db, courseID)
	}
	return &coursedomain.Course{ID: courseID}, nil
}

func (f *FakeCourseRepo) GetTeeBox(ctx context.Context, db bun.IDB, teeBoxID uuid.UUID) (*coursedomain.TeeBox, error) {
	f.record("GetTeeBox")
	if f.GetTeeBoxFunc != nil {
		return f.GetTeeBoxFunc(ctx, db, teeBoxID)
	}
	return &coursedomain.TeeBox{ID: teeBoxID}, nil
}

func (f *FakeCourseRepo) CreateCourse(ctx context.Context, db bun.IDB, course *coursedomain.Course) error {
	f.record("CreateCourse")
	if f.CreateCourseFunc != nil {
		return f.CreateCourseFunc(ctx, db, course)
	}
	return nil
}

// ------------------------
// Fake Event Bus
// ------------------------

type FakeEventBus struct {
	trace     []string
	Published map[string][]*message.Message

	PublishFunc func(topic string, msgs ...*message.Message) error
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{
		trace:     []string{},
		Published: map[string][]*message.Message{},
	}
}

func (f *FakeEventBus) Trace() []string {
	return f.trace
}

func (f *FakeEventBus) Publish(topic string, msgs ...*message.Message) error {
	f.trace = append(f.trace, "Publish:"+topic)
	if f.PublishFunc != nil {
		return f.PublishFunc(topic, msgs...)
	}
	f.Published[topic] = append(f.Published[topic], msgs...)
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	f.trace = append(f.trace, "Subscribe:"+topic)
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}

func (f *FakeEventBus) Close() error {
	f.trace = append(f.trace, "Close")
	return nil
}
