package eventdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	eventdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/event/domain"
)

// Repository is the data access surface for events and participants.
type Repository interface {
	GetEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (*eventdomain.Event, error)
	GetParticipant(ctx context.Context, db bun.IDB, participantID uuid.UUID) (*eventdomain.Participant, error)
	ListParticipants(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]eventdomain.Participant, error)
	CreateEvent(ctx context.Context, db bun.IDB, event *eventdomain.Event) error
	CreateParticipant(ctx context.Context, db bun.IDB, participant *eventdomain.Participant) error
}
