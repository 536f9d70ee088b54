package eventdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	eventdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/event/domain"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// Sentinel errors for the repository layer.
var (
	ErrNotFound = errors.New("event record not found")
)

// EventDBImpl handles database operations for events and participants.
type EventDBImpl struct {
	DB *bun.DB
}

func (r *EventDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// GetEvent loads one event. A stored format that no longer parses is a
// configuration error and is surfaced, never defaulted.
func (r *EventDBImpl) GetEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (*eventdomain.Event, error) {
	model := new(Event)

	err := r.idb(db).NewSelect().
		Model(model).
		Where("e.id = ?", eventID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
	}

	format, err := scoringdomain.ParseFormat(model.Format)
	if err != nil {
		return nil, fmt.Errorf("event %s has invalid format: %w", eventID, err)
	}

	return &eventdomain.Event{
		ID:       model.ID,
		Name:     model.Name,
		CourseID: model.CourseID,
		TeeBoxID: model.TeeBoxID,
		Format:   format,
		Date:     model.Date,
	}, nil
}

// GetParticipant loads one participant by ID.
func (r *EventDBImpl) GetParticipant(ctx context.Context, db bun.IDB, participantID uuid.UUID) (*eventdomain.Participant, error) {
	model := new(Participant)

	err := r.idb(db).NewSelect().
		Model(model).
		Where("p.id = ?", participantID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get participant %s: %w", participantID, err)
	}

	return toDomainParticipant(model), nil
}

// ListParticipants returns every registered player for an event, ordered by
// name for stable iteration.
func (r *EventDBImpl) ListParticipants(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]eventdomain.Participant, error) {
	var models []*Participant

	err := r.idb(db).NewSelect().
		Model(&models).
		Where("p.event_id = ?", eventID).
		Order("p.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for event %s: %w", eventID, err)
	}

	participants := make([]eventdomain.Participant, 0, len(models))
	for _, m := range models {
		participants = append(participants, *toDomainParticipant(m))
	}
	return participants, nil
}

// CreateEvent persists a new event.
func (r *EventDBImpl) CreateEvent(ctx context.Context, db bun.IDB, event *eventdomain.Event) error {
	model := &Event{
		ID:       event.ID,
		Name:     event.Name,
		CourseID: event.CourseID,
		TeeBoxID: event.TeeBoxID,
		Format:   string(event.Format),
		Date:     event.Date,
	}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert event %s: %w", event.ID, err)
	}
	return nil
}

// CreateParticipant registers a player for an event.
func (r *EventDBImpl) CreateParticipant(ctx context.Context, db bun.IDB, participant *eventdomain.Participant) error {
	model := &Participant{
		ID:               participant.ID,
		EventID:          participant.EventID,
		Name:             participant.Name,
		DeclaredHandicap: participant.DeclaredHandicap,
		Division:         participant.Division,
	}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert participant %s: %w", participant.ID, err)
	}
	return nil
}

func toDomainParticipant(model *Participant) *eventdomain.Participant {
	return &eventdomain.Participant{
		ID:               model.ID,
		EventID:          model.EventID,
		Name:             model.Name,
		DeclaredHandicap: model.DeclaredHandicap,
		Division:         model.Division,
	}
}
