package scoringdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// ScoringDBImpl handles database operations for hole scores.
type ScoringDBImpl struct {
	DB *bun.DB
}

func (r *ScoringDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// UpsertScores writes a batch of hole entries for one participant. The whole
// batch lands or none of it does; callers run this inside a transaction so a
// rejected submission has no partial application.
func (r *ScoringDBImpl) UpsertScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) error {
	if len(scores) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]*HoleScoreRow, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, &HoleScoreRow{
			EventID:       eventID,
			ParticipantID: participantID,
			HoleNumber:    s.HoleNumber,
			Strokes:       s.Strokes,
			UpdatedAt:     now,
		})
	}

	_, err := r.idb(db).NewInsert().
		Model(&rows).
		On("CONFLICT (event_id, participant_id, hole_number) DO UPDATE").
		Set("strokes = EXCLUDED.strokes, updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert scores for participant %s: %w", participantID, err)
	}
	return nil
}

// GetScores loads one participant's hole entries ordered by hole number.
func (r *ScoringDBImpl) GetScores(ctx context.Context, db bun.IDB, eventID, participantID uuid.UUID) (*ParticipantScores, error) {
	var rows []*HoleScoreRow

	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("hs.event_id = ?", eventID).
		Where("hs.participant_id = ?", participantID).
		Order("hs.hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores for participant %s: %w", participantID, err)
	}

	return collect(rows), nil
}

// GetScoresForEvent loads every participant's hole entries for an event in a
// single query, keyed by participant.
func (r *ScoringDBImpl) GetScoresForEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) (map[uuid.UUID]*ParticipantScores, error) {
	var rows []*HoleScoreRow

	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("hs.event_id = ?", eventID).
		Order("hs.participant_id ASC", "hs.hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores for event %s: %w", eventID, err)
	}

	byParticipant := make(map[uuid.UUID][]*HoleScoreRow)
	for _, row := range rows {
		byParticipant[row.ParticipantID] = append(byParticipant[row.ParticipantID], row)
	}

	out := make(map[uuid.UUID]*ParticipantScores, len(byParticipant))
	for participantID, participantRows := range byParticipant {
		out[participantID] = collect(participantRows)
	}
	return out, nil
}

func collect(rows []*HoleScoreRow) *ParticipantScores {
	ps := &ParticipantScores{
		Scores: make([]scoringdomain.HoleScore, 0, len(rows)),
	}
	for _, row := range rows {
		ps.Scores = append(ps.Scores, scoringdomain.HoleScore{
			HoleNumber: row.HoleNumber,
			Strokes:    row.Strokes,
		})
		if row.UpdatedAt.After(ps.UpdatedAt) {
			ps.UpdatedAt = row.UpdatedAt
		}
	}
	return ps
}
