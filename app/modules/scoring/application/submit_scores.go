package scoringservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
	eventdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/event/domain"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	scoringevents "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/events"
	"github.com/ishaki/abhimatagolf-sub001/internal/eventbus"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
	"github.com/ishaki/abhimatagolf-sub001/internal/results"
)

// SubmitScores validates and persists a batch of hole entries, then returns
// the recomputed scorecard. Validation happens before any write: a rejected
// batch applies nothing, so the caller's optimistic local state stays intact.
func (s *ScoringService) SubmitScores(ctx context.Context, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) (SubmitScoresResult, error) {
	s.metrics.RecordSubmissionAttempt(ctx, eventID)

	return withTelemetry(s, ctx, "SubmitScores", eventID, func(ctx context.Context) (SubmitScoresResult, error) {
		event, participant, course, err := s.loadReferenceData(ctx, eventID, participantID)
		if err != nil {
			return SubmitScoresResult{}, err
		}
		if participant.EventID != eventID {
			return failSubmit(eventID, participantID, "participant is not registered for this event"), nil
		}

		if reason := validateSubmission(course, scores); reason != "" {
			s.metrics.RecordValidationRejection(ctx, reason)
			s.logger.WarnContext(ctx, "Score submission rejected at boundary",
				attr.ExtractCorrelationID(ctx),
				attr.UUID("participant_id", participantID),
				attr.String("reason", reason),
			)
			return failSubmit(eventID, participantID, reason), nil
		}

		result, err := runInTx(s, ctx, func(ctx context.Context, tx bun.IDB) (SubmitScoresResult, error) {
			if err := s.repo.UpsertScores(ctx, tx, eventID, participantID, scores); err != nil {
				return SubmitScoresResult{}, err
			}

			success, err := s.buildScorecard(ctx, tx, event, participant, course)
			if err != nil {
				return SubmitScoresResult{}, err
			}
			return results.Ok[SubmitScoresSuccess, scoringevents.ScoreSubmissionFailedPayloadV1](*success), nil
		})
		if err != nil {
			return SubmitScoresResult{}, err
		}

		s.metrics.RecordSubmissionSuccess(ctx, eventID)
		s.publishScoreSubmitted(ctx, result.Success)

		return result, nil
	})
}

// GetScorecard returns a participant's current scorecard with aggregates.
func (s *ScoringService) GetScorecard(ctx context.Context, eventID, participantID uuid.UUID) (*SubmitScoresSuccess, error) {
	event, participant, course, err := s.loadReferenceData(ctx, eventID, participantID)
	if err != nil {
		return nil, err
	}
	return s.buildScorecard(ctx, nil, event, participant, course)
}

func (s *ScoringService) loadReferenceData(ctx context.Context, eventID, participantID uuid.UUID) (*eventdomain.Event, *eventdomain.Participant, *coursedomain.Course, error) {
	event, err := s.events.GetEvent(ctx, nil, eventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load event: %w", err)
	}
	participant, err := s.events.GetParticipant(ctx, nil, participantID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load participant: %w", err)
	}
	course, err := s.courses.GetCourse(ctx, nil, event.CourseID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load course: %w", err)
	}
	return event, participant, course, nil
}

func (s *ScoringService) buildScorecard(ctx context.Context, db bun.IDB, event *eventdomain.Event, participant *eventdomain.Participant, course *coursedomain.Course) (*SubmitScoresSuccess, error) {
	stored, err := s.repo.GetScores(ctx, db, event.ID, participant.ID)
	if err != nil {
		return nil, err
	}

	card := scoringdomain.NewScorecard(event.ID, participant.ID, participant.DeclaredHandicap, course.Par())
	card.UpdatedAt = stored.UpdatedAt
	for _, hs := range stored.Scores {
		if setErr := card.SetScore(hs.HoleNumber, hs.Strokes); setErr != nil {
			// Stored entries for holes outside the course set predate a
			// course reconfiguration; skip them rather than fail the read.
			if errors.Is(setErr, scoringdomain.ErrUnknownHole) {
				continue
			}
			return nil, setErr
		}
	}

	agg := scoringdomain.Aggregate(course.Holes, card.StrokesByHole())
	return &SubmitScoresSuccess{Scorecard: card, Aggregate: agg}, nil
}

// validateSubmission enforces the input boundary: strokes within [0,15] and
// hole numbers the course defines. The first violation rejects the batch.
func validateSubmission(course *coursedomain.Course, scores []scoringdomain.HoleScore) string {
	if len(scores) == 0 {
		return "empty score submission"
	}
	for _, hs := range scores {
		if err := scoringdomain.ValidateStrokes(hs.Strokes); err != nil {
			return fmt.Sprintf("strokes %d for hole %d out of range", hs.Strokes, hs.HoleNumber)
		}
		if _, ok := course.HoleByNumber(hs.HoleNumber); !ok {
			return fmt.Sprintf("hole %d is not defined on the course", hs.HoleNumber)
		}
	}
	return ""
}

func (s *ScoringService) publishScoreSubmitted(ctx context.Context, success *SubmitScoresSuccess) {
	payload := scoringevents.ScoreSubmittedPayloadV1{
		EventID:        success.Scorecard.EventID,
		ParticipantID:  success.Scorecard.ParticipantID,
		HolesCompleted: success.Aggregate.HolesCompleted,
		GrossScore:     success.Aggregate.GrossScore,
		SubmittedAt:    time.Now().UTC(),
	}

	msg, err := eventbus.NewMessage(correlationID(ctx), payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build score.submitted message", attr.Error(err))
		return
	}
	if err := s.EventBus.Publish(scoringevents.ScoreSubmittedSubject, msg); err != nil {
		// The write already landed; a missed event only delays the next
		// leaderboard refresh until the poller's tick.
		s.logger.ErrorContext(ctx, "Failed to publish score.submitted",
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
	}
}

func correlationID(ctx context.Context) string {
	return attr.ExtractCorrelationID(ctx).Value.String()
}

func failSubmit(eventID, participantID uuid.UUID, reason string) SubmitScoresResult {
	return results.Fail[SubmitScoresSuccess, scoringevents.ScoreSubmissionFailedPayloadV1](
		scoringevents.ScoreSubmissionFailedPayloadV1{
			EventID:       eventID,
			ParticipantID: participantID,
			Reason:        reason,
		},
	)
}
