package scoringservice

import (
	"context"

	"github.com/google/uuid"

	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	scoringevents "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/events"
	"github.com/ishaki/abhimatagolf-sub001/internal/results"
)

// SubmitScoresSuccess is the success payload of a score submission: the
// recomputed scorecard the caller reconciles its optimistic state against.
type SubmitScoresSuccess struct {
	Scorecard *scoringdomain.Scorecard      `json:"scorecard"`
	Aggregate scoringdomain.AggregateResult `json:"aggregate"`
}

// SubmitScoresResult is the operation result of a submission. Boundary
// rejections arrive as the failure payload; infrastructure faults as errors.
type SubmitScoresResult = results.OperationResult[SubmitScoresSuccess, scoringevents.ScoreSubmissionFailedPayloadV1]

// Service is the scoring application surface.
type Service interface {
	SubmitScores(ctx context.Context, eventID, participantID uuid.UUID, scores []scoringdomain.HoleScore) (SubmitScoresResult, error)
	GetScorecard(ctx context.Context, eventID, participantID uuid.UUID) (*SubmitScoresSuccess, error)
}
