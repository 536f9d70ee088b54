package leaderboardhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"

	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	leaderboardevents "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/events"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	scoringevents "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/events"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
)

func newScoreSubmittedMessage(t *testing.T, payload scoringevents.ScoreSubmittedPayloadV1) *message.Message {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	middleware.SetCorrelationID(watermill.NewUUID(), msg)
	return msg
}

func TestHandleScoreSubmitted(t *testing.T) {
	eventID := uuid.New()
	snapshot := &leaderboardservice.Snapshot{
		EventID:                eventID,
		Format:                 scoringdomain.FormatStroke,
		TotalParticipants:      4,
		ParticipantsWithScores: 3,
		CoursePar:              72,
		LastUpdated:            time.Now().UTC(),
	}

	svc := NewFakeLeaderboardService()
	svc.SnapshotFunc = func(ctx context.Context, gotEventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
		if gotEventID != eventID {
			t.Errorf("Snapshot eventID = %v, want %v", gotEventID, eventID)
		}
		return snapshot, nil
	}

	h := NewLeaderboardHandlers(svc, observability.NoOpLogger, observability.NoOpMetrics{})
	handler := h.HandleScoreSubmitted()

	in := newScoreSubmittedMessage(t, scoringevents.ScoreSubmittedPayloadV1{
		EventID:       eventID,
		ParticipantID: uuid.New(),
	})
	out, err := handler(in)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("handler returned %d messages, want 1", len(out))
	}

	var updated leaderboardevents.LeaderboardUpdatedPayloadV1
	if err := json.Unmarshal(out[0].Payload, &updated); err != nil {
		t.Fatalf("unmarshal output payload: %v", err)
	}
	if updated.EventID != eventID {
		t.Errorf("EventID = %v, want %v", updated.EventID, eventID)
	}
	if updated.TotalParticipants != 4 || updated.ParticipantsWithScores != 3 {
		t.Errorf("counts = %d/%d, want 4/3", updated.TotalParticipants, updated.ParticipantsWithScores)
	}

	// Correlation ID rides through to the emitted message.
	if got := middleware.MessageCorrelationID(out[0]); got != middleware.MessageCorrelationID(in) {
		t.Errorf("correlation ID = %q, want %q", got, middleware.MessageCorrelationID(in))
	}
}

func TestHandleScoreSubmittedServiceError(t *testing.T) {
	svc := NewFakeLeaderboardService()
	svcErr := errors.New("db down")
	svc.SnapshotFunc = func(ctx context.Context, eventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
		return nil, svcErr
	}

	h := NewLeaderboardHandlers(svc, observability.NoOpLogger, observability.NoOpMetrics{})
	handler := h.HandleScoreSubmitted()

	_, err := handler(newScoreSubmittedMessage(t, scoringevents.ScoreSubmittedPayloadV1{EventID: uuid.New()}))
	if !errors.Is(err, svcErr) {
		t.Errorf("error = %v, want wrapped %v", err, svcErr)
	}
}

func TestHandleScoreSubmittedDropsMalformedPayload(t *testing.T) {
	svc := NewFakeLeaderboardService()
	h := NewLeaderboardHandlers(svc, observability.NoOpLogger, observability.NoOpMetrics{})
	handler := h.HandleScoreSubmitted()

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	out, err := handler(msg)
	if err != nil {
		t.Fatalf("handler error = %v, want nil (malformed payloads are dropped)", err)
	}
	if out != nil {
		t.Errorf("handler returned %v, want nothing", out)
	}
	if len(svc.Trace()) != 0 {
		t.Error("service was called with a malformed payload")
	}
}
