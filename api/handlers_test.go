package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	eventdb "github.com/ishaki/abhimatagolf-sub001/app/modules/event/infrastructure/repositories"
	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	"github.com/ishaki/abhimatagolf-sub001/app/modules/live"
	scoringservice "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/application"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	scoringevents "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/events"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
	"github.com/ishaki/abhimatagolf-sub001/internal/results"
)

type apiFixture struct {
	scoring     *FakeScoringService
	leaderboard *FakeLeaderboardService
	courses     *FakeCourseService
	server      *httptest.Server
}

func newAPIFixture(t *testing.T, display *live.Display, limiter *rate.Limiter) *apiFixture {
	t.Helper()

	f := &apiFixture{
		scoring:     &FakeScoringService{},
		leaderboard: &FakeLeaderboardService{},
		courses:     &FakeCourseService{},
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	h := NewHandler(f.scoring, f.leaderboard, f.courses, display, observability.NoOpLogger)
	f.server = httptest.NewServer(NewRouter(h, limiter))
	t.Cleanup(f.server.Close)
	return f
}

func submitURL(base string, eventID, participantID uuid.UUID) string {
	return fmt.Sprintf("%s/api/events/%s/participants/%s/scores", base, eventID, participantID)
}

func TestSubmitScoresEndpoint(t *testing.T) {
	eventID := uuid.New()
	participantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		f.scoring.SubmitScoresFunc = func(ctx context.Context, gotEvent, gotParticipant uuid.UUID, scores []scoringdomain.HoleScore) (scoringservice.SubmitScoresResult, error) {
			if gotEvent != eventID || gotParticipant != participantID {
				t.Errorf("IDs = %v/%v, want %v/%v", gotEvent, gotParticipant, eventID, participantID)
			}
			if len(scores) != 1 || scores[0].HoleNumber != 3 || scores[0].Strokes != 5 {
				t.Errorf("scores = %v, want [{3 5}]", scores)
			}
			return results.Ok[scoringservice.SubmitScoresSuccess, scoringevents.ScoreSubmissionFailedPayloadV1](
				scoringservice.SubmitScoresSuccess{
					Aggregate: scoringdomain.AggregateResult{GrossScore: 5, HolesCompleted: 1},
				},
			), nil
		}

		resp, err := http.Post(
			submitURL(f.server.URL, eventID, participantID),
			"application/json",
			strings.NewReader(`{"scores":[{"hole_number":3,"strokes":5}]}`),
		)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var success scoringservice.SubmitScoresSuccess
		if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if success.Aggregate.GrossScore != 5 {
			t.Errorf("GrossScore = %d, want 5", success.Aggregate.GrossScore)
		}
	})

	t.Run("boundary rejection maps to 422", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		f.scoring.SubmitScoresFunc = func(ctx context.Context, e, p uuid.UUID, scores []scoringdomain.HoleScore) (scoringservice.SubmitScoresResult, error) {
			return results.Fail[scoringservice.SubmitScoresSuccess, scoringevents.ScoreSubmissionFailedPayloadV1](
				scoringevents.ScoreSubmissionFailedPayloadV1{Reason: "strokes 16 for hole 1 out of range"},
			), nil
		}

		resp, err := http.Post(
			submitURL(f.server.URL, eventID, participantID),
			"application/json",
			strings.NewReader(`{"scores":[{"hole_number":1,"strokes":16}]}`),
		)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", resp.StatusCode)
		}
		var failure scoringevents.ScoreSubmissionFailedPayloadV1
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if !strings.Contains(failure.Reason, "out of range") {
			t.Errorf("Reason = %q, want range rejection", failure.Reason)
		}
	})

	t.Run("invalid uuid maps to 400", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		resp, err := http.Post(
			f.server.URL+"/api/events/not-a-uuid/participants/"+participantID.String()+"/scores",
			"application/json",
			strings.NewReader(`{"scores":[]}`),
		)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		resp, err := http.Post(
			submitURL(f.server.URL, eventID, participantID),
			"application/json",
			strings.NewReader(`{"scores": nope`),
		)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("rate limit maps to 429", func(t *testing.T) {
		f := newAPIFixture(t, nil, rate.NewLimiter(rate.Limit(0.001), 1))

		first, err := http.Post(submitURL(f.server.URL, eventID, participantID), "application/json", strings.NewReader(`{"scores":[]}`))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		first.Body.Close()

		second, err := http.Post(submitURL(f.server.URL, eventID, participantID), "application/json", strings.NewReader(`{"scores":[]}`))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer second.Body.Close()
		if second.StatusCode != http.StatusTooManyRequests {
			t.Errorf("status = %d, want 429", second.StatusCode)
		}
	})
}

func TestGetLeaderboardEndpoint(t *testing.T) {
	eventID := uuid.New()

	t.Run("filters parsed from query", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		f.leaderboard.SnapshotFunc = func(ctx context.Context, gotEventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
			want := leaderboardservice.Filters{Division: "Senior", MinHoles: 9, MaxRank: 10}
			if filters != want {
				t.Errorf("filters = %+v, want %+v", filters, want)
			}
			return &leaderboardservice.Snapshot{EventID: gotEventID}, nil
		}

		resp, err := http.Get(f.server.URL + "/api/events/" + eventID.String() + "/leaderboard?division=Senior&minHoles=9&maxRank=10")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("non-integer filter maps to 400", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		resp, err := http.Get(f.server.URL + "/api/events/" + eventID.String() + "/leaderboard?minHoles=nine")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("unknown event maps to 404", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		f.leaderboard.SnapshotFunc = func(ctx context.Context, gotEventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
			return nil, fmt.Errorf("failed to load event: %w", eventdb.ErrNotFound)
		}
		resp, err := http.Get(f.server.URL + "/api/events/" + eventID.String() + "/leaderboard")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("configuration error maps to 500", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		f.leaderboard.SnapshotFunc = func(ctx context.Context, gotEventID uuid.UUID, filters leaderboardservice.Filters) (*leaderboardservice.Snapshot, error) {
			return nil, fmt.Errorf("%w: event has no teebox configured", scoringdomain.ErrMissingRating)
		}
		resp, err := http.Get(f.server.URL + "/api/events/" + eventID.String() + "/leaderboard")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", resp.StatusCode)
		}
	})
}

func TestLiveEndpoints(t *testing.T) {
	t.Run("404 when no live event configured", func(t *testing.T) {
		f := newAPIFixture(t, nil, nil)
		resp, err := http.Get(f.server.URL + "/api/live/")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("pause, resume, and expand drive the display", func(t *testing.T) {
		fetch := func(ctx context.Context) (*leaderboardservice.Snapshot, error) {
			return &leaderboardservice.Snapshot{LastUpdated: time.Now().UTC()}, nil
		}
		display := live.NewDisplay(fetch, time.Minute, time.Minute, observability.NoOpLogger, observability.NoOpMetrics{})
		f := newAPIFixture(t, display, nil)

		resp, err := http.Post(f.server.URL+"/api/live/pause", "application/json", nil)
		if err != nil {
			t.Fatalf("POST pause: %v", err)
		}
		resp.Body.Close()
		if !display.Carousel.Paused() {
			t.Error("carousel not paused after /api/live/pause")
		}

		resp, err = http.Post(f.server.URL+"/api/live/resume", "application/json", nil)
		if err != nil {
			t.Fatalf("POST resume: %v", err)
		}
		resp.Body.Close()
		if display.Carousel.Paused() {
			t.Error("carousel still paused after /api/live/resume")
		}

		participantID := uuid.New()
		resp, err = http.Post(f.server.URL+"/api/live/expand/"+participantID.String(), "application/json", nil)
		if err != nil {
			t.Fatalf("POST expand: %v", err)
		}
		var body map[string]bool
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		resp.Body.Close()
		if !body["expanded"] || !display.Expansion.IsExpanded(participantID) {
			t.Error("row not expanded after /api/live/expand")
		}
	})
}
