package leaderboardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
	leaderboarddomain "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/domain"
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
)

// Snapshot runs the whole computation pipeline for one event: aggregate each
// participant's strokes, resolve the event format, rank the field, and select
// special awards. Entries are rebuilt from scratch on every call; the
// previous cycle's output is never patched.
func (s *LeaderboardService) Snapshot(ctx context.Context, eventID uuid.UUID, filters Filters) (*Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "LeaderboardSnapshot", trace.WithAttributes(
		attribute.String("event_id", eventID.String()),
	))
	defer span.End()

	s.metrics.RecordSnapshotAttempt(ctx, eventID)
	startTime := time.Now()
	defer func() {
		s.metrics.RecordRecomputeDuration(ctx, time.Since(startTime))
	}()

	snapshot, err := s.compute(ctx, eventID)
	if err != nil {
		s.metrics.RecordSnapshotFailure(ctx, eventID)
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Leaderboard snapshot failed",
			attr.ExtractCorrelationID(ctx),
			attr.UUID("event_id", eventID),
			attr.Error(err),
		)
		return nil, err
	}

	s.metrics.RecordEntriesRanked(ctx, len(snapshot.Entries))
	snapshot.Entries = applyFilters(snapshot.Entries, filters)

	s.logger.InfoContext(ctx, "Leaderboard snapshot computed",
		attr.ExtractCorrelationID(ctx),
		attr.UUID("event_id", eventID),
		attr.Int("entries", len(snapshot.Entries)),
		attr.Int("participants_with_scores", snapshot.ParticipantsWithScores),
		attr.Duration("took", time.Since(startTime)),
	)

	return snapshot, nil
}

func (s *LeaderboardService) compute(ctx context.Context, eventID uuid.UUID) (*Snapshot, error) {
	event, err := s.events.GetEvent(ctx, nil, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	course, err := s.courses.GetCourse(ctx, nil, event.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	rating, err := resolveRating(event.Format, course, event.TeeBoxID)
	if err != nil {
		return nil, err
	}

	participants, err := s.events.ListParticipants(ctx, nil, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	scoresByParticipant, err := s.scores.GetScoresForEvent(ctx, nil, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	results := make([]leaderboarddomain.Result, 0, len(participants))
	var lastUpdated time.Time
	withScores := 0

	for _, p := range participants {
		strokes := map[int]int{}
		if stored, ok := scoresByParticipant[p.ID]; ok {
			for _, hs := range stored.Scores {
				if hs.Strokes > scoringdomain.NotEntered {
					strokes[hs.HoleNumber] = hs.Strokes
				}
			}
			if stored.UpdatedAt.After(lastUpdated) {
				lastUpdated = stored.UpdatedAt
			}
		}

		resolution, err := scoringdomain.Resolve(event.Format, course.Holes, strokes, p.DeclaredHandicap, rating)
		if err != nil {
			// Configuration errors are fatal to the computation; a silently
			// mis-scored leaderboard is worse than no leaderboard.
			return nil, fmt.Errorf("failed to resolve format for participant %s: %w", p.ID, err)
		}

		if resolution.Aggregate.HolesCompleted > 0 {
			withScores++
		}

		results = append(results, leaderboarddomain.Result{
			ParticipantID:    p.ID,
			DisplayName:      p.Name,
			Division:         p.Division,
			DeclaredHandicap: p.DeclaredHandicap,
			HolesCompleted:   resolution.Aggregate.HolesCompleted,
			GrossScore:       resolution.Aggregate.GrossScore,
			ToPar:            resolution.Aggregate.ToPar,
			NetScore:         resolution.Net,
			Points:           resolution.Points,
			CourseHandicap:   resolution.CourseHandicap,
			Provisional:      resolution.Provisional,
		})
	}

	entries := leaderboarddomain.Rank(results, event.Format)
	awards := leaderboarddomain.SelectSpecialAwards(entries, leaderboarddomain.DefaultAwardDefinitions(event.Format))

	return &Snapshot{
		EventID:                event.ID,
		EventName:              event.Name,
		Format:                 event.Format,
		Entries:                entries,
		Awards:                 awards,
		TotalParticipants:      len(participants),
		ParticipantsWithScores: withScores,
		CoursePar:              course.Par(),
		LastUpdated:            lastUpdated,
	}, nil
}

// resolveRating picks the event's teebox rating. Net-stroke play without
// rating data is a configuration error surfaced to the caller, never
// defaulted.
func resolveRating(format scoringdomain.Format, course *coursedomain.Course, teeBoxID *uuid.UUID) (*coursedomain.TeeBox, error) {
	if teeBoxID != nil {
		teeBox, ok := course.TeeBoxByID(*teeBoxID)
		if !ok {
			return nil, fmt.Errorf("%w: teebox %s not on course %s", scoringdomain.ErrMissingRating, teeBoxID, course.ID)
		}
		return &teeBox, nil
	}
	if format == scoringdomain.FormatNetStroke {
		return nil, fmt.Errorf("%w: event has no teebox configured", scoringdomain.ErrMissingRating)
	}
	return nil, nil
}

// applyFilters narrows an already ranked entry list. Ranks are global and
// survive filtering untouched.
func applyFilters(entries []leaderboarddomain.LeaderboardEntry, filters Filters) []leaderboarddomain.LeaderboardEntry {
	if filters.MinHoles == 0 && filters.MaxRank == 0 && filters.Division == "" {
		return entries
	}

	filtered := make([]leaderboarddomain.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if filters.Division != "" && leaderboarddomain.DivisionOf(e.Result) != filters.Division {
			continue
		}
		if filters.MinHoles > 0 && e.HolesCompleted < filters.MinHoles {
			continue
		}
		if filters.MaxRank > 0 && (e.Rank == 0 || e.Rank > filters.MaxRank) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
