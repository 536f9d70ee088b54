package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ScoringMetrics records score-submission activity.
type ScoringMetrics interface {
	RecordSubmissionAttempt(ctx context.Context, eventID uuid.UUID)
	RecordSubmissionSuccess(ctx context.Context, eventID uuid.UUID)
	RecordValidationRejection(ctx context.Context, reason string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
}

// LeaderboardMetrics records ranking/recompute activity.
type LeaderboardMetrics interface {
	RecordSnapshotAttempt(ctx context.Context, eventID uuid.UUID)
	RecordSnapshotFailure(ctx context.Context, eventID uuid.UUID)
	RecordRecomputeDuration(ctx context.Context, d time.Duration)
	RecordEntriesRanked(ctx context.Context, count int)
}

// LiveMetrics records refresh-loop and carousel activity.
type LiveMetrics interface {
	RecordPollTick()
	RecordPollFailure()
	RecordCarouselAdvance()
}

// Metrics is the prometheus-backed implementation of every module interface.
type Metrics struct {
	submissionAttempts   *prometheus.CounterVec
	submissionSuccesses  *prometheus.CounterVec
	validationRejections *prometheus.CounterVec
	operationDuration    *prometheus.HistogramVec

	snapshotAttempts  *prometheus.CounterVec
	snapshotFailures  *prometheus.CounterVec
	recomputeDuration prometheus.Histogram
	entriesRanked     prometheus.Histogram

	pollTicks        prometheus.Counter
	pollFailures     prometheus.Counter
	carouselAdvances prometheus.Counter
}

// NewMetrics registers all collectors on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissionAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_score_submission_attempts_total",
			Help: "Score submission attempts per event.",
		}, []string{"event_id"}),
		submissionSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_score_submission_successes_total",
			Help: "Accepted score submissions per event.",
		}, []string{"event_id"}),
		validationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_score_validation_rejections_total",
			Help: "Submissions rejected at the input boundary, by reason.",
		}, []string{"reason"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "golf_scoring_operation_duration_seconds",
			Help:    "Duration of scoring service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		snapshotAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_leaderboard_snapshot_attempts_total",
			Help: "Leaderboard snapshot computations per event.",
		}, []string{"event_id"}),
		snapshotFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_leaderboard_snapshot_failures_total",
			Help: "Failed leaderboard snapshot computations per event.",
		}, []string{"event_id"}),
		recomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "golf_leaderboard_recompute_duration_seconds",
			Help:    "Full aggregate-resolve-rank pipeline duration.",
			Buckets: prometheus.DefBuckets,
		}),
		entriesRanked: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "golf_leaderboard_entries_ranked",
			Help:    "Number of entries ranked per snapshot.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
		pollTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_live_poll_ticks_total",
			Help: "Refresh poller ticks.",
		}),
		pollFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_live_poll_failures_total",
			Help: "Refresh poller fetch failures.",
		}),
		carouselAdvances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "golf_live_carousel_advances_total",
			Help: "Carousel cursor advances.",
		}),
	}

	reg.MustRegister(
		m.submissionAttempts, m.submissionSuccesses, m.validationRejections,
		m.operationDuration, m.snapshotAttempts, m.snapshotFailures,
		m.recomputeDuration, m.entriesRanked,
		m.pollTicks, m.pollFailures, m.carouselAdvances,
	)

	return m
}

func (m *Metrics) RecordSubmissionAttempt(_ context.Context, eventID uuid.UUID) {
	m.submissionAttempts.WithLabelValues(eventID.String()).Inc()
}

func (m *Metrics) RecordSubmissionSuccess(_ context.Context, eventID uuid.UUID) {
	m.submissionSuccesses.WithLabelValues(eventID.String()).Inc()
}

func (m *Metrics) RecordValidationRejection(_ context.Context, reason string) {
	m.validationRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) RecordSnapshotAttempt(_ context.Context, eventID uuid.UUID) {
	m.snapshotAttempts.WithLabelValues(eventID.String()).Inc()
}

func (m *Metrics) RecordSnapshotFailure(_ context.Context, eventID uuid.UUID) {
	m.snapshotFailures.WithLabelValues(eventID.String()).Inc()
}

func (m *Metrics) RecordRecomputeDuration(_ context.Context, d time.Duration) {
	m.recomputeDuration.Observe(d.Seconds())
}

func (m *Metrics) RecordEntriesRanked(_ context.Context, count int) {
	m.entriesRanked.Observe(float64(count))
}

func (m *Metrics) RecordPollTick() { m.pollTicks.Inc() }

func (m *Metrics) RecordPollFailure() { m.pollFailures.Inc() }

func (m *Metrics) RecordCarouselAdvance() { m.carouselAdvances.Inc() }

// NoOpMetrics satisfies every metrics interface without recording anything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordSubmissionAttempt(context.Context, uuid.UUID)              {}
func (NoOpMetrics) RecordSubmissionSuccess(context.Context, uuid.UUID)              {}
func (NoOpMetrics) RecordValidationRejection(context.Context, string)               {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration)  {}
func (NoOpMetrics) RecordSnapshotAttempt(context.Context, uuid.UUID)                {}
func (NoOpMetrics) RecordSnapshotFailure(context.Context, uuid.UUID)                {}
func (NoOpMetrics) RecordRecomputeDuration(context.Context, time.Duration)          {}
func (NoOpMetrics) RecordEntriesRanked(context.Context, int)                        {}
func (NoOpMetrics) RecordPollTick()                                                 {}
func (NoOpMetrics) RecordPollFailure()                                              {}
func (NoOpMetrics) RecordCarouselAdvance()                                          {}
