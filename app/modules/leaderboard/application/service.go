package leaderboardservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/ishaki/abhimatagolf-sub001/app/modules/course/infrastructure/repositories"
	eventdb "github.com/ishaki/abhimatagolf-sub001/app/modules/event/infrastructure/repositories"
	scoringdb "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/infrastructure/repositories"
	"github.com/ishaki/abhimatagolf-sub001/internal/eventbus"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
)

// LeaderboardService implements the Service interface. It owns no state of
// its own: every Snapshot is a pure function of the latest stored scores.
type LeaderboardService struct {
	scores   scoringdb.Repository
	events   eventdb.Repository
	courses  coursedb.Repository
	EventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  observability.LeaderboardMetrics
	tracer   trace.Tracer
	db       *bun.DB
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	scores scoringdb.Repository,
	events eventdb.Repository,
	courses coursedb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.LeaderboardMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *LeaderboardService {
	return &LeaderboardService{
		scores:   scores,
		events:   events,
		courses:  courses,
		EventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		db:       db,
	}
}
