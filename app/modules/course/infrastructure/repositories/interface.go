package coursedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
)

// Repository is the data access surface for course reference data.
type Repository interface {
	GetCourse(ctx context.Context, db bun.IDB, courseID uuid.UUID) (*coursedomain.Course, error)
	GetTeeBox(ctx context.Context, db bun.IDB, teeBoxID uuid.UUID) (*coursedomain.TeeBox, error)
	CreateCourse(ctx context.Context, db bun.IDB, course *coursedomain.Course) error
}
