// Package courseservice exposes course reference data to the API layer.
package courseservice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
	coursedb "github.com/ishaki/abhimatagolf-sub001/app/modules/course/infrastructure/repositories"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability/attr"
)

// Service is the course application surface.
type Service interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (*coursedomain.Course, error)
}

// CourseService implements Service over the course repository.
type CourseService struct {
	repo   coursedb.Repository
	logger *slog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo coursedb.Repository, logger *slog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// GetCourse loads a course with its hole table and teeboxes.
func (s *CourseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*coursedomain.Course, error) {
	course, err := s.repo.GetCourse(ctx, nil, courseID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load course",
			attr.UUID("course_id", courseID),
			attr.Error(err),
		)
		return nil, err
	}
	return course, nil
}
