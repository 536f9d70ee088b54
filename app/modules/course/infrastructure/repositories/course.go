package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
)

// CourseDBImpl handles database operations for course reference data.
type CourseDBImpl struct {
	DB *bun.DB
}

func (r *CourseDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// GetCourse loads a course with its holes (ordered by number) and teeboxes.
func (r *CourseDBImpl) GetCourse(ctx context.Context, db bun.IDB, courseID uuid.UUID) (*coursedomain.Course, error) {
	course := new(Course)

	err := r.idb(db).NewSelect().
		Model(course).
		Relation("Holes").
		Relation("TeeBoxes").
		Where("c.id = ?", courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course %s: %w", courseID, err)
	}

	return toDomainCourse(course), nil
}

// GetTeeBox loads a single teebox by ID.
func (r *CourseDBImpl) GetTeeBox(ctx context.Context, db bun.IDB, teeBoxID uuid.UUID) (*coursedomain.TeeBox, error) {
	teeBox := new(TeeBox)

	err := r.idb(db).NewSelect().
		Model(teeBox).
		Where("tb.id = ?", teeBoxID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get teebox %s: %w", teeBoxID, err)
	}

	domain := toDomainTeeBox(teeBox)
	return &domain, nil
}

// CreateCourse persists a course with its holes and teeboxes. The hole set is
// validated before any row is written.
func (r *CourseDBImpl) CreateCourse(ctx context.Context, db bun.IDB, course *coursedomain.Course) error {
	if err := coursedomain.ValidateHoles(course.Holes); err != nil {
		return fmt.Errorf("invalid hole set: %w", err)
	}

	model := &Course{ID: course.ID, Name: course.Name}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert course %s: %w", course.ID, err)
	}

	holes := make([]*Hole, 0, len(course.Holes))
	for _, h := range course.Holes {
		holes = append(holes, &Hole{
			CourseID:       course.ID,
			Number:         h.Number,
			Par:            h.Par,
			StrokeIndex:    h.StrokeIndex,
			DistanceMeters: h.DistanceMeters,
		})
	}
	if _, err := r.idb(db).NewInsert().Model(&holes).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert holes for course %s: %w", course.ID, err)
	}

	if len(course.TeeBoxes) > 0 {
		teeBoxes := make([]*TeeBox, 0, len(course.TeeBoxes))
		for _, t := range course.TeeBoxes {
			teeBoxes = append(teeBoxes, &TeeBox{
				ID:           t.ID,
				CourseID:     course.ID,
				Name:         t.Name,
				CourseRating: t.CourseRating,
				SlopeRating:  t.SlopeRating,
			})
		}
		if _, err := r.idb(db).NewInsert().Model(&teeBoxes).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert teeboxes for course %s: %w", course.ID, err)
		}
	}

	return nil
}

func toDomainCourse(model *Course) *coursedomain.Course {
	course := &coursedomain.Course{
		ID:   model.ID,
		Name: model.Name,
	}

	for _, h := range model.Holes {
		course.Holes = append(course.Holes, coursedomain.HoleDefinition{
			Number:         h.Number,
			Par:            h.Par,
			StrokeIndex:    h.StrokeIndex,
			DistanceMeters: h.DistanceMeters,
		})
	}
	sort.Slice(course.Holes, func(i, j int) bool {
		return course.Holes[i].Number < course.Holes[j].Number
	})

	for _, t := range model.TeeBoxes {
		course.TeeBoxes = append(course.TeeBoxes, toDomainTeeBox(t))
	}

	return course
}

func toDomainTeeBox(model *TeeBox) coursedomain.TeeBox {
	return coursedomain.TeeBox{
		ID:           model.ID,
		Name:         model.Name,
		CourseRating: model.CourseRating,
		SlopeRating:  model.SlopeRating,
	}
}
