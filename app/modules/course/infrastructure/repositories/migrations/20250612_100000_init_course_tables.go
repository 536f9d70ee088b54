package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	coursedb "github.com/ishaki/abhimatagolf-sub001/app/modules/course/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating course tables...")

		if _, err := db.NewCreateTable().Model((*coursedb.Course)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*coursedb.Hole)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*coursedb.TeeBox)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().Model((*coursedb.Hole)(nil)).
			Index("idx_course_holes_course_number").
			Column("course_id", "number").
			Unique().
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Course tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course tables...")

		if _, err := db.NewDropTable().Model((*coursedb.TeeBox)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*coursedb.Hole)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*coursedb.Course)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Course tables dropped successfully!")
		return nil
	})
}
