package eventmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	eventdb "github.com/ishaki/abhimatagolf-sub001/app/modules/event/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating event tables...")

		if _, err := db.NewCreateTable().Model((*eventdb.Event)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*eventdb.Participant)(nil)).IfNotExists().
			ForeignKey(`("event_id") REFERENCES "events" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().Model((*eventdb.Participant)(nil)).
			Index("idx_participants_event").
			Column("event_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Event tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping event tables...")

		if _, err := db.NewDropTable().Model((*eventdb.Participant)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*eventdb.Event)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Event tables dropped successfully!")
		return nil
	})
}
