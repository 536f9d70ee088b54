package scoringmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scoringdb "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating hole_scores table...")

		if _, err := db.NewCreateTable().Model((*scoringdb.HoleScoreRow)(nil)).IfNotExists().
			ForeignKey(`("event_id") REFERENCES "events" ("id") ON DELETE CASCADE`).
			ForeignKey(`("participant_id") REFERENCES "participants" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().Model((*scoringdb.HoleScoreRow)(nil)).
			Index("idx_hole_scores_entry").
			Column("event_id", "participant_id", "hole_number").
			Unique().
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("hole_scores table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping hole_scores table...")

		if _, err := db.NewDropTable().Model((*scoringdb.HoleScoreRow)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("hole_scores table dropped successfully!")
		return nil
	})
}
