package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedLocations(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'locations'...")

	// locations carry no unique constraint, guard by name instead
	query := `INSERT INTO locations (name, type, city)
			  SELECT $1, $2, $3
			  WHERE NOT EXISTS (SELECT 1 FROM locations WHERE name = $1);`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, l := range locationsData {
		if _, err := tx.Exec(ctx, query, l.Name, l.Type, l.City); err != nil {
			log.Printf("failed to insert location '%s': %v", l.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
