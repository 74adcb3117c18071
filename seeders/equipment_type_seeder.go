package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipmentTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'equipment_types'...")

	query := `INSERT INTO equipment_types (name, category, unit) VALUES ($1, $2, $3)
			  ON CONFLICT (name) DO NOTHING;`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, et := range equipmentTypesData {
		if _, err := tx.Exec(ctx, query, et.Name, et.Category, et.Unit); err != nil {
			log.Printf("failed to insert equipment type '%s': %v", et.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
