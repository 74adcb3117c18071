package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries fills the dictionary tables a fresh installation needs
// before any fleet data can be entered.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding dictionary tables...")

	if err := seedLocations(ctx, db); err != nil {
		log.Fatalf("failed to seed locations: %v", err)
	}
	if err := seedEquipmentTypes(ctx, db); err != nil {
		log.Fatalf("failed to seed equipment types: %v", err)
	}

	log.Println("dictionary seeding done")
}
