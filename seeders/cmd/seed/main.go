package main

import (
	"flag"
	"log"

	"fleet-system/pkg/config"
	"fleet-system/pkg/database/postgresql"
	"fleet-system/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "seed dictionary tables (locations, equipment types)")
	runAll := flag.Bool("all", false, "run every seeder")

	flag.Parse()

	if !*runDictionaries && !*runAll {
		log.Println("no seeder selected")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("example: go run ./seeders/cmd/seed -dictionaries")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
	}

	log.Println("seeding finished")
}
