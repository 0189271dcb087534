package main

import (
	"log"

	"github.com/collegefinder/api/config"
	"github.com/collegefinder/api/database"
	"gorm.io/gorm"
)

func main() {
	log.Println("=== Database Seeder ===")

	if err := config.LoadENV(); err != nil {
		log.Fatal("Failed to load environment variables:", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedAll(); err != nil {
		log.Fatal("Seeding failed:", err)
	}
}
