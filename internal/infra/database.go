package infra

import (
	"log"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

// InitDatabase opens postgres when POSTGRES_URL is configured and falls
// back to the CGO-free sqlite driver otherwise, then migrates the schema.
func InitDatabase(cfg AppConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.PostgresURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Attraction{},
		&db_models.Trip{},
		&db_models.TripItem{},
		&db_models.PackingItem{},
	)
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
