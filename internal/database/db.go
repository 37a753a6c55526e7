package database

import (
	"log"

	"github.com/we-dream-team/Halimou/internal/config"
	"github.com/we-dream-team/Halimou/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	Migrate(DB)

	log.Println("Database connection established. Migration complete.")
}

// Migrate runs AutoMigrate for every entity. Split out of Init so tests
// can run it against their own (sqlite) connection.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Product{},
		&models.DailyInventory{},
		&models.InventoryLine{},
		&models.Employee{},
		&models.PayrollEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
