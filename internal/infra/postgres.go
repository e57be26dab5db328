package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
)

// InitDatabase opens the configured Postgres database, or a local sqlite
// file when no DSN is set, and migrates the schema.
func InitDatabase(cfg *Config) *gorm.DB {

	var dialector gorm.Dialector
	if cfg.PostgresURL != "" {
		dialector = postgres.Open(cfg.PostgresURL)
	} else {
		dialector = sqlite.Open("emptyshell.db")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Opticien{},
		&db_models.Client{},
		&db_models.ClientSubmission{},
		&db_models.Cagnotte{},
		&db_models.Paiement{},
		&db_models.Livraison{},
		&db_models.Produit{},
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
