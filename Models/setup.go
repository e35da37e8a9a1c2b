package Models

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the single-file database, migrates the schema and seeds the
// lookup table. dbPath falls back to database.db next to the binary.
func Connect(dbPath string) error {
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = connection

	if err := DB.AutoMigrate(
		&Customer{},
		&Common{},
		&Repair{},
		&Payment{},
		&Warranty{},
	); err != nil {
		return err
	}

	return InitializeCommonData(DB)
}
