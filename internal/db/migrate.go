package db

import (
	"alphadash/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	if err := db.Gorm.AutoMigrate(
		&models.Project{},
		&models.ChildOrder{},
		&models.CalendarEvent{},
		&models.MarketSnapshot{},
	); err != nil {
		return err
	}
	// Earlier schema revisions carried a raw benchmark column on child orders;
	// the benchmark series is derived per request, so the column must not survive.
	if db.Gorm.Migrator().HasColumn(&models.ChildOrder{}, "benchmark") {
		if err := db.Gorm.Migrator().DropColumn(&models.ChildOrder{}, "benchmark"); err != nil {
			return err
		}
	}
	return nil
}
