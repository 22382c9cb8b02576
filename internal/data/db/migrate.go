package db

import (
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"gorm.io/gorm"
)

// Models lists every table owned by the API.
func Models() []any {
	return []any{
		&types.PreferenceRecord{},
		&types.ContactSubmission{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("auto-migrating tables", "driver", s.driver)
	return AutoMigrateAll(s.db)
}
