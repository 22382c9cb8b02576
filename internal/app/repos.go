package app

import (
	"gorm.io/gorm"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type Repos struct {
	Preference repos.PreferenceRepo
	Contact    repos.ContactRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Preference: repos.NewPreferenceRepo(db, log),
		Contact:    repos.NewContactRepo(db, log),
	}
}
