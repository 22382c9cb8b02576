package repos

import (
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"gorm.io/gorm"
)

type PreferenceRepo = portfolio.PreferenceRepo
type ContactRepo = portfolio.ContactRepo

type PreferenceFilter = portfolio.PreferenceFilter
type ContactFilter = portfolio.ContactFilter
type ScoreCount = portfolio.ScoreCount
type ThemeCount = portfolio.ThemeCount

func NewPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) PreferenceRepo {
	return portfolio.NewPreferenceRepo(db, baseLog)
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	return portfolio.NewContactRepo(db, baseLog)
}
