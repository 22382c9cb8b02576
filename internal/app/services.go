package app

import (
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/services"
)

type Services struct {
	Preference services.PreferenceService
	Contact    services.ContactService
	Analytics  services.AnalyticsService
	Assessment services.AssessmentService
	Seeder     *services.Seeder
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	preference := services.NewPreferenceService(log, reposet.Preference)
	contact := services.NewContactService(log, reposet.Contact)
	return Services{
		Preference: preference,
		Contact:    contact,
		Analytics:  services.NewAnalyticsService(log, reposet.Preference, reposet.Contact),
		Assessment: services.NewAssessmentService(log, nil),
		Seeder:     services.NewSeeder(log, reposet.Preference, reposet.Contact, preference, contact),
	}
}
