package services

import (
	"context"
	"fmt"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type seedPreference struct {
	score     float64
	theme     string
	userAgent string
	ip        string
}

type seedContact struct {
	input  ContactInput
	status string
}

var samplePreferences = []seedPreference{
	{25.5, types.ThemeCorporate, "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36", "192.168.1.100"},
	{75.8, types.ThemeCreative, "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36", "192.168.1.101"},
	{45.2, types.ThemeProfessional, "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15", "192.168.1.102"},
	{88.9, types.ThemePlayful, "Mozilla/5.0 (Android 11; Mobile; rv:68.0) Gecko/68.0 Firefox/88.0", "192.168.1.103"},
	{12.3, types.ThemeMinimalist, "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15", "192.168.1.104"},
}

var sampleContacts = []seedContact{
	{ContactInput{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Message: "Hi Lekopien! I saw your portfolio and I'm really impressed with your work. I'd love to discuss a potential project collaboration.",
	}, types.ContactPending},
	{ContactInput{
		Name:    "Sarah Wilson",
		Email:   "sarah.wilson@company.com",
		Message: "We're looking for a talented developer for our startup. Your personality-driven approach to portfolios caught our attention. Would you be interested in a full-time position?",
	}, types.ContactRead},
	{ContactInput{
		Name:    "Mike Johnson",
		Email:   "mike@techcorp.com",
		Message: "Great portfolio! We have a client project that would be perfect for your skills. Can we schedule a call to discuss the details?",
	}, types.ContactReplied},
	{ContactInput{
		Name:    "Emma Brown",
		Email:   "emma.brown@design.co",
		Message: "I love the adaptive theme concept in your portfolio. As a UX designer, I appreciate the thoughtful approach to user experience. Let's connect!",
	}, types.ContactPending},
}

type SeedResult struct {
	Preferences int
	Contacts    int
}

// Seeder replaces both tables with the sample data set. Records go through the
// services so the usual validation applies.
type Seeder struct {
	log         *logger.Logger
	prefRepo    repos.PreferenceRepo
	contactRepo repos.ContactRepo
	preferences PreferenceService
	contacts    ContactService
}

func NewSeeder(log *logger.Logger, prefRepo repos.PreferenceRepo, contactRepo repos.ContactRepo, preferences PreferenceService, contacts ContactService) *Seeder {
	return &Seeder{
		log:         log.With("service", "Seeder"),
		prefRepo:    prefRepo,
		contactRepo: contactRepo,
		preferences: preferences,
		contacts:    contacts,
	}
}

func (s *Seeder) Run(ctx context.Context) (*SeedResult, error) {
	dbc := dbctx.New(ctx)
	if err := s.prefRepo.DeleteAll(dbc); err != nil {
		return nil, fmt.Errorf("clear preferences: %w", err)
	}
	if err := s.contactRepo.DeleteAll(dbc); err != nil {
		return nil, fmt.Errorf("clear contacts: %w", err)
	}

	res := &SeedResult{}
	for _, p := range samplePreferences {
		if _, err := s.preferences.Create(dbc, PreferenceInput{
			PersonalityScore: Float(p.score),
			Theme:            p.theme,
			UserAgent:        p.userAgent,
			IPAddress:        p.ip,
		}); err != nil {
			return res, fmt.Errorf("seed preference %v: %w", p.score, err)
		}
		res.Preferences++
	}
	for _, c := range sampleContacts {
		created, err := s.contacts.Create(dbc, c.input)
		if err != nil {
			return res, fmt.Errorf("seed contact %s: %w", c.input.Name, err)
		}
		if c.status != types.ContactPending {
			if _, err := s.contacts.UpdateStatus(dbc, created.ID, ContactStatusInput{Status: c.status}); err != nil {
				return res, fmt.Errorf("seed contact status %s: %w", c.input.Name, err)
			}
		}
		res.Contacts++
	}
	s.log.Info("seed data created", "preferences", res.Preferences, "contacts", res.Contacts)
	return res, nil
}
