package services

import (
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

const recentUserWindow = 7 * 24 * time.Hour

type Engagement struct {
	TotalUsers     int64   `json:"total_users"`
	TotalContacts  int64   `json:"total_contacts"`
	RecentUsers    int64   `json:"recent_users"`
	EngagementRate float64 `json:"engagement_rate"`
}

// AnalyticsService is read only.
type AnalyticsService interface {
	PersonalityDistribution(dbc dbctx.Context) (map[string]int64, error)
	ThemePopularity(dbc dbctx.Context) (map[string]int64, error)
	UserEngagement(dbc dbctx.Context) (*Engagement, error)
}

type analyticsService struct {
	log         *logger.Logger
	preferences repos.PreferenceRepo
	contacts    repos.ContactRepo
	now         func() time.Time
}

func NewAnalyticsService(log *logger.Logger, preferences repos.PreferenceRepo, contacts repos.ContactRepo) AnalyticsService {
	return &analyticsService{
		log:         log.With("service", "AnalyticsService"),
		preferences: preferences,
		contacts:    contacts,
		now:         time.Now,
	}
}

// PersonalityDistribution counts records per exact stored score.
func (s *analyticsService) PersonalityDistribution(dbc dbctx.Context) (map[string]int64, error) {
	rows, err := s.preferences.CountByScore(dbc)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[strconv.FormatFloat(r.Score, 'f', -1, 64)] += r.Count
	}
	return out, nil
}

func (s *analyticsService) ThemePopularity(dbc dbctx.Context) (map[string]int64, error) {
	rows, err := s.preferences.CountByTheme(dbc)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Theme] = r.Count
	}
	return out, nil
}

// UserEngagement divides contacts by preference records, flooring the
// denominator at one.
func (s *analyticsService) UserEngagement(dbc dbctx.Context) (*Engagement, error) {
	ctx, span := observability.Tracer().Start(dbc.Ctx, "analytics.user_engagement")
	defer span.End()

	var out Engagement
	since := s.now().Add(-recentUserWindow)

	// A transaction owns a single connection.
	g, gctx := errgroup.WithContext(ctx)
	if dbc.Tx != nil {
		g.SetLimit(1)
	}
	sub := dbctx.Context{Ctx: gctx, Tx: dbc.Tx}
	g.Go(func() error {
		n, err := s.preferences.Count(sub)
		out.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.contacts.Count(sub)
		out.TotalContacts = n
		return err
	})
	g.Go(func() error {
		n, err := s.preferences.CountSince(sub, since)
		out.RecentUsers = n
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		s.log.Error("engagement query failed", "error", err)
		return nil, err
	}

	denominator := out.TotalUsers
	if denominator < 1 {
		denominator = 1
	}
	out.EngagementRate = float64(out.TotalContacts) / float64(denominator)
	span.SetAttributes(
		attribute.Int64("portfolio.total_users", out.TotalUsers),
		attribute.Int64("portfolio.total_contacts", out.TotalContacts),
	)
	return &out, nil
}
