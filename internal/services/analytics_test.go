package services

import (
	"context"
	"testing"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos/testutil"
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
)

func TestEngagementEmptyTables(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewAnalyticsService(log, repos.NewPreferenceRepo(db, log), repos.NewContactRepo(db, log))

	got, err := svc.UserEngagement(dbctx.New(context.Background()))
	if err != nil {
		t.Fatalf("UserEngagement: %v", err)
	}
	if *got != (Engagement{}) {
		t.Fatalf("UserEngagement on empty tables = %+v", got)
	}
}

func TestAnalyticsAggregates(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewAnalyticsService(log, repos.NewPreferenceRepo(db, log), repos.NewContactRepo(db, log))
	dbc := dbctx.New(context.Background())

	now := time.Now()
	testutil.InsertPreference(t, db, 25.5, types.ThemeCorporate, now.Add(-time.Hour))
	testutil.InsertPreference(t, db, 25.5, types.ThemeCreative, now.Add(-10*24*time.Hour))
	testutil.InsertPreference(t, db, 88.9, types.ThemeCreative, now.Add(-2*time.Hour))
	testutil.InsertPreference(t, db, 40, types.ThemePlayful, now.Add(-3*time.Hour))
	for i := 0; i < 2; i++ {
		testutil.InsertContact(t, db, "Visitor", types.ContactPending, now)
	}

	dist, err := svc.PersonalityDistribution(dbc)
	if err != nil {
		t.Fatalf("PersonalityDistribution: %v", err)
	}
	if len(dist) != 3 || dist["25.5"] != 2 || dist["88.9"] != 1 || dist["40"] != 1 {
		t.Fatalf("PersonalityDistribution = %v", dist)
	}

	pop, err := svc.ThemePopularity(dbc)
	if err != nil {
		t.Fatalf("ThemePopularity: %v", err)
	}
	if pop[types.ThemeCreative] != 2 || pop[types.ThemeCorporate] != 1 || pop[types.ThemePlayful] != 1 {
		t.Fatalf("ThemePopularity = %v", pop)
	}

	eng, err := svc.UserEngagement(dbc)
	if err != nil {
		t.Fatalf("UserEngagement: %v", err)
	}
	want := Engagement{TotalUsers: 4, TotalContacts: 2, RecentUsers: 3, EngagementRate: 0.5}
	if *eng != want {
		t.Fatalf("UserEngagement = %+v, want %+v", eng, want)
	}
}
