package services

import (
	"context"
	"testing"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos/testutil"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
)

func TestSeederIsRepeatable(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	prefRepo := repos.NewPreferenceRepo(db, log)
	contactRepo := repos.NewContactRepo(db, log)
	seeder := NewSeeder(log, prefRepo, contactRepo,
		NewPreferenceService(log, prefRepo),
		NewContactService(log, contactRepo),
	)

	for i := 0; i < 2; i++ {
		res, err := seeder.Run(context.Background())
		if err != nil {
			t.Fatalf("Run #%d: %v", i+1, err)
		}
		if res.Preferences != 5 || res.Contacts != 4 {
			t.Fatalf("Run #%d: unexpected counts %+v", i+1, res)
		}
	}

	dbc := dbctx.New(context.Background())
	n, err := prefRepo.Count(dbc)
	if err != nil || n != 5 {
		t.Fatalf("preference count = %d (%v)", n, err)
	}
	contacts, err := contactRepo.List(dbc, repos.ContactFilter{Status: "replied"})
	if err != nil || len(contacts) != 1 || contacts[0].Name != "Mike Johnson" {
		t.Fatalf("replied contacts = %+v (%v)", contacts, err)
	}
}
